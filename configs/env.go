package configs

import (
	_ "embed"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/resource"
)

//go:embed application.yml
var applicationYAML []byte

//go:embed messages.yml
var messagesYAML []byte

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
}

var Env *EnvConfig

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment variables")
	}
	viper.AutomaticEnv()

	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		resource.Init(path)
	} else if err := resource.Load(applicationYAML); err != nil {
		log.Fatalf("Fail to load embedded properties: %v", err)
	}

	if path, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		msg.Init(path)
	} else if err := msg.Load(messagesYAML); err != nil {
		log.Fatalf("Fail to load embedded messages: %v", err)
	}

	log.SetLevel(resource.GetStringOrDefault("app.log.level", "info"))

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", resource.GetString("app.name")),
		ContextPath:     resource.GetStringOrDefault("app.server.context-path", "/api"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
