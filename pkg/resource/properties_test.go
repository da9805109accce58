package resource

import (
	"testing"
	"time"
)

const testProperties = `
app:
  name: dashboard
  server:
    port: ${TEST_RESOURCE_PORT:8080}
    url: http://${TEST_RESOURCE_HOST:localhost}:${TEST_RESOURCE_PORT:8080}/api
  weather-api:
    api-key: ${TEST_RESOURCE_KEY:}
    read-timeout: 5s
  retries: 3
  enabled: true
`

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("TEST_RESOURCE_SET", "from-env")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain value is kept", input: "metric", want: "metric"},
		{name: "env value wins over default", input: "${TEST_RESOURCE_SET:fallback}", want: "from-env"},
		{name: "default when env missing", input: "${TEST_RESOURCE_UNSET:fallback}", want: "fallback"},
		{name: "empty default", input: "${TEST_RESOURCE_UNSET:}", want: ""},
		{name: "no default", input: "${TEST_RESOURCE_UNSET}", want: ""},
		{name: "embedded placeholders", input: "a-${TEST_RESOURCE_SET:x}-${TEST_RESOURCE_UNSET:y}", want: "a-from-env-y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveEnvVariable(tt.input); got != tt.want {
				t.Errorf("resolveEnvVariable(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_RESOURCE_PORT", "9090")

	if err := Load([]byte(testProperties)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := GetString("app.name"); got != "dashboard" {
		t.Errorf("app.name = %q, want %q", got, "dashboard")
	}
	if got := GetInt("app.server.port"); got != 9090 {
		t.Errorf("app.server.port = %d, want %d", got, 9090)
	}
	if got := GetString("app.server.url"); got != "http://localhost:9090/api" {
		t.Errorf("app.server.url = %q", got)
	}
	if got := GetString("app.weather-api.api-key"); got != "" {
		t.Errorf("app.weather-api.api-key = %q, want empty", got)
	}
	if got := GetDuration("app.weather-api.read-timeout"); got != 5*time.Second {
		t.Errorf("app.weather-api.read-timeout = %v, want 5s", got)
	}
	if got := GetInt("app.retries"); got != 3 {
		t.Errorf("app.retries = %d, want 3", got)
	}
	if !GetBool("app.enabled") {
		t.Error("app.enabled = false, want true")
	}
	if got := GetStringOrDefault("app.missing", "fallback"); got != "fallback" {
		t.Errorf("GetStringOrDefault() = %q, want fallback", got)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	if err := Load([]byte("app: [unclosed")); err == nil {
		t.Error("Load() expected error for malformed YAML")
	}
}
