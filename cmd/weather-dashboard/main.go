package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "weather-dashboard/configs"
	"weather-dashboard/pkg/log"
)

func main() {
	root := &cobra.Command{
		Use:           "weather-dashboard",
		Short:         "Weather dashboard with current conditions and a 7-day forecast",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newForecastCommand())

	if err := root.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
