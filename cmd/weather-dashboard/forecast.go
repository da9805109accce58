package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"weather-dashboard/internal/application/view"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/weather"
)

func newForecastCommand() *cobra.Command {
	var (
		location string
		lat, lon float64
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Print the weather card for a place or a coordinate pair",
		Example: "  weather-dashboard forecast --location Colombo\n" +
			"  weather-dashboard forecast --lat 6.9271 --lon 79.8612",
		RunE: func(cmd *cobra.Command, args []string) error {
			var query entity.LocationQuery
			switch {
			case location != "":
				query = entity.ByName(location)
			case cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon"):
				query = entity.ByCoordinates(lat, lon)
			default:
				return errors.New("provide --location or both --lat and --lon")
			}

			report, err := newWeatherUseCase().Find(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("%s: %w", weather.FailureMessage(query.Mode), err)
			}
			return printCard(cmd.OutOrStdout(), report, time.Now())
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "place name")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in decimal degrees")
	cmd.MarkFlagsMutuallyExclusive("location", "lat")
	cmd.MarkFlagsMutuallyExclusive("location", "lon")
	cmd.MarkFlagsRequiredTogether("lat", "lon")
	return cmd
}

func printCard(w io.Writer, report *model.WeatherReport, now time.Time) error {
	current := report.Current
	_, err := fmt.Fprintf(w, "%s\n%s  %s  %s  %s\n\n",
		now.Format(view.HeadingDateLayout),
		current.Name, view.CurrentGlyph(current.Icon), view.Celsius(current.Temperature), current.Description)
	if err != nil {
		return err
	}

	for _, day := range report.Daily {
		if _, err = fmt.Fprintf(w, "%-10s %8s  %s  %s\n",
			day.Date, view.Celsius(day.Temperature), view.ForecastGlyph(day.Icon), day.Description); err != nil {
			return err
		}
	}
	return nil
}
