// Package forecast turns raw 3-hour forecast samples into daily summaries.
package forecast

import (
	"fmt"
	"time"

	"weather-dashboard/internal/domain/entity"
)

const (
	// MaxDays caps the number of daily summaries.
	MaxDays = 7
	// TimestampLayout is the layout of the weather API's dt_txt field, in UTC.
	TimestampLayout = "2006-01-02 15:04:05"
	// DateKeyLayout renders the weekday abbreviation with numeric month and day, e.g. "Mon, 3/4".
	DateKeyLayout = "Mon, 1/2"
)

// DateKey formats the calendar date of a forecast timestamp.
func DateKey(timestamp string) (string, error) {
	t, err := time.ParseInLocation(TimestampLayout, timestamp, time.UTC)
	if err != nil {
		return "", fmt.Errorf("invalid forecast timestamp %q: %w", timestamp, err)
	}
	return t.Format(DateKeyLayout), nil
}

// Normalize keeps the first entry seen for each date, in input order, and returns at most MaxDays of them.
// Later entries for an already seen date are ignored and entries are never re-sorted.
func Normalize(entries []entity.ForecastEntry) ([]entity.DailySummary, error) {
	daily := make([]entity.DailySummary, 0, MaxDays)
	seen := make(map[string]struct{}, MaxDays)

	for _, entry := range entries {
		key, err := DateKey(entry.Timestamp)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[key]; ok || len(daily) == MaxDays {
			continue
		}
		seen[key] = struct{}{}
		daily = append(daily, entity.DailySummary{
			Date:        key,
			Temperature: entry.Temperature,
			Description: entry.Description,
			Icon:        entry.Icon,
		})
	}

	return daily, nil
}
