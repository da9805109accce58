package view

import (
	"strconv"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/pkg/msg"
)

const (
	HeadingDateLayout = "Monday, 1/2/2006"
	collapsedDays     = 3
)

// AuthPage is rendered by the sign-in and sign-up templates.
type AuthPage struct {
	Title   string
	Name    string
	Email   string
	Error   string
	Message string
}

// HomePage is the rendered form of a dashboard.
type HomePage struct {
	Title         string
	Mode          string
	ByLocation    bool
	Search        string
	Latitude      string
	Longitude     string
	ToggleLabel   string
	Error         string
	Card          *Card
	ForecastTitle string
	Forecast      []ForecastRow
	DetailsLabel  string
}

type Card struct {
	Date        string
	Name        string
	Glyph       string
	Temperature string
	Description string
}

type ForecastRow struct {
	Day         string
	Temperature string
	Glyph       string
	Description string
}

// NewHomePage builds the page for dashboard d. now is the moment used for the card's date heading.
func NewHomePage(d *entity.Dashboard, now time.Time) HomePage {
	page := HomePage{
		Title:       msg.GetMessage("view.title"),
		Mode:        string(d.Mode),
		ByLocation:  d.Mode == entity.ModeLocation,
		Search:      d.Search,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
		ToggleLabel: msg.GetMessage("view.mode." + string(d.Mode.Toggle())),
		Error:       d.Error,
	}
	if d.Current == nil {
		return page
	}

	page.Card = &Card{
		Date:        now.Format(HeadingDateLayout),
		Name:        d.Current.Name,
		Glyph:       CurrentGlyph(d.Current.Icon),
		Temperature: Celsius(d.Current.Temperature),
		Description: d.Current.Description,
	}

	days := d.Daily
	page.ForecastTitle = msg.GetMessage("view.forecast.expanded")
	page.DetailsLabel = msg.GetMessage("view.details.less")
	if !d.ShowMore {
		if len(days) > collapsedDays {
			days = days[:collapsedDays]
		}
		page.ForecastTitle = msg.GetMessage("view.forecast.collapsed")
		page.DetailsLabel = msg.GetMessage("view.details.more")
	}
	for _, day := range days {
		page.Forecast = append(page.Forecast, ForecastRow{
			Day:         day.Date,
			Temperature: Celsius(day.Temperature),
			Glyph:       ForecastGlyph(day.Icon),
			Description: day.Description,
		})
	}
	return page
}

// Celsius formats a temperature the way the API reports it, e.g. "29.4°C".
func Celsius(temperature float64) string {
	return strconv.FormatFloat(temperature, 'f', -1, 64) + "°C"
}
