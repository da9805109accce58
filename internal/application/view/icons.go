package view

const (
	currentFallback  = "🌤️"
	forecastFallback = "🌦️"
)

var weatherIcons = map[string]string{
	"01d": "☀️",
	"01n": "🌙",
	"02d": "⛅️",
	"02n": "☁️",
	"03d": "☁️",
	"03n": "☁️",
	"04d": "☁️",
	"04n": "☁️",
	"09d": "🌧️",
	"09n": "🌧️",
	"10d": "🌦️",
}

// CurrentGlyph returns the glyph for an icon code on the current conditions card.
func CurrentGlyph(code string) string {
	if glyph, ok := weatherIcons[code]; ok {
		return glyph
	}
	return currentFallback
}

// ForecastGlyph returns the glyph for an icon code in a forecast row.
func ForecastGlyph(code string) string {
	if glyph, ok := weatherIcons[code]; ok {
		return glyph
	}
	return forecastFallback
}
