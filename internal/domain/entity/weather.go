package entity

// CurrentConditions is the present weather at a place. Temperature is in degrees Celsius.
type CurrentConditions struct {
	Name        string  `json:"name"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// ForecastEntry is one raw 3-hour forecast sample. Timestamp keeps the API's "2006-01-02 15:04:05" text.
type ForecastEntry struct {
	Timestamp   string  `json:"timestamp"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// DailySummary is the first forecast sample observed for a calendar date.
type DailySummary struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}
