package external

// WeatherConditionDTO is one element of the "weather" array
type WeatherConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO holds the "main" block; only temp is used
type MainDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

// CurrentWeatherResponse represents the response of GET /weather
type CurrentWeatherResponse struct {
	Name    string                `json:"name"`
	Main    MainDTO               `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
}

// ForecastItemDTO is one 3-hour sample of the forecast list
type ForecastItemDTO struct {
	Dt      int64                 `json:"dt"`
	DtTxt   string                `json:"dt_txt"`
	Main    MainDTO               `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
}

// ForecastResponse represents the response of GET /forecast
type ForecastResponse struct {
	Cnt  int               `json:"cnt"`
	List []ForecastItemDTO `json:"list"`
}

// WeatherAPIErrorResponse represents the error body returned by the weather API, e.g. {"cod":"404","message":"city not found"}
type WeatherAPIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// FirstCondition returns weather[0], or an empty condition when the array is empty.
func FirstCondition(conditions []WeatherConditionDTO) WeatherConditionDTO {
	if len(conditions) == 0 {
		return WeatherConditionDTO{}
	}
	return conditions[0]
}
