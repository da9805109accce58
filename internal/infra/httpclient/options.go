package httpclient

import (
	"weather-dashboard/pkg/http"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/resource"
)

// WeatherAPIOptions builds the client options of the weather API from app.weather-api.*.
// The appid query value is masked in request logs and in returned transport errors.
func WeatherAPIOptions() http.ClientOptions {
	logger := log.Named("weather-api")
	opts := http.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.weather-api.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.weather-api.read-timeout"),
		Logger:            http.NewZapHTTPLogger(logger),
		MaskedQueryParams: []string{"appid"},
	}

	if resource.GetBool("app.weather-api.breaker.enabled") {
		opts.Breaker = &http.BreakerOptions{
			Name:         "weather-api",
			MaxRequests:  resource.GetUint32("app.weather-api.breaker.max-requests"),
			Interval:     resource.GetDuration("app.weather-api.breaker.interval"),
			Timeout:      resource.GetDuration("app.weather-api.breaker.timeout"),
			MinRequests:  resource.GetUint32("app.weather-api.breaker.min-requests"),
			FailureRatio: resource.GetFloat64("app.weather-api.breaker.failure-ratio"),
			Logger:       logger,
		}
	}
	return opts
}

// UserServiceOptions builds the client options of the user service from app.user-service.*.
func UserServiceOptions() http.ClientOptions {
	return http.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.user-service.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.user-service.read-timeout"),
		Logger:            http.NewZapHTTPLogger(log.Named("user-service")),
	}
}
