package controller

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type mockAuthUseCase struct {
	signInErr error
	signUpErr error
	signIns   []entity.SignInCredentials
	signUps   []entity.SignUpCredentials
}

func (m *mockAuthUseCase) SignIn(ctx context.Context, credentials entity.SignInCredentials) error {
	m.signIns = append(m.signIns, credentials)
	return m.signInErr
}

func (m *mockAuthUseCase) SignUp(ctx context.Context, credentials entity.SignUpCredentials) error {
	m.signUps = append(m.signUps, credentials)
	return m.signUpErr
}

type mockWeatherUseCase struct {
	err     error
	queries []entity.LocationQuery
}

func (m *mockWeatherUseCase) Find(ctx context.Context, query entity.LocationQuery) (*model.WeatherReport, error) {
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	name := query.Name
	if query.Mode == entity.ModeCoordinates {
		name = "Somewhere"
	}
	return &model.WeatherReport{
		Current: entity.CurrentConditions{Name: name, Temperature: 30, Description: "clear sky", Icon: "01d"},
		Daily: []entity.DailySummary{
			{Date: "Mon, 1/1", Temperature: 30, Icon: "01d"},
			{Date: "Tue, 1/2", Temperature: 29, Icon: "10d"},
			{Date: "Wed, 1/3", Temperature: 28, Icon: "09d"},
			{Date: "Thu, 1/4", Temperature: 27, Icon: "04d"},
		},
	}, nil
}

func (m *mockWeatherUseCase) FindByLocation(ctx context.Context, name string) (*model.WeatherReport, error) {
	return m.Find(ctx, entity.ByName(name))
}

func (m *mockWeatherUseCase) FindByCoordinates(ctx context.Context, latitude, longitude float64) (*model.WeatherReport, error) {
	return m.Find(ctx, entity.ByCoordinates(latitude, longitude))
}

type stubHealthUseCase struct {
	response model.HealthResponse
}

func (s stubHealthUseCase) CheckHealth() model.HealthResponse {
	return s.response
}
