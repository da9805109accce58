package entity

import (
	"fmt"
	"strconv"
)

// LocationMode tells whether a location is given by place name or by coordinate pair.
type LocationMode string

const (
	ModeLocation    LocationMode = "location"
	ModeCoordinates LocationMode = "coordinates"
)

// Valid reports whether m is one of the known modes.
func (m LocationMode) Valid() bool {
	return m == ModeLocation || m == ModeCoordinates
}

// LocationQuery identifies a place either by Name (ModeLocation) or by Latitude/Longitude (ModeCoordinates).
type LocationQuery struct {
	Mode      LocationMode `json:"mode"`
	Name      string       `json:"name,omitempty"`
	Latitude  float64      `json:"lat,omitempty"`
	Longitude float64      `json:"lon,omitempty"`
}

func ByName(name string) LocationQuery {
	return LocationQuery{Mode: ModeLocation, Name: name}
}

func ByCoordinates(lat, lon float64) LocationQuery {
	return LocationQuery{Mode: ModeCoordinates, Latitude: lat, Longitude: lon}
}

func (q LocationQuery) String() string {
	if q.Mode == ModeCoordinates {
		return fmt.Sprintf("lat=%s lon=%s",
			strconv.FormatFloat(q.Latitude, 'f', -1, 64),
			strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	}
	return fmt.Sprintf("q=%s", q.Name)
}

// Toggle returns the other mode.
func (m LocationMode) Toggle() LocationMode {
	if m == ModeLocation {
		return ModeCoordinates
	}
	return ModeLocation
}
