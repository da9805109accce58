package entity

import "time"

// Dashboard is the view state of one visitor's weather card.
//
// In ModeLocation only Search may be non-empty, in ModeCoordinates only Latitude and Longitude.
// Sequence is the number of the latest issued search and Applied the number of the search
// whose result is shown. A result is applied only when its number equals Sequence.
type Dashboard struct {
	ID        string             `json:"id"`
	Mode      LocationMode       `json:"mode"`
	Search    string             `json:"search"`
	Latitude  string             `json:"latitude"`
	Longitude string             `json:"longitude"`
	Current   *CurrentConditions `json:"current,omitempty"`
	Daily     []DailySummary     `json:"daily,omitempty"`
	ShowMore  bool               `json:"showMore"`
	Error     string             `json:"error,omitempty"`
	Sequence  uint64             `json:"sequence"`
	Applied   uint64             `json:"applied"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// NewDashboard returns an empty dashboard in the given mode.
func NewDashboard(id string, mode LocationMode) *Dashboard {
	if !mode.Valid() {
		mode = ModeCoordinates
	}
	return &Dashboard{ID: id, Mode: mode, UpdatedAt: time.Now()}
}

// SwitchMode changes the query mode and clears the input fields of the mode being left.
// Switching to the current mode changes nothing.
func (d *Dashboard) SwitchMode(mode LocationMode) {
	if !mode.Valid() || mode == d.Mode {
		return
	}
	switch d.Mode {
	case ModeLocation:
		d.Search = ""
	case ModeCoordinates:
		d.Latitude = ""
		d.Longitude = ""
	}
	d.Mode = mode
}

// SetFields stores input text for the active mode only.
func (d *Dashboard) SetFields(search, latitude, longitude string) {
	if d.Mode == ModeLocation {
		d.Search = search
		return
	}
	d.Latitude = latitude
	d.Longitude = longitude
}

// Begin reserves the number of a new search.
func (d *Dashboard) Begin() uint64 {
	d.Sequence++
	return d.Sequence
}

// IsLatest reports whether seq is still the newest search issued on this dashboard.
func (d *Dashboard) IsLatest(seq uint64) bool {
	return seq == d.Sequence
}

// Succeed shows a fetched result and clears any previous error.
func (d *Dashboard) Succeed(seq uint64, current CurrentConditions, daily []DailySummary) {
	d.Current = &current
	d.Daily = daily
	d.Error = ""
	d.Applied = seq
}

// Fail clears the shown weather and displays message.
func (d *Dashboard) Fail(seq uint64, message string) {
	d.Current = nil
	d.Daily = nil
	d.Error = message
	d.Applied = seq
}

// Clone returns a deep copy so stored state is never shared with callers.
func (d *Dashboard) Clone() *Dashboard {
	c := *d
	if d.Current != nil {
		current := *d.Current
		c.Current = &current
	}
	if d.Daily != nil {
		c.Daily = append([]DailySummary(nil), d.Daily...)
	}
	return &c
}
