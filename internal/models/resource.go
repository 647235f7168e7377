package models

import "time"

// LngLat is a geographic coordinate pair. The source dataset stores
// coordinates longitude-first, so the field order mirrors that.
type LngLat struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Address is the best-effort parsed form of a free-text address.
// FullAddress always preserves the original text; the parsed components
// may be empty when no pattern matched. Coordinates is nil unless the
// source record carried explicit geocoded coordinates.
type Address struct {
	Street      string  `json:"street"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Zip         string  `json:"zip"`
	FullAddress string  `json:"full_address"`
	Coordinates *LngLat `json:"coordinates,omitempty"`
}

// HasCoordinates reports whether the address was geocoded.
func (a Address) HasCoordinates() bool {
	return a.Coordinates != nil
}

// DayWindow is a single day's open/close window. Times are 24-hour
// zero-padded "HH:MM" strings.
type DayWindow struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"is_open"`
}

// WeeklySchedule maps lowercase weekday names ("monday".."sunday") to
// open windows. Days without known hours are simply absent. A nil map
// means hours are unknown for the whole resource, which is distinct
// from an all-closed week.
type WeeklySchedule map[string]DayWindow

// DayKeys lists the weekday keys in display order.
var DayKeys = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// DayKeyFor returns the schedule key for a time.Weekday.
func DayKeyFor(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

// Contact holds the contact channels for a resource. Empty strings mean
// the channel is unknown.
type Contact struct {
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
}

// Resource is the canonical food-access entity built once at startup
// from the raw dataset.
type Resource struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Description string         `json:"description,omitempty"`
	Address     Address        `json:"address"`
	Hours       WeeklySchedule `json:"hours,omitempty"`

	// RequiresReferral is true when referral language was found in any
	// program, nil when unknown. It is never false: absence of referral
	// language does not prove walk-ins are accepted.
	RequiresReferral *bool `json:"requires_referral,omitempty"`

	HasDelivery bool    `json:"has_delivery"`
	Contact     Contact `json:"contact"`

	// Reserved for future curation.
	Notes           string `json:"notes,omitempty"`
	DeliveryDetails string `json:"delivery_details,omitempty"`
}

// ResourceTypeFoodPantry is the only resource type the current dataset
// produces.
const ResourceTypeFoodPantry = "food_pantry"
