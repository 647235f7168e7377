package models

import "encoding/json"

// RawDataset is the top-level shape of the pantry dataset file.
type RawDataset struct {
	FoodPantries []RawOrganization `json:"food_pantries"`
}

// RawOrganization is one organization record from the source dataset.
// The schema is externally owned; every field is optional free text
// except the program list.
type RawOrganization struct {
	OrganizationName string       `json:"organization_name"`
	Address          string       `json:"address"`
	Latitude         *float64     `json:"latitude,omitempty"`
	Longitude        *float64     `json:"longitude,omitempty"`
	Phone            string       `json:"phone,omitempty"`
	Website          string       `json:"website,omitempty"`
	ContactName      string       `json:"contact_name,omitempty"`
	Programs         []RawProgram `json:"programs"`
}

// RawProgram is one program within an organization record.
type RawProgram struct {
	Category     string     `json:"category"`
	RegularHours HoursLines `json:"regular_hours,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Email        string     `json:"email,omitempty"`
	ContactName  string     `json:"contact_name,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Description  string     `json:"description,omitempty"`
}

// HoursLines holds the free-text "regular hours" field, which the source
// dataset encodes as either a single string or an ordered array of
// strings.
type HoursLines []string

// UnmarshalJSON accepts both the string and the array form.
func (h *HoursLines) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*h = HoursLines{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*h = HoursLines(many)
	return nil
}
