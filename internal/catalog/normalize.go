package catalog

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/chicagofoodaccess/pantry-terminal/internal/addresses"
	"github.com/chicagofoodaccess/pantry-terminal/internal/hours"
	"github.com/chicagofoodaccess/pantry-terminal/internal/models"
)

var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize converts one raw organization record into the canonical
// Resource shape. The index participates in id generation so that
// duplicate organization names still produce unique ids. Deterministic
// for a given (record, index) pair; never fails.
func Normalize(raw models.RawOrganization, index int) models.Resource {
	name := raw.OrganizationName
	if name == "" {
		name = "Unknown"
	}

	address := addresses.Parse(raw.Address)

	// Only explicit, finite coordinates from the source record count.
	// The address parser never invents any.
	if raw.Latitude != nil && raw.Longitude != nil &&
		!math.IsNaN(*raw.Latitude) && !math.IsInf(*raw.Latitude, 0) &&
		!math.IsNaN(*raw.Longitude) && !math.IsInf(*raw.Longitude, 0) {
		address.Coordinates = &models.LngLat{Lng: *raw.Longitude, Lat: *raw.Latitude}
	}

	primary := pickPrimaryProgram(raw.Programs)

	var week models.WeeklySchedule
	if primary != nil {
		week = hours.BuildWeeklySchedule(primary.RegularHours)
	}

	return models.Resource{
		ID:               fmt.Sprintf("org-%d-%s", index, slugify(name)),
		Name:             name,
		Type:             models.ResourceTypeFoodPantry,
		Description:      buildDescription(name, raw.Programs),
		Address:          address,
		Hours:            week,
		RequiresReferral: deriveRequiresReferral(raw.Programs),
		HasDelivery:      deriveHasDelivery(raw.Programs),
		Contact:          buildContact(raw, primary),
	}
}

// pickPrimaryProgram chooses the program that supplies hours and
// contact fallbacks: the first whose category mentions "pantry", else
// the first program, else nil.
func pickPrimaryProgram(programs []models.RawProgram) *models.RawProgram {
	if len(programs) == 0 {
		return nil
	}
	for i := range programs {
		if strings.Contains(strings.ToLower(programs[i].Category), "pantry") {
			return &programs[i]
		}
	}
	return &programs[0]
}

// deriveHasDelivery reports whether any program category mentions
// delivery.
func deriveHasDelivery(programs []models.RawProgram) bool {
	for _, p := range programs {
		if strings.Contains(strings.ToLower(p.Category), "delivery") {
			return true
		}
	}
	return false
}

// deriveRequiresReferral returns true when referral language appears in
// any program's category, notes, or description; nil otherwise. Never
// false: missing referral language means unknown, not walk-in.
func deriveRequiresReferral(programs []models.RawProgram) *bool {
	for _, p := range programs {
		text := strings.ToLower(strings.Join([]string{p.Category, p.Notes, p.Description}, " "))
		if strings.Contains(text, "referral") {
			yes := true
			return &yes
		}
	}
	return nil
}

// buildDescription summarizes the distinct program categories in
// first-seen order, prefixed by the organization name. Empty when no
// program has a category.
func buildDescription(name string, programs []models.RawProgram) string {
	var categories []string
	seen := make(map[string]bool)
	for _, p := range programs {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	if len(categories) == 0 {
		return ""
	}
	return fmt.Sprintf("%s offers: %s.", name, strings.Join(categories, " • "))
}

// buildContact applies the contact precedence rules: organization-level
// fields win, the primary program backfills phone and contact name, and
// email only ever comes from the primary program.
func buildContact(raw models.RawOrganization, primary *models.RawProgram) models.Contact {
	contact := models.Contact{
		Phone:       raw.Phone,
		Website:     raw.Website,
		ContactName: raw.ContactName,
	}
	if primary != nil {
		if contact.Phone == "" {
			contact.Phone = primary.Phone
		}
		if contact.ContactName == "" {
			contact.ContactName = primary.ContactName
		}
		contact.Email = primary.Email
	}
	return contact
}

// slugify lowercases a name and collapses non-alphanumeric runs into
// single hyphens.
func slugify(name string) string {
	slug := slugRegex.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
