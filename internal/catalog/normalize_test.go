package catalog

import (
	"testing"

	"github.com/chicagofoodaccess/pantry-terminal/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestNormalize_FullRecord(t *testing.T) {
	raw := models.RawOrganization{
		OrganizationName: "St. Mark's Food Pantry",
		Address:          "123 Main St, Chicago, IL 60637",
		Latitude:         floatPtr(41.781),
		Longitude:        floatPtr(-87.604),
		Phone:            "(773) 555-0100",
		Website:          "https://stmarks.example.org",
		Programs: []models.RawProgram{
			{
				Category:     "Food Pantry",
				RegularHours: models.HoursLines{"Saturday 1:00 PM - 3:00 PM"},
				Email:        "pantry@stmarks.example.org",
			},
			{
				Category: "Home Delivery",
				Notes:    "Requires referral from a case worker.",
			},
		},
	}

	r := Normalize(raw, 3)

	if r.ID != "org-3-st-mark-s-food-pantry" {
		t.Errorf("ID = %q, want org-3-st-mark-s-food-pantry", r.ID)
	}
	if r.Name != "St. Mark's Food Pantry" {
		t.Errorf("Name = %q", r.Name)
	}
	if r.Type != models.ResourceTypeFoodPantry {
		t.Errorf("Type = %q, want %q", r.Type, models.ResourceTypeFoodPantry)
	}
	if r.Address.Coordinates == nil {
		t.Fatal("Coordinates = nil, want explicit source coordinates")
	}
	if r.Address.Coordinates.Lng != -87.604 || r.Address.Coordinates.Lat != 41.781 {
		t.Errorf("Coordinates = %+v, want lng -87.604 lat 41.781", *r.Address.Coordinates)
	}
	if r.Hours == nil {
		t.Fatal("Hours = nil, want parsed schedule from primary program")
	}
	if r.Hours["saturday"].Open != "13:00" {
		t.Errorf("saturday open = %q, want 13:00", r.Hours["saturday"].Open)
	}
	if !r.HasDelivery {
		t.Error("HasDelivery = false, want true (delivery program present)")
	}
	if r.RequiresReferral == nil || !*r.RequiresReferral {
		t.Errorf("RequiresReferral = %v, want true", r.RequiresReferral)
	}
	want := "St. Mark's Food Pantry offers: Food Pantry • Home Delivery."
	if r.Description != want {
		t.Errorf("Description = %q, want %q", r.Description, want)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	r := Normalize(models.RawOrganization{}, 0)

	if r.Name != "Unknown" {
		t.Errorf("Name = %q, want Unknown sentinel", r.Name)
	}
	if r.ID != "org-0-unknown" {
		t.Errorf("ID = %q, want org-0-unknown", r.ID)
	}
	if r.Address.Coordinates != nil {
		t.Error("Coordinates set without source lat/lng")
	}
	if r.Hours != nil {
		t.Errorf("Hours = %v, want nil with no programs", r.Hours)
	}
	if r.HasDelivery {
		t.Error("HasDelivery = true, want false")
	}
	if r.RequiresReferral != nil {
		t.Errorf("RequiresReferral = %v, want nil (unknown, never false)", *r.RequiresReferral)
	}
	if r.Description != "" {
		t.Errorf("Description = %q, want empty", r.Description)
	}
}

func TestNormalize_PrimaryProgramSelection(t *testing.T) {
	raw := models.RawOrganization{
		OrganizationName: "Northside Services",
		Programs: []models.RawProgram{
			{Category: "Soup Kitchen", RegularHours: models.HoursLines{"Monday 5:00 PM - 7:00 PM"}},
			{Category: "Emergency Food Pantry", RegularHours: models.HoursLines{"Tuesday 9:00 AM - 11:00 AM"}},
		},
	}

	r := Normalize(raw, 0)
	if r.Hours == nil {
		t.Fatal("Hours = nil")
	}
	if _, ok := r.Hours["tuesday"]; !ok {
		t.Error("hours should come from the pantry program, not the first program")
	}
	if _, ok := r.Hours["monday"]; ok {
		t.Error("soup kitchen hours used despite a pantry program being present")
	}
}

func TestNormalize_FirstProgramWhenNoPantry(t *testing.T) {
	raw := models.RawOrganization{
		OrganizationName: "Meals Group",
		Programs: []models.RawProgram{
			{Category: "Soup Kitchen", RegularHours: models.HoursLines{"Monday 5:00 PM - 7:00 PM"}},
			{Category: "Community Garden"},
		},
	}

	r := Normalize(raw, 0)
	if r.Hours == nil {
		t.Fatal("Hours = nil")
	}
	if _, ok := r.Hours["monday"]; !ok {
		t.Error("hours should fall back to the first program")
	}
}

func TestNormalize_ContactPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		raw       models.RawOrganization
		wantPhone string
		wantName  string
		wantEmail string
	}{
		{
			name: "org fields win",
			raw: models.RawOrganization{
				OrganizationName: "A",
				Phone:            "(312) 555-0001",
				ContactName:      "Org Contact",
				Programs: []models.RawProgram{
					{Category: "Food Pantry", Phone: "(312) 555-0002", ContactName: "Program Contact", Email: "p@example.org"},
				},
			},
			wantPhone: "(312) 555-0001",
			wantName:  "Org Contact",
			wantEmail: "p@example.org",
		},
		{
			name: "program backfills",
			raw: models.RawOrganization{
				OrganizationName: "B",
				Programs: []models.RawProgram{
					{Category: "Food Pantry", Phone: "(312) 555-0002", ContactName: "Program Contact"},
				},
			},
			wantPhone: "(312) 555-0002",
			wantName:  "Program Contact",
		},
		{
			name: "no programs, no fallbacks",
			raw: models.RawOrganization{
				OrganizationName: "C",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Normalize(tt.raw, 0)
			if r.Contact.Phone != tt.wantPhone {
				t.Errorf("Phone = %q, want %q", r.Contact.Phone, tt.wantPhone)
			}
			if r.Contact.ContactName != tt.wantName {
				t.Errorf("ContactName = %q, want %q", r.Contact.ContactName, tt.wantName)
			}
			if r.Contact.Email != tt.wantEmail {
				t.Errorf("Email = %q, want %q", r.Contact.Email, tt.wantEmail)
			}
		})
	}
}

func TestNormalize_DescriptionDedupes(t *testing.T) {
	raw := models.RawOrganization{
		OrganizationName: "Dual Site Pantry",
		Programs: []models.RawProgram{
			{Category: "Food Pantry"},
			{Category: "Food Pantry"},
			{Category: "Home Delivery"},
		},
	}

	r := Normalize(raw, 0)
	want := "Dual Site Pantry offers: Food Pantry • Home Delivery."
	if r.Description != want {
		t.Errorf("Description = %q, want %q", r.Description, want)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"St. Mark's Food Pantry", "st-mark-s-food-pantry"},
		{"  Spaces  Everywhere  ", "spaces-everywhere"},
		{"---", ""},
		{"ALLCAPS", "allcaps"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
