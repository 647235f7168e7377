package addresses

import "testing"

func TestParse_StrictForm(t *testing.T) {
	addr := Parse("123 Main St, Chicago, IL 60637")

	if addr.Street != "123 Main St" {
		t.Errorf("Street = %q, want %q", addr.Street, "123 Main St")
	}
	if addr.City != "Chicago" {
		t.Errorf("City = %q, want %q", addr.City, "Chicago")
	}
	if addr.State != "IL" {
		t.Errorf("State = %q, want %q", addr.State, "IL")
	}
	if addr.Zip != "60637" {
		t.Errorf("Zip = %q, want %q", addr.Zip, "60637")
	}
	if addr.FullAddress != "123 Main St, Chicago, IL 60637" {
		t.Errorf("FullAddress = %q, want original text", addr.FullAddress)
	}
	if addr.Coordinates != nil {
		t.Error("Coordinates should never be set by the parser")
	}
}

func TestParse_RelaxedForm(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		street string
		city   string
		zip    string
	}{
		{
			name:   "no comma before city",
			input:  "4554 N Broadway Chicago, IL 60640",
			street: "4554 N Broadway",
			city:   "Chicago",
			zip:    "60640",
		},
		{
			name:   "no commas at all",
			input:  "1616 Payne St Evanston IL 60201",
			street: "1616 Payne St",
			city:   "Evanston",
			zip:    "60201",
		},
		{
			name:   "two-word municipality",
			input:  "1900 Mannheim Rd Melrose Park, IL 60160",
			street: "1900 Mannheim Rd",
			city:   "Melrose Park",
			zip:    "60160",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := Parse(tt.input)
			if addr.Street != tt.street {
				t.Errorf("Street = %q, want %q", addr.Street, tt.street)
			}
			if addr.City != tt.city {
				t.Errorf("City = %q, want %q", addr.City, tt.city)
			}
			if addr.State != "IL" {
				t.Errorf("State = %q, want IL", addr.State)
			}
			if addr.Zip != tt.zip {
				t.Errorf("Zip = %q, want %q", addr.Zip, tt.zip)
			}
		})
	}
}

func TestParse_Fallback(t *testing.T) {
	input := "gibberish with no structure"
	addr := Parse(input)

	if addr.FullAddress != input {
		t.Errorf("FullAddress = %q, want %q", addr.FullAddress, input)
	}
	if addr.Street != input {
		t.Errorf("Street = %q, want whole input kept as street", addr.Street)
	}
	if addr.City != "" || addr.State != "" || addr.Zip != "" {
		t.Errorf("city/state/zip = %q/%q/%q, want all empty", addr.City, addr.State, addr.Zip)
	}
}

func TestParse_Empty(t *testing.T) {
	for _, input := range []string{"", "   "} {
		addr := Parse(input)
		if addr.FullAddress != "" || addr.Street != "" {
			t.Errorf("Parse(%q) = %+v, want zero Address", input, addr)
		}
	}
}
