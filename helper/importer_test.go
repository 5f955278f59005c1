package helper

import (
	"strings"
	"testing"
)

func TestParsePackageFilename(t *testing.T) {
	cases := []struct {
		filename   string
		wantName   string
		wantDest   string
		wantDays   int
		wantNights int
	}{
		{
			filename:   "Goa - 4 Days 3 Nights Tour Package",
			wantName:   "4D/3N Goa Tour Package",
			wantDest:   "Goa",
			wantDays:   4,
			wantNights: 3,
		},
		{
			filename:   "Munnar - 3Days 2Nights tour package",
			wantName:   "3D/2N Munnar Tour Package",
			wantDest:   "Munnar",
			wantDays:   3,
			wantNights: 2,
		},
		{
			filename:   "Kashmir 5 days 4 nights",
			wantName:   "5D/4N Kashmir Tour Package",
			wantDest:   "Kashmir",
			wantDays:   5,
			wantNights: 4,
		},
		{
			// không có số ngày: mặc định 1 ngày 0 đêm
			filename:   "Ooty Special",
			wantName:   "1D/0N Ooty Tour Package",
			wantDest:   "Ooty",
			wantDays:   1,
			wantNights: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			got := ParsePackageFilename(tc.filename)
			if got.Name != tc.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tc.wantName)
			}
			if got.Destination != tc.wantDest {
				t.Errorf("Destination = %q, want %q", got.Destination, tc.wantDest)
			}
			if got.DurationDays != tc.wantDays {
				t.Errorf("DurationDays = %d, want %d", got.DurationDays, tc.wantDays)
			}
			if got.DurationNights != tc.wantNights {
				t.Errorf("DurationNights = %d, want %d", got.DurationNights, tc.wantNights)
			}
		})
	}
}

func TestExtractDocContent(t *testing.T) {
	content := "Welcome to our amazing tour. " + strings.Repeat("x", 600) + "\n" +
		"Inclusions: Hotel stay, breakfast, transfers\n" +
		"Exclusions: Airfare, lunch\n" +
		"Itinerary\nDay 1: Arrival"

	got := ExtractDocContent(content)

	if len(got.Description) != 500 {
		t.Errorf("Description length = %d, want 500", len(got.Description))
	}
	if !strings.Contains(got.Inclusions, "Hotel stay") {
		t.Errorf("Inclusions = %q, want window containing %q", got.Inclusions, "Hotel stay")
	}
	if !strings.Contains(got.Exclusions, "Airfare") {
		t.Errorf("Exclusions = %q, want window containing %q", got.Exclusions, "Airfare")
	}
	if got.Itinerary == "" {
		t.Error("Itinerary is empty, want full content")
	}
}

func TestExtractDocContentShort(t *testing.T) {
	got := ExtractDocContent("Short description only")
	if got.Description != "Short description only" {
		t.Errorf("Description = %q", got.Description)
	}
	if got.Inclusions != "" || got.Exclusions != "" || got.Itinerary != "" {
		t.Error("expected empty sections when keywords are absent")
	}

	empty := ExtractDocContent("")
	if empty.Description != "" {
		t.Error("expected empty result for empty content")
	}
}

func TestCategoryForDestination(t *testing.T) {
	cases := []struct {
		destination string
		want        string
	}{
		{"Goa", "Beach"},
		{"Alleppey", "Backwaters"},
		{"Munnar", "Hill Station"},
		{"Kashmir", "Religious"},
		{"Rajasthan", "Heritage"},
		{"Calicut", "City Tour"},
		{"Unknown Place", "Tour Packages"},
	}
	for _, tc := range cases {
		if got := CategoryForDestination(tc.destination); got != tc.want {
			t.Errorf("CategoryForDestination(%q) = %q, want %q", tc.destination, got, tc.want)
		}
	}
}

func TestStateForDestination(t *testing.T) {
	if got := StateForDestination("Kochi"); got != "Kerala" {
		t.Errorf("StateForDestination(Kochi) = %q, want Kerala", got)
	}
	if got := StateForDestination("Somewhere"); got != "India" {
		t.Errorf("StateForDestination(Somewhere) = %q, want India", got)
	}
}

func TestDefaultItinerary(t *testing.T) {
	itinerary := DefaultItinerary("Goa", 3)

	if !strings.Contains(itinerary, "Day 1: Arrival at Goa") {
		t.Error("missing arrival day")
	}
	if !strings.Contains(itinerary, "Day 2: Goa Sightseeing") {
		t.Error("missing sightseeing day")
	}
	if !strings.Contains(itinerary, "Day 3: Departure") {
		t.Error("missing departure day")
	}

	oneDay := DefaultItinerary("Goa", 1)
	if !strings.Contains(oneDay, "Day 1: Arrival at Goa") {
		t.Error("single day itinerary should still have arrival")
	}
	if strings.Contains(oneDay, "Departure") {
		t.Error("single day itinerary should not have a departure day")
	}
}
