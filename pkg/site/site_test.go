package site

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestReverseBearingPanicsOnNonReversible(t *testing.T) {
	s := Site{Reversible: false, Start: orb.Point{0, 0}, End: orb.Point{0, 1}}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic calling ReverseBearing on non-reversible site")
		}
	}()
	s.ReverseBearing()
}

func TestSiteIDStableAcrossConstruction(t *testing.T) {
	start := orb.Point{-122.4, 37.7}
	end := orb.Point{-122.5, 37.8}

	id1 := siteID(start, end)
	id2 := siteID(start, end)
	if id1 != id2 {
		t.Errorf("siteID not deterministic: %v != %v", id1, id2)
	}

	otherEnd := orb.Point{-122.5, 37.81}
	if id3 := siteID(start, otherEnd); id3 == id1 {
		t.Errorf("siteID did not change with endpoint: %v", id3)
	}
}

func TestParseValidSite(t *testing.T) {
	input := `{
		"name": "Farmer's field",
		"reversible": true,
		"surface": "Grass",
		"humanPresence": "Sparse",
		"usage": "Agricultural",
		"elevation": 120,
		"coordinates": {"start": [37.7, -122.4], "end": [37.71, -122.41]},
		"surveyDate": "2024-01-01",
		"remarks": "soft after rain"
	}`
	s, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.ID == "" {
		t.Error("expected derived ID")
	}
	if !s.Reversible {
		t.Error("expected reversible site")
	}
}

func TestParseRejectsOutOfRangeLatitude(t *testing.T) {
	input := `{
		"name": "bad",
		"reversible": false,
		"surface": "Asphalt",
		"usage": "Aeronautical",
		"elevation": 0,
		"coordinates": {"start": [95, -122.4], "end": [37.71, -122.41]}
	}`
	if _, err := Parse([]byte(input)); err == nil {
		t.Error("expected error for out-of-range latitude")
	}
}
