package aircraft

import (
	"math"
	"testing"
)

const validAircraftJSON = `{
	"name": "Cessna 172",
	"mtow": 2400,
	"takeoff": {"groundRoll": 800, "totalDistance": 1400, "speed": 55},
	"climb": {"speed": 75, "rate": 730},
	"glide": {"distance": 1.52, "speed": 65},
	"landing": {"groundRoll": 575, "totalDistance": 1335, "speed": 60, "descentRate": 600}
}`

func TestParseScenarioA1MTOW(t *testing.T) {
	a, err := Parse([]byte(validAircraftJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if math.Abs(a.MTOWKilograms()-1088.62) > 0.5 {
		t.Errorf("MTOWKilograms() = %v, want ~1088.62", a.MTOWKilograms())
	}
}

func TestParseAutoGeneratesID(t *testing.T) {
	a, err := Parse([]byte(validAircraftJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.ID == "" {
		t.Error("expected auto-generated ID, got empty string")
	}
}

func TestParseRejectsGroundRollExceedingTotalDistance(t *testing.T) {
	bad := `{
		"name": "bad",
		"mtow": 2000,
		"takeoff": {"groundRoll": 2000, "totalDistance": 1000, "speed": 55},
		"climb": {"speed": 75, "rate": 730},
		"glide": {"distance": 1.5, "speed": 65},
		"landing": {"groundRoll": 500, "totalDistance": 1000, "speed": 60, "descentRate": 600}
	}`
	if _, err := Parse([]byte(bad)); err == nil {
		t.Error("expected error for takeoff.groundRoll > takeoff.totalDistance")
	}
}

func TestParseRejectsNonPositiveGlideDistance(t *testing.T) {
	bad := `{
		"name": "bad",
		"mtow": 2000,
		"takeoff": {"groundRoll": 500, "totalDistance": 1000, "speed": 55},
		"climb": {"speed": 75, "rate": 730},
		"glide": {"distance": 0, "speed": 65},
		"landing": {"groundRoll": 500, "totalDistance": 1000, "speed": 60, "descentRate": 600}
	}`
	if _, err := Parse([]byte(bad)); err == nil {
		t.Error("expected error for non-positive glide distance")
	}
}
