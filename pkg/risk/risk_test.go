package risk

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/deadstick-go/deadstick/pkg/aircraft"
	"github.com/deadstick-go/deadstick/pkg/site"
	"github.com/deadstick-go/deadstick/pkg/surface"
)

func square(x0, y0, side float64) orb.Polygon {
	ring := orb.Ring{
		{x0, y0}, {x0 + side, y0}, {x0 + side, y0 + side}, {x0, y0 + side}, {x0, y0},
	}
	return orb.Polygon{ring}
}

func TestAssessRiskWaterIsUnsafe(t *testing.T) {
	prefs := DefaultPreferences()
	s := site.Site{Surface: surface.Water}
	a := aircraft.Aircraft{Landing: aircraft.Landing{GroundRollFt: 500, TotalDistanceFt: 1000}}
	s.Start, s.End = orb.Point{0, 0}, orb.Point{0, 0.01}

	assessment := AssessRisk(prefs, s, a)
	if assessment.Overall != Unsafe {
		t.Errorf("water surface should be Unsafe, got %v", assessment.Overall)
	}
}

func TestComposePairwiseDisjoint(t *testing.T) {
	// Overlapping safe and risky squares; after composition the risky
	// region should not include the overlap.
	entries := []SiteRisk{
		{Classification: Safe, Polygon: square(0, 0, 10)},
		{Classification: Risky, Polygon: square(5, 0, 10)},
	}

	composed := Compose(entries)

	safeArea := multiPolygonArea(composed[Safe])
	riskyArea := multiPolygonArea(composed[Risky])

	if safeArea <= 0 {
		t.Errorf("expected positive safe area, got %v", safeArea)
	}
	if riskyArea <= 0 {
		t.Errorf("expected positive risky area, got %v", riskyArea)
	}

	// The two composed regions should no longer overlap: their areas
	// should sum to less than the naive sum of both original squares
	// (100 + 100 = 200), since the overlap (50) has been removed from risky.
	if safeArea+riskyArea >= 200 {
		t.Errorf("safe+risky area = %v, want < 200 (overlap must be removed)", safeArea+riskyArea)
	}
}

func multiPolygonArea(mp orb.MultiPolygon) float64 {
	var total float64
	for _, p := range mp {
		total += planar.Area(p)
	}
	if total < 0 {
		total = -total
	}
	return total
}
