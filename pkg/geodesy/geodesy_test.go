package geodesy

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestHaversineDistanceKnown(t *testing.T) {
	// London to Paris, ~343.5 km per well-known reference values.
	london := orb.Point{-0.1278, 51.5074}
	paris := orb.Point{2.3522, 48.8566}

	d := HaversineDistance(london, paris)
	if math.Abs(d-343500) > 5000 {
		t.Errorf("HaversineDistance(london, paris) = %v, want ~343500", d)
	}
}

func TestHaversineDestinationRoundTrips(t *testing.T) {
	origin := orb.Point{-122.4194, 37.7749}
	bearing := radians(45)
	distance := 10000.0

	dest := HaversineDestination(origin, bearing, distance)
	got := HaversineDistance(origin, dest)
	if math.Abs(got-distance) > 1 {
		t.Errorf("round trip distance = %v, want ~%v", got, distance)
	}
}

func TestVincentyDistanceKnown(t *testing.T) {
	// A point in south-east London to the Paris Observatory, ~333.1 km on
	// the WGS84 ellipsoid.
	p1 := orb.Point{0.1298, 51.4778}
	p2 := orb.Point{2.3387, 48.8406}

	d := VincentyDistance(p1, p2)
	if math.Abs(d-333100) > 8000 {
		t.Errorf("VincentyDistance = %v, want ~333100", d)
	}
}

func TestVincentyDistanceZeroForCoincidentPoints(t *testing.T) {
	p := orb.Point{1, 1}
	if d := VincentyDistance(p, p); d != 0 {
		t.Errorf("VincentyDistance(p, p) = %v, want 0", d)
	}
}
