package dubins

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/deadstick-go/deadstick/pkg/geodesy"
)

func TestGeographicRoundTrip(t *testing.T) {
	origin := orb.Point{-122.419, 37.774}
	frame := newLocalFrame(origin)

	points := []orb.Point{
		{-122.40, 37.80},
		{-122.45, 37.70},
		{-122.419, 37.774},
	}

	for _, p := range points {
		local := frame.toLocal(GeoPose{Point: p, Bearing: 0})
		back := frame.toGeo(local.Point)

		if d := geodesy.HaversineDistance(p, back); d > 0.1 {
			t.Errorf("round trip of %v = %v, off by %v m", p, back, d)
		}
	}
}

func TestGeoCandidatesNonEmpty(t *testing.T) {
	start := GeoPose{Point: orb.Point{-122.45, 37.70}, Bearing: 90}
	end := GeoPose{Point: orb.Point{-122.40, 37.72}, Bearing: 180}

	cands := GeoCandidates(start, end, 200)
	if len(cands) == 0 {
		t.Fatalf("expected at least one geo candidate")
	}
}
