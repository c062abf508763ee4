package engine

import (
	"context"
	"testing"

	"github.com/paulmach/orb"

	"github.com/deadstick-go/deadstick/pkg/aircraft"
	"github.com/deadstick-go/deadstick/pkg/dubins"
	"github.com/deadstick-go/deadstick/pkg/risk"
	"github.com/deadstick-go/deadstick/pkg/site"
	"github.com/deadstick-go/deadstick/pkg/surface"
)

func testAircraft() aircraft.Aircraft {
	return aircraft.Aircraft{
		Glide:   aircraft.Glide{DistanceNMPer1000ft: 1.5, SpeedKt: 65},
		Landing: aircraft.Landing{GroundRollFt: 600, TotalDistanceFt: 1000, SpeedKt: 60, DescentRateFPM: 500},
	}
}

func testSites() []site.Site {
	return []site.Site{
		{ID: "a", Reversible: true, Surface: surface.Asphalt, Usage: site.Agricultural, Start: orb.Point{0, 0}, End: orb.Point{0, 0.004}},
		{ID: "b", Reversible: false, Surface: surface.Water, Usage: site.Waterway, Start: orb.Point{0.01, 0}, End: orb.Point{0.01, 0.004}},
	}
}

func TestLocationHitboxesOnePerSite(t *testing.T) {
	sites := testSites()
	hitboxes := LocationHitboxes(sites, 50)
	if len(hitboxes) != len(sites) {
		t.Fatalf("got %d hitboxes, want %d", len(hitboxes), len(sites))
	}
	for _, s := range sites {
		if _, ok := hitboxes[s.ID]; !ok {
			t.Errorf("missing hitbox for site %q", s.ID)
		}
	}
}

func TestReachabilityGeoJSONProducesByIDPerSite(t *testing.T) {
	prefs := risk.DefaultPreferences()
	sites := testSites()
	a := testAircraft()

	result, err := ReachabilityGeoJSON(context.Background(), prefs, sites, a, 150)
	if err != nil {
		t.Fatalf("ReachabilityGeoJSON: %v", err)
	}
	if len(result.ByID) != len(sites) {
		t.Errorf("got %d byID entries, want %d", len(result.ByID), len(sites))
	}
	if _, ok := result.ByID["b"]; !ok {
		t.Fatal("missing entry for water site")
	}
	if result.ByID["b"].Properties["risk"] != risk.Unsafe.String() {
		t.Errorf("water site risk = %v, want %v", result.ByID["b"].Properties["risk"], risk.Unsafe.String())
	}
}

func TestLocationGeoJSONExcludesAeronauticalSites(t *testing.T) {
	prefs := risk.DefaultPreferences()
	sites := testSites()
	sites = append(sites, site.Site{ID: "c", Usage: site.Aeronautical, Start: orb.Point{1, 1}, End: orb.Point{1, 1.01}})
	a := testAircraft()

	fc := LocationGeoJSON(prefs, sites, a)
	for _, f := range fc.Features {
		if f.ID == "c" {
			t.Error("expected aeronautical site to be excluded")
		}
	}
	if len(fc.Features) != 2 {
		t.Errorf("got %d features, want 2", len(fc.Features))
	}
}

func TestLocationGeoJSONAddsStopDashForNonReversible(t *testing.T) {
	prefs := risk.DefaultPreferences()
	sites := testSites() // site "b" is non-reversible
	a := testAircraft()

	fc := LocationGeoJSON(prefs, sites, a)
	for _, f := range fc.Features {
		if f.ID != "b" {
			continue
		}
		mls, ok := f.Geometry.(orb.MultiLineString)
		if !ok {
			t.Fatalf("expected MultiLineString geometry, got %T", f.Geometry)
		}
		if len(mls) != 2 {
			t.Errorf("non-reversible site should have 2 line strings (runway + stop dash), got %d", len(mls))
		}
	}
}

func TestLandingOptionsGeoJSONOmitsUnreachableSites(t *testing.T) {
	prefs := risk.DefaultPreferences()
	sites := testSites()
	a := testAircraft()
	start := dubins.GeoPose{Point: orb.Point{0.001, -0.01}, Bearing: 0}

	fc := LandingOptionsGeoJSON(prefs, start, 1, 50, a, sites)
	if len(fc.Features) != 0 {
		t.Errorf("expected no reachable sites at a near-zero altitude budget, got %d", len(fc.Features))
	}
}
