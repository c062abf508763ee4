// Package engine is the external-facing façade: it wires together
// aircraft, site, glide, dubins, rangeprofile, risk, and landing into the
// five operations a presentation layer actually calls (site hitboxes, risk
// assessment, reachability polygons, site outlines, and landing-option
// search), encoding geometry as GeoJSON via paulmach/orb/geojson and
// running the two batch-parallel computations spec.md calls out (range
// profiles across sites, and across altitudes) with errgroup.
package engine

import (
	"context"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/sync/errgroup"

	"github.com/deadstick-go/deadstick/pkg/aircraft"
	"github.com/deadstick-go/deadstick/pkg/dubins"
	"github.com/deadstick-go/deadstick/pkg/geodesy"
	"github.com/deadstick-go/deadstick/pkg/landing"
	"github.com/deadstick-go/deadstick/pkg/rangeprofile"
	"github.com/deadstick-go/deadstick/pkg/risk"
	"github.com/deadstick-go/deadstick/pkg/site"
)

// stopLineDistance is how far, in meters, the perpendicular dash
// LocationGeoJSON draws across the far end of a non-reversible site
// extends to each side of that end —
// matching the stop-line markers real strips paint for one-way use.
const stopLineDistance = 15.0

// LocationHitboxes returns a spaced hitbox polygon for each site, at the
// given offset distance in meters, for coarse map click-target testing.
func LocationHitboxes(sites []site.Site, distance float64) map[string]orb.Ring {
	out := make(map[string]orb.Ring, len(sites))
	for _, s := range sites {
		out[s.ID] = s.SpacedPolygon(distance)
	}
	return out
}

// AssessRisk classifies a single (site, aircraft) pair.
func AssessRisk(prefs risk.Preferences, s site.Site, a aircraft.Aircraft) risk.Assessment {
	return risk.AssessRisk(prefs, s, a)
}

// Reachability is the combined output of ReachabilityGeoJSON: a
// risk-tiered FeatureCollection suitable for choropleth shading (ByRisk)
// alongside a per-site lookup of the same geometry tagged with its own
// ID (ByID), matching the reference implementation's combined
// {"byRisk": ..., "byID": ...} payload.
type Reachability struct {
	ByRisk *geojson.FeatureCollection
	ByID   map[string]*geojson.Feature
}

type siteRiskPolygon struct {
	site       site.Site
	assessment risk.Assessment
	polygon    orb.Polygon
}

// ReachabilityGeoJSON computes, for a fixed aircraft and altitude, each
// site's range polygon and risk classification, then composes the
// per-site polygons into pairwise-disjoint risk tiers. Range polygons
// across sites are independent (spec's first parallelism opportunity) and
// are computed concurrently via errgroup.
func ReachabilityGeoJSON(ctx context.Context, prefs risk.Preferences, sites []site.Site, a aircraft.Aircraft, altitude float64) (Reachability, error) {
	perf := a.GlidePerformance()
	aircraftProfile := rangeprofile.Aircraft(perf, prefs.Bank, prefs.Epsilon, altitude)

	results := make([]siteRiskPolygon, len(sites))

	g, _ := errgroup.WithContext(ctx)
	for i, s := range sites {
		i, s := i, s
		g.Go(func() error {
			polygonRing := rangeprofile.SitePolygon(s, a, aircraftProfile)
			results[i] = siteRiskPolygon{
				site:       s,
				assessment: risk.AssessRisk(prefs, s, a),
				polygon:    orb.Polygon{polygonRing},
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Reachability{}, err
	}

	entries := make([]risk.SiteRisk, len(results))
	byID := make(map[string]*geojson.Feature, len(results))
	for i, r := range results {
		entries[i] = risk.SiteRisk{Classification: r.assessment.Overall, Polygon: r.polygon}

		f := geojson.NewFeature(r.polygon)
		f.Properties["id"] = r.site.ID
		f.Properties["risk"] = r.assessment.Overall.String()
		byID[r.site.ID] = f
	}

	composed := risk.Compose(entries)

	byRisk := geojson.NewFeatureCollection()
	for _, c := range risk.All {
		mp, ok := composed[c]
		if !ok || len(mp) == 0 {
			continue
		}
		f := geojson.NewFeature(mp)
		f.Properties["risk"] = c.String()
		byRisk.Append(f)
	}

	return Reachability{ByRisk: byRisk, ByID: byID}, nil
}

// ReachabilityAcrossAltitudes computes ReachabilityGeoJSON independently
// for each altitude in altitudes — spec's second parallelism opportunity
// — returning results in the same order as altitudes.
func ReachabilityAcrossAltitudes(ctx context.Context, prefs risk.Preferences, sites []site.Site, a aircraft.Aircraft, altitudes []float64) ([]Reachability, error) {
	results := make([]Reachability, len(altitudes))

	g, gctx := errgroup.WithContext(ctx)
	for i, alt := range altitudes {
		i, alt := i, alt
		g.Go(func() error {
			r, err := ReachabilityGeoJSON(gctx, prefs, sites, a, alt)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// LocationGeoJSON renders each non-aeronautical site as a line feature
// tagged with its overall risk, adding a perpendicular stop-dash reaching
// 15m to each side of the far end of non-reversible sites to mark one-way use on the map.
func LocationGeoJSON(prefs risk.Preferences, sites []site.Site, a aircraft.Aircraft) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, s := range sites {
		if s.Usage == site.Aeronautical {
			continue
		}

		line := orb.MultiLineString{orb.LineString{s.Start, s.End}}

		if !s.Reversible {
			bearing := s.Bearing()
			left := haversineDestination(s.End, bearing+90, stopLineDistance)
			right := haversineDestination(s.End, bearing-90, stopLineDistance)
			line = append(line, orb.LineString{left, right})
		}

		f := geojson.NewFeature(line)
		f.ID = s.ID
		f.Properties["risk"] = risk.AssessRisk(prefs, s, a).Overall.String()
		fc.Append(f)
	}

	return fc
}

// haversineDestination is a thin local wrapper so call sites can pass a
// bearing in degrees rather than converting to radians themselves.
func haversineDestination(origin orb.Point, bearingDeg, distance float64) orb.Point {
	return geodesy.HaversineDestination(origin, bearingDeg*math.Pi/180, distance)
}

// geoPathLineString flattens a GeoPath's segments, in order, into a
// LineString of their geographic endpoints — sufficient for a map
// renderer to draw the curved approach, since each segment's Start/End
// already captures where it bends.
func geoPathLineString(p dubins.GeoPath) orb.LineString {
	if p.IsCSC() {
		first, straight, second := p.CSC()
		return orb.LineString{first.Start, first.End, straight.Start, straight.End, second.Start, second.End}
	}
	first, second, third := p.CCC()
	return orb.LineString{first.Start, first.End, second.Start, second.End, third.Start, third.End}
}

// LandingOptionsGeoJSON runs a landing-option search from the aircraft's
// current state and renders each reachable site's best path as a
// LineString feature carrying risk and heightLoss properties.
func LandingOptionsGeoJSON(prefs risk.Preferences, start dubins.GeoPose, altitude, resolution float64, a aircraft.Aircraft, sites []site.Site) *geojson.FeatureCollection {
	options := landing.Search(start, altitude, prefs.Bank, resolution, a, sites)

	fc := geojson.NewFeatureCollection()
	for _, o := range options {
		ls := geoPathLineString(o.Path)

		f := geojson.NewFeature(ls)
		f.ID = o.Site.ID
		f.Properties["risk"] = risk.AssessRisk(prefs, o.Site, a).Overall.String()
		f.Properties["heightLoss"] = o.HeightLoss
		fc.Append(f)
	}
	return fc
}
