// Package risk classifies (site, aircraft) pairs by landing risk and
// composes per-site reachability polygons into risk-tiered regions that
// are pairwise disjoint on the map.
package risk

import (
	"github.com/ctessum/polyclip-go"
	"github.com/paulmach/orb"

	"github.com/deadstick-go/deadstick/pkg/aircraft"
	"github.com/deadstick-go/deadstick/pkg/site"
)

// Classification is the total order Safe < Risky < Unsafe.
type Classification int

const (
	Safe Classification = iota
	Risky
	Unsafe
)

func (c Classification) String() string {
	switch c {
	case Risky:
		return "Risky"
	case Unsafe:
		return "Unsafe"
	default:
		return "Safe"
	}
}

// Max returns the higher-risk of c and other, under Safe < Risky < Unsafe.
func (c Classification) Max(other Classification) Classification {
	if other > c {
		return other
	}
	return c
}

// All lists every Classification in ascending risk order, used when
// iterating for polygon composition.
var All = []Classification{Safe, Risky, Unsafe}

// Preferences holds the caller-configurable thresholds and mappings the
// risk classifier and energy model need: bank angle, binary-search
// epsilon, landing-headroom thresholds, and how ambiguous human-presence
// categories map onto a Classification.
type Preferences struct {
	Bank    float64 // radians
	Epsilon float64 // meters

	UnsafeLandingHeadroom float64
	RiskyLandingHeadroom  float64

	EventLocationClassification     Classification
	DenselyCrowdedClassification    Classification
}

// DefaultPreferences mirrors the reference implementation's defaults.
func DefaultPreferences() Preferences {
	return Preferences{
		Bank:                         45.0 * 3.141592653589793 / 180,
		Epsilon:                      0.1,
		UnsafeLandingHeadroom:        -0.15,
		RiskyLandingHeadroom:         -0.05,
		EventLocationClassification:  Risky,
		DenselyCrowdedClassification: Risky,
	}
}

// Assessment breaks down a combined risk classification into the factor
// that produced it.
type Assessment struct {
	Overall Classification
	Surface Classification
	Headroom Classification
	Humans  Classification
}

// AssessRisk classifies a (site, aircraft) pair under the given
// preferences. The combined risk is the max of the three factors under
// Safe < Risky < Unsafe.
func AssessRisk(prefs Preferences, s site.Site, a aircraft.Aircraft) Assessment {
	surfaceRisk := Safe
	if !s.Surface.Landable() {
		surfaceRisk = Unsafe
	}

	headroom := s.LandingHeadroom(a)
	headroomRisk := Safe
	switch {
	case headroom < prefs.UnsafeLandingHeadroom:
		headroomRisk = Unsafe
	case headroom < prefs.RiskyLandingHeadroom:
		headroomRisk = Risky
	}

	humanRisk := Safe
	switch s.HumanPresence {
	case site.Dense:
		humanRisk = prefs.DenselyCrowdedClassification
	case site.EventOnly:
		humanRisk = prefs.EventLocationClassification
	}

	overall := surfaceRisk.Max(headroomRisk).Max(humanRisk)

	return Assessment{
		Overall:  overall,
		Surface:  surfaceRisk,
		Headroom: headroomRisk,
		Humans:   humanRisk,
	}
}

// toPolyclip converts an orb.Polygon (outer ring + holes) into a
// polyclip.Polygon (a set of contours).
func toPolyclip(p orb.Polygon) polyclip.Polygon {
	out := make(polyclip.Polygon, 0, len(p))
	for _, ring := range p {
		contour := make(polyclip.Contour, 0, len(ring))
		for _, pt := range ring {
			contour = append(contour, polyclip.Point{X: pt[0], Y: pt[1]})
		}
		out = append(out, contour)
	}
	return out
}

// fromPolyclip converts a polyclip.Polygon back into an orb.MultiPolygon,
// treating each contour as a single-ring polygon (the union/difference
// operations used here do not need to track inner holes).
func fromPolyclip(p polyclip.Polygon) orb.MultiPolygon {
	out := make(orb.MultiPolygon, 0, len(p))
	for _, contour := range p {
		if len(contour) == 0 {
			continue
		}
		ring := make(orb.Ring, 0, len(contour)+1)
		for _, pt := range contour {
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}
		ring = append(ring, ring[0])
		out = append(out, orb.Polygon{ring})
	}
	return out
}

// Union merges a set of polygons (each a single outer ring, no holes)
// into a multi-polygon.
func Union(polygons []orb.Polygon) orb.MultiPolygon {
	if len(polygons) == 0 {
		return nil
	}

	acc := toPolyclip(polygons[0])
	for _, p := range polygons[1:] {
		acc = acc.Construct(polyclip.UNION, toPolyclip(p))
	}
	return fromPolyclip(acc)
}

// SiteRisk pairs a site's derived polygon with its risk classification,
// the unit of work the composition step groups and unions.
type SiteRisk struct {
	Classification Classification
	Polygon        orb.Polygon
}

// Compose groups per-site (risk, polygon) pairs by risk, unions within
// each group, and then — in ascending risk order — subtracts each
// accumulated lower-risk region from the next higher-risk one, so the
// resulting Safe/Risky/Unsafe regions are pairwise disjoint: a point
// reachable as both Safe (one site) and Risky (another) displays as Safe.
func Compose(entries []SiteRisk) map[Classification]orb.MultiPolygon {
	grouped := make(map[Classification][]orb.Polygon)
	for _, e := range entries {
		grouped[e.Classification] = append(grouped[e.Classification], e.Polygon)
	}

	unioned := make(map[Classification]polyclip.Polygon)
	for _, c := range All {
		polys := grouped[c]
		if len(polys) == 0 {
			continue
		}
		acc := toPolyclip(polys[0])
		for _, p := range polys[1:] {
			acc = acc.Construct(polyclip.UNION, toPolyclip(p))
		}
		unioned[c] = acc
	}

	result := make(map[Classification]orb.MultiPolygon)
	var lowerRisk []polyclip.Polygon
	for _, c := range All {
		poly, ok := unioned[c]
		if !ok {
			continue
		}
		original := poly
		for _, lower := range lowerRisk {
			poly = poly.Construct(polyclip.DIFFERENCE, lower)
		}
		lowerRisk = append(lowerRisk, original)
		result[c] = fromPolyclip(poly)
	}
	return result
}
