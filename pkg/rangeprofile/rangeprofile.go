// Package rangeprofile computes, for a fixed aircraft and altitude, the
// worst-case reachability envelope of a single landing endpoint (an
// 18-point ray sweep via binary search), then turns that envelope into a
// full 360-degree, georeferenced polygon for a specific site.
package rangeprofile

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/deadstick-go/deadstick/pkg/aircraft"
	"github.com/deadstick-go/deadstick/pkg/dubins"
	"github.com/deadstick-go/deadstick/pkg/geodesy"
	"github.com/deadstick-go/deadstick/pkg/glide"
	"github.com/deadstick-go/deadstick/pkg/mathutil"
	"github.com/deadstick-go/deadstick/pkg/site"
)

// SlotCount is the number of rays in an aircraft range profile, covering
// 0 to 170 degrees in 10-degree steps.
const SlotCount = 18

// AngleStepDeg is the angular spacing between rays.
const AngleStepDeg = 10.0

// HeadingSampleStepDeg is the granularity of the brute-force worst-case
// heading scan in the reachability predicate.
const HeadingSampleStepDeg = 1.0

// Profile is a fixed-size sequence of worst-case reachable planar points
// for a single aircraft/altitude, one per ray angle.
type Profile [SlotCount]dubins.Point

// Aircraft computes the worst-case range profile for glide performance
// perf, bank, and altitude h (meters), sampling epsilon-precision binary
// searches along each of the 18 rays.
func Aircraft(perf glide.Performance, bank, epsilon, h float64) Profile {
	maxRange := perf.Ratio * h * 2
	circleRadius := perf.TurnRadius(bank)
	circleOrigin := dubins.Point{X: -circleRadius, Y: 0}

	pointOnCircle := func(angle float64) dubins.Point {
		return dubins.Point{
			X: circleOrigin.X + circleRadius*math.Cos(angle),
			Y: circleOrigin.Y + circleRadius*math.Sin(angle),
		}
	}

	origin := dubins.Point{X: 0, Y: 0}
	originAngle := mathutil.PiOver2

	var profile Profile
	for i := 0; i < SlotCount; i++ {
		angle := -float64(i) * AngleStepDeg * math.Pi / 180
		rayOrigin := pointOnCircle(angle)
		ray := angle - mathutil.PiOver2

		distance := mathutil.BinarySearch(0, maxRange, epsilon, func(d float64) bool {
			return reachableFromRayPoint(perf, bank, h, rayOrigin, ray, d, origin, originAngle, circleRadius)
		})

		profile[i] = dubins.Point{
			X: rayOrigin.X + distance*math.Cos(ray),
			Y: rayOrigin.Y + distance*math.Sin(ray),
		}
	}
	return profile
}

// reachableFromRayPoint is the binary-search predicate: true if the
// candidate aircraft position (rayOrigin + d along ray) can reach the
// target pose within the altitude budget h for every sampled start
// heading — i.e. there is no start heading at which all Dubins
// candidates exceed the height budget.
func reachableFromRayPoint(perf glide.Performance, bank, h float64, rayOrigin dubins.Point, ray, d float64, target dubins.Point, targetAngle, radius float64) bool {
	candidatePosition := dubins.Point{
		X: rayOrigin.X + d*math.Cos(ray),
		Y: rayOrigin.Y + d*math.Sin(ray),
	}

	for headingDeg := 0.0; headingDeg < 360; headingDeg += HeadingSampleStepDeg {
		heading := headingDeg * math.Pi / 180
		start := dubins.DirectedPoint{Point: candidatePosition, Angle: heading}
		end := dubins.DirectedPoint{Point: target, Angle: targetAngle}

		candidates := dubins.Candidates(start, end, radius)
		if len(candidates) == 0 {
			// No geometric path at all from this heading: the worst case
			// is unreachable, so this position is not reachable from
			// every heading.
			return false
		}

		minLoss := math.Inf(1)
		for _, c := range candidates {
			loss := perf.HeightLossOverPath(c.Path, bank)
			if loss < minLoss {
				minLoss = loss
			}
		}
		if minLoss > h {
			return false
		}
	}
	return true
}

// SitePolygon converts a per-aircraft range profile into a georeferenced
// polygon for a specific site, per the component design's mirror/rotate
// pipeline: the first half of the site profile reuses the aircraft's
// near-approach slots; the second half is either a mirrored-and-inset
// copy (non-reversible site) or a flipped-and-shifted copy from the other
// end (reversible site); the 18-point half profile is then mirrored
// across the y-axis to a 36-vertex full profile, rotated to the site's
// bearing, and converted to geographic coordinates.
func SitePolygon(s site.Site, a aircraft.Aircraft, aircraftProfile Profile) orb.Ring {
	inset := s.Inset(a)
	length := s.Length()

	var siteProfile Profile
	for i := 0; i < SlotCount/2; i++ {
		siteProfile[i] = aircraftProfile[i]
	}

	if !s.Reversible {
		for i := 0; i < SlotCount/2; i++ {
			p := aircraftProfile[SlotCount-1-i]
			p.Y += inset
			siteProfile[SlotCount-1-i] = p
		}
	} else {
		for i := 0; i < SlotCount/2; i++ {
			p := aircraftProfile[i]
			p.Y = -p.Y + length
			siteProfile[SlotCount-1-i] = p
		}
	}

	full := make([]dubins.Point, 0, SlotCount*2)
	full = append(full, siteProfile[:]...)
	for i := 0; i < SlotCount; i++ {
		mirrored := siteProfile[SlotCount-1-i]
		mirrored.X = -mirrored.X
		full = append(full, mirrored)
	}

	bearingRad := s.Bearing() * math.Pi / 180

	ring := make(orb.Ring, 0, len(full)+1)
	for _, p := range full {
		rotated := rotateAroundOrigin(p, bearingRad)
		distance := rotated.Length()
		bearingDeg := math.Atan2(rotated.Y, rotated.X)*180/math.Pi - 90

		geo := geodesy.HaversineDestination(s.Start, bearingDeg*math.Pi/180, distance)
		ring = append(ring, geo)
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

func rotateAroundOrigin(p dubins.Point, theta float64) dubins.Point {
	sin, cos := math.Sin(theta), math.Cos(theta)
	return dubins.Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
