// Package glide is the engine's energy model: it converts a geometric
// Dubins path into a height budget. Bank angle enters the geometry only
// here — the dubins package never sees it, it only ever receives a
// turning radius as an opaque input.
package glide

import (
	"math"

	"github.com/deadstick-go/deadstick/pkg/dubins"
)

// TurnAirspeedSafetyFactor scales best-glide speed up to account for the
// extra airspeed a turn in a real descent requires over the idealized
// best-glide number.
const TurnAirspeedSafetyFactor = 1.5

// Gravity is the standard gravitational acceleration used by the turn
// radius formula, in m/s^2.
const Gravity = 9.81

// FeetToMeters converts a length in feet to meters.
const FeetToMeters = 0.3048

// NauticalMileToMeters converts a length in nautical miles to meters.
const NauticalMileToMeters = 1852.0

// Ratio converts a glide distance expressed in nautical miles per 1000 ft
// of altitude lost into a dimensionless slope: meters of ground track per
// meter of altitude lost.
func Ratio(distancePer1000ftNM float64) float64 {
	track := distancePer1000ftNM * NauticalMileToMeters
	height := 1000 * FeetToMeters
	return track / height
}

// Performance is the subset of an aircraft's glide performance the
// energy model needs: its glide ratio and best-glide airspeed.
type Performance struct {
	Ratio          float64 // meters of ground track per meter of altitude lost
	BestGlideSpeed float64 // meters per second
}

// HeightLostForGroundTrack returns the altitude (meters) consumed by
// covering distance meters of ground track in a straight glide.
func (p Performance) HeightLostForGroundTrack(distance float64) float64 {
	return distance / p.Ratio
}

// TurnRadius returns the turning radius (meters) at bank angle bank
// (radians).
func (p Performance) TurnRadius(bank float64) float64 {
	vTurn := p.BestGlideSpeed * TurnAirspeedSafetyFactor
	return (vTurn * vTurn) / (Gravity * math.Tan(bank))
}

// bankPenalty is the safety factor applied to height lost in a turn,
// approximating the load-factor-driven drag rise of a banked turn.
func bankPenalty(bank float64) float64 {
	return 1 / math.Cos(bank)
}

// HeightLostInTurn returns the altitude (meters) consumed by a turn of
// signed angle (radians) at bank angle bank (radians).
func (p Performance) HeightLostInTurn(angle, bank float64) float64 {
	radius := p.TurnRadius(bank)
	distance := math.Abs(angle * radius)
	return p.HeightLostForGroundTrack(distance) * bankPenalty(bank)
}

// HeightLossOverPath sums the height lost flying the given Dubins path at
// the given bank angle: each arc contributes the straight-glide loss over
// its own length times the bank penalty (the same as HeightLostInTurn for
// a path built at TurnRadius(bank)), each straight segment contributes
// HeightLostForGroundTrack.
func (p Performance) HeightLossOverPath(path dubins.Path, bank float64) float64 {
	arcLoss := func(a dubins.Arc) float64 {
		return p.HeightLostForGroundTrack(a.Length()) * bankPenalty(bank)
	}

	if path.IsCSC() {
		a1, tangent, a2 := path.CSC()
		return arcLoss(a1) +
			p.HeightLostForGroundTrack(tangent.Length()) +
			arcLoss(a2)
	}

	a1, a2, a3 := path.CCC()
	return arcLoss(a1) + arcLoss(a2) + arcLoss(a3)
}

// HeightLossOverGeoPath sums height lost flying a georeferenced Dubins
// path, delegating to the same per-segment formulas via the path's
// underlying planar geometry.
func (p Performance) HeightLossOverGeoPath(path dubins.GeoPath, bank float64) float64 {
	return p.HeightLossOverPath(path.Planar(), bank)
}
