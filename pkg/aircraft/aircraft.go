// Package aircraft holds the aircraft performance record: identity,
// maximum takeoff weight, and the four performance blocks (takeoff,
// climb, glide, landing) that the rest of the engine consumes. Records
// are constructed once at the ingest boundary and are immutable
// thereafter.
package aircraft

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"

	"github.com/deadstick-go/deadstick/pkg/glide"
	"github.com/deadstick-go/deadstick/pkg/surface"
	"github.com/deadstick-go/deadstick/pkg/util"
)

const (
	footToMeter   = 0.3048
	poundToKg     = 0.45359237
	knotToMeterPS = 0.5144444444
	fpmToMeterPS  = 0.00508
)

// Takeoff is the aircraft's takeoff performance block, in raw (imperial)
// units as received from ingest.
type Takeoff struct {
	GroundRollFt   float64 `json:"groundRoll"`
	TotalDistanceFt float64 `json:"totalDistance"`
	SpeedKt        float64 `json:"speed"`
}

// Climb is the aircraft's best-rate climb performance block.
type Climb struct {
	SpeedKt float64 `json:"speed"`
	RateFPM float64 `json:"rate"`
}

// Glide is the aircraft's glide performance block, as received.
type Glide struct {
	DistanceNMPer1000ft float64 `json:"distance"`
	SpeedKt             float64 `json:"speed"`
}

// Landing is the aircraft's landing performance block.
type Landing struct {
	GroundRollFt    float64 `json:"groundRoll"`
	TotalDistanceFt float64 `json:"totalDistance"`
	SpeedKt         float64 `json:"speed"`
	DescentRateFPM  float64 `json:"descentRate"`
}

// Aircraft is a fully validated, immutable performance record.
type Aircraft struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	MTOWLbs float64 `json:"mtow"`
	Takeoff Takeoff `json:"takeoff"`
	Climb   Climb   `json:"climb"`
	Glide   Glide   `json:"glide"`
	Landing Landing `json:"landing"`
}

// MTOWKilograms returns the maximum takeoff weight in kilograms.
func (a Aircraft) MTOWKilograms() float64 {
	return a.MTOWLbs * poundToKg
}

// TakeoffGroundRollMeters returns the takeoff ground roll in meters.
func (a Aircraft) TakeoffGroundRollMeters() float64 {
	return a.Takeoff.GroundRollFt * footToMeter
}

// TakeoffTotalDistanceMeters returns the takeoff distance over a 50ft
// obstacle, in meters.
func (a Aircraft) TakeoffTotalDistanceMeters() float64 {
	return a.Takeoff.TotalDistanceFt * footToMeter
}

// ClimbRatio is the factor by which climbed height multiplies into
// ground track covered while climbing at best rate of climb.
func (a Aircraft) ClimbRatio() float64 {
	speed := a.Climb.SpeedKt * knotToMeterPS
	rate := a.Climb.RateFPM * fpmToMeterPS
	track := math.Hypot(speed, rate)
	return track / rate
}

// GlideSpeedMeterPerSecond returns the aircraft's best-glide airspeed in
// meters per second.
func (a Aircraft) GlideSpeedMeterPerSecond() float64 {
	return a.Glide.SpeedKt * knotToMeterPS
}

// GlidePerformance returns the glide.Performance view used by the energy
// model and geometry search: the dimensionless glide ratio and the
// best-glide airspeed in SI units.
func (a Aircraft) GlidePerformance() glide.Performance {
	return glide.Performance{
		Ratio:          glide.Ratio(a.Glide.DistanceNMPer1000ft),
		BestGlideSpeed: a.GlideSpeedMeterPerSecond(),
	}
}

// LandingGroundRollMeters returns the landing ground roll in meters on a
// hard surface, before any surface-specific adjustment.
func (a Aircraft) LandingGroundRollMeters() float64 {
	return a.Landing.GroundRollFt * footToMeter
}

// LandingTotalDistanceMeters returns the landing distance over a 50ft
// obstacle, in meters, before any surface-specific adjustment.
func (a Aircraft) LandingTotalDistanceMeters() float64 {
	return a.Landing.TotalDistanceFt * footToMeter
}

// LandingGroundRollOnSurface returns the landing ground roll adjusted for
// the given surface's rolling-resistance factor.
func (a Aircraft) LandingGroundRollOnSurface(s surface.Type) float64 {
	return a.LandingGroundRollMeters() * s.GroundRollFactor()
}

// LandingTotalDistanceOnSurface returns the total landing distance (over
// a 50ft obstacle, to a full stop) adjusted for the given surface: the
// airborne clearance portion is unaffected by surface, only the ground
// roll portion is scaled.
func (a Aircraft) LandingTotalDistanceOnSurface(s surface.Type) float64 {
	clearance := a.LandingTotalDistanceMeters() - a.LandingGroundRollMeters()
	return clearance + a.LandingGroundRollOnSurface(s)
}

// LandingDescendRatio is the factor by which height lost on final
// multiplies into ground track covered, at the aircraft's maximum
// stabilized descent rate in landing configuration.
func (a Aircraft) LandingDescendRatio() float64 {
	speed := a.Landing.SpeedKt * knotToMeterPS
	rate := a.Landing.DescentRateFPM * fpmToMeterPS
	track := math.Hypot(speed, rate)
	return track / rate
}

// Parse decodes and validates a single aircraft record from JSON bytes,
// auto-generating an id if one is absent. Malformed input (negative or
// zero values where the invariants require strictly positive ones, or
// ground_roll > total_distance) is rejected here and never reaches the
// rest of the engine.
func Parse(b []byte) (Aircraft, error) {
	var raw struct {
		ID      string  `json:"id"`
		Name    string  `json:"name"`
		MTOW    float64 `json:"mtow"`
		Takeoff Takeoff `json:"takeoff"`
		Climb   Climb   `json:"climb"`
		Glide   Glide   `json:"glide"`
		Landing Landing `json:"landing"`
	}
	if err := util.UnmarshalJSONBytes(b, &raw); err != nil {
		return Aircraft{}, err
	}

	var el util.ErrorLogger
	el.Push("aircraft")
	if raw.MTOW < 0 {
		el.ErrorString("mtow must be non-negative, got %v", raw.MTOW)
	}
	if raw.Takeoff.GroundRollFt > raw.Takeoff.TotalDistanceFt {
		el.ErrorString("takeoff.groundRoll (%v) exceeds takeoff.totalDistance (%v)", raw.Takeoff.GroundRollFt, raw.Takeoff.TotalDistanceFt)
	}
	if raw.Landing.GroundRollFt > raw.Landing.TotalDistanceFt {
		el.ErrorString("landing.groundRoll (%v) exceeds landing.totalDistance (%v)", raw.Landing.GroundRollFt, raw.Landing.TotalDistanceFt)
	}
	if raw.Takeoff.SpeedKt <= 0 || raw.Climb.SpeedKt <= 0 || raw.Glide.SpeedKt <= 0 || raw.Landing.SpeedKt <= 0 {
		el.ErrorString("performance speeds must be strictly positive")
	}
	if raw.Climb.RateFPM <= 0 || raw.Landing.DescentRateFPM <= 0 {
		el.ErrorString("climb/descent rates must be strictly positive")
	}
	if raw.Glide.DistanceNMPer1000ft <= 0 {
		el.ErrorString("glide.distance must be strictly positive, got %v", raw.Glide.DistanceNMPer1000ft)
	}
	el.Pop()
	if el.HaveErrors() {
		return Aircraft{}, el.Err()
	}

	id := raw.ID
	if id == "" {
		id = uuid.NewString()
	}

	return Aircraft{
		ID:      id,
		Name:    raw.Name,
		MTOWLbs: raw.MTOW,
		Takeoff: raw.Takeoff,
		Climb:   raw.Climb,
		Glide:   raw.Glide,
		Landing: raw.Landing,
	}, nil
}

// MarshalJSON re-exposes the record in its wire shape, useful for
// round-tripping already-parsed aircraft.
func (a Aircraft) MarshalJSON() ([]byte, error) {
	type alias Aircraft
	return json.Marshal(alias(a))
}
