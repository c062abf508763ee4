// Package site holds the landing-site (location) record: identity,
// geometry, and the derived quantities (length, bearing, inset, landable
// points) that the range-profile and landing-search engines consume.
// Sites are constructed once at the ingest boundary and are immutable
// thereafter.
package site

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/paulmach/orb"

	"github.com/deadstick-go/deadstick/pkg/aircraft"
	"github.com/deadstick-go/deadstick/pkg/geodesy"
	"github.com/deadstick-go/deadstick/pkg/surface"
	"github.com/deadstick-go/deadstick/pkg/util"
)

// HumanPresence describes how likely humans are to be on-site.
type HumanPresence int

const (
	Unlikely HumanPresence = iota
	Sparse
	Dense
	EventOnly
)

func (h HumanPresence) String() string {
	switch h {
	case Dense:
		return "Dense"
	case Sparse:
		return "Sparse"
	case EventOnly:
		return "EventOnly"
	default:
		return "Unlikely"
	}
}

func parseHumanPresence(s string) (HumanPresence, error) {
	switch s {
	case "", "Unlikely":
		return Unlikely, nil
	case "Dense":
		return Dense, nil
	case "Sparse":
		return Sparse, nil
	case "EventOnly":
		return EventOnly, nil
	default:
		return 0, fmt.Errorf("site: unknown humanPresence %q", s)
	}
}

// Usage describes what the site is ordinarily used for.
type Usage int

const (
	Agricultural Usage = iota
	Aeronautical
	Nature
	Waterway
	Event
	Park
)

func parseUsage(s string) (Usage, error) {
	switch s {
	case "Agricultural":
		return Agricultural, nil
	case "Aeronautical":
		return Aeronautical, nil
	case "Nature":
		return Nature, nil
	case "Waterway":
		return Waterway, nil
	case "Event":
		return Event, nil
	case "Park":
		return Park, nil
	default:
		return 0, fmt.Errorf("site: unknown usage %q", s)
	}
}

// Site is a fully validated, immutable landing-site record.
type Site struct {
	ID            string
	Name          string
	Reversible    bool
	Surface       surface.Type
	HumanPresence HumanPresence
	Usage         Usage
	ElevationFt   float64
	Start, End    orb.Point
	SurveyDate    string
	Remarks       string
}

// Length is the usable runway length: the measurement-grade geodesic
// distance (Vincenty, WGS84) between the two endpoints.
func (s Site) Length() float64 {
	return geodesy.VincentyDistance(s.Start, s.End)
}

// Bearing is the initial compass bearing (degrees, 0 = north) from Start
// to End.
func (s Site) Bearing() float64 {
	return geodesy.InitialBearing(s.Start, s.End) * 180 / math.Pi
}

// ReverseBearing is the initial bearing from End to Start. It panics if
// the site is not reversible: reading a reverse bearing off a one-way
// runway is a programming error, not a recoverable condition, so callers
// must gate this behind the Reversible flag.
func (s Site) ReverseBearing() float64 {
	if !s.Reversible {
		panic("site: ReverseBearing called on a non-reversible site")
	}
	return geodesy.InitialBearing(s.End, s.Start) * 180 / math.Pi
}

// Centroid is the midpoint of the line between Start and End.
func (s Site) Centroid() orb.Point {
	return geodesy.HaversineDestination(s.Start, geodesy.InitialBearing(s.Start, s.End), s.Length()/2)
}

// RequiredLandingDistance returns the aircraft's total landing distance
// adjusted for this site's surface.
func (s Site) RequiredLandingDistance(a aircraft.Aircraft) float64 {
	return a.LandingTotalDistanceOnSurface(s.Surface)
}

// Inset is the along-runway distance by which the touchdown point may
// shift from the very start of the landable surface while still leaving
// enough landing run for a, on this site's surface.
func (s Site) Inset(a aircraft.Aircraft) float64 {
	return s.Length() - s.RequiredLandingDistance(a)
}

// LandingHeadroom is the fraction of required landing distance available
// in addition to the base 100%; negative when the site is too short.
func (s Site) LandingHeadroom(a aircraft.Aircraft) float64 {
	required := s.RequiredLandingDistance(a)
	return (s.Length() - required) / required
}

// LandablePoint is a touchdown candidate: a geographic position and the
// compass bearing an aircraft must be flying to put down there.
type LandablePoint struct {
	Point   orb.Point
	Bearing float64
}

// LandablePoints enumerates the site's touchdown candidates for
// aircraft a at the given along-runway resolution (meters): the
// endpoint(s), plus additional points inset from the start (and, if
// reversible, from the end) at multiples of resolution up to the
// landable inset.
func (s Site) LandablePoints(a aircraft.Aircraft, resolution float64) []LandablePoint {
	insetAtEnds := s.Inset(a)

	points := []LandablePoint{{Point: s.Start, Bearing: s.Bearing()}}
	if s.Reversible {
		points = append(points, LandablePoint{Point: s.End, Bearing: s.ReverseBearing()})
	}

	if insetAtEnds > 0 {
		bearing := s.Bearing()
		bearingRad := bearing * math.Pi / 180
		steps := int(math.Floor(insetAtEnds / resolution))

		for i := 1; i <= steps; i++ {
			stepDistance := resolution * float64(i)

			insetFromStart := geodesy.HaversineDestination(s.Start, bearingRad, stepDistance)
			points = append(points, LandablePoint{Point: insetFromStart, Bearing: bearing})

			if s.Reversible {
				reverseBearing := s.ReverseBearing()
				insetFromEnd := geodesy.HaversineDestination(s.End, reverseBearing*math.Pi/180, stepDistance)
				points = append(points, LandablePoint{Point: insetFromEnd, Bearing: reverseBearing})
			}
		}
	}

	return points
}

// SpacedPolygon returns a 4-vertex hitbox polygon around the site: two
// points off each endpoint, offset ±45 degrees from the bearing pointing
// away from the runway, at the given distance in meters.
func (s Site) SpacedPolygon(distance float64) orb.Ring {
	bearing := geodesy.InitialBearing(s.Start, s.End) * 180 / math.Pi
	reverseBearing := geodesy.InitialBearing(s.End, s.Start) * 180 / math.Pi

	a := geodesy.HaversineDestination(s.Start, (reverseBearing+45)*math.Pi/180, distance)
	b := geodesy.HaversineDestination(s.Start, (reverseBearing-45)*math.Pi/180, distance)
	c := geodesy.HaversineDestination(s.End, (bearing+45)*math.Pi/180, distance)
	d := geodesy.HaversineDestination(s.End, (bearing-45)*math.Pi/180, distance)

	return orb.Ring{a, b, c, d, a}
}

// siteID derives a site's identity deterministically from its endpoint
// coordinates: a 64-bit FNV-1a hash over the little-endian IEEE-754
// bytes of (start.x, start.y, end.x, end.y), rendered as lowercase hex.
func siteID(start, end orb.Point) string {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range []float64{start.X(), start.Y(), end.X(), end.Y()} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum64())
}

// Parse decodes and validates a single site record from JSON bytes. The
// site's id is always derived from its endpoint coordinates, never taken
// from the input.
func Parse(b []byte) (Site, error) {
	var raw struct {
		Name          string  `json:"name"`
		Reversible    bool    `json:"reversible"`
		Surface       string  `json:"surface"`
		HumanPresence string  `json:"humanPresence"`
		Usage         string  `json:"usage"`
		Elevation     float64 `json:"elevation"`
		Coordinates   struct {
			Start [2]float64 `json:"start"`
			End   [2]float64 `json:"end"`
		} `json:"coordinates"`
		SurveyDate string `json:"surveyDate"`
		Remarks    string `json:"remarks"`
	}
	if err := util.UnmarshalJSONBytes(b, &raw); err != nil {
		return Site{}, err
	}

	var el util.ErrorLogger
	el.Push("site")
	if raw.Elevation < 0 {
		el.ErrorString("elevation must be non-negative, got %v", raw.Elevation)
	}
	for _, name := range []string{"start", "end"} {
		var lat, lon float64
		if name == "start" {
			lat, lon = raw.Coordinates.Start[0], raw.Coordinates.Start[1]
		} else {
			lat, lon = raw.Coordinates.End[0], raw.Coordinates.End[1]
		}
		if lat < -90 || lat > 90 {
			el.ErrorString("%s latitude out of range: %v", name, lat)
		}
		if lon < -180 || lon > 180 {
			el.ErrorString("%s longitude out of range: %v", name, lon)
		}
	}

	var surf surface.Type
	switch raw.Surface {
	case "Asphalt":
		surf = surface.Asphalt
	case "Grass":
		surf = surface.Grass
	case "Water":
		surf = surface.Water
	default:
		el.ErrorString("unknown surface %q", raw.Surface)
	}

	presence, err := parseHumanPresence(raw.HumanPresence)
	if err != nil {
		el.Error(err)
	}

	usage, err := parseUsage(raw.Usage)
	if err != nil {
		el.Error(err)
	}
	el.Pop()

	if el.HaveErrors() {
		return Site{}, el.Err()
	}

	start := orb.Point{raw.Coordinates.Start[1], raw.Coordinates.Start[0]}
	end := orb.Point{raw.Coordinates.End[1], raw.Coordinates.End[0]}

	return Site{
		ID:            siteID(start, end),
		Name:          raw.Name,
		Reversible:    raw.Reversible,
		Surface:       surf,
		HumanPresence: presence,
		Usage:         usage,
		ElevationFt:   raw.Elevation,
		Start:         start,
		End:           end,
		SurveyDate:    raw.SurveyDate,
		Remarks:       raw.Remarks,
	}, nil
}
