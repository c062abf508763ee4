package dubins

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/deadstick-go/deadstick/pkg/geodesy"
)

// GeoPose is a geographic pose: a WGS84 point plus a compass bearing in
// degrees, 0 = north, clockwise.
type GeoPose struct {
	Point   orb.Point
	Bearing float64
}

// GeoArc pairs a planar Arc with its geographic endpoints.
type GeoArc struct {
	Arc           Arc
	Start, End    orb.Point
}

// GeoTangent pairs a planar Tangent with its geographic endpoints.
type GeoTangent struct {
	Tangent    Tangent
	Start, End orb.Point
}

// GeoPath is a Dubins path whose segments carry both their planar and
// geographic representations.
type GeoPath struct {
	kind geoPathKind
	csc  geoCSCPath
	ccc  geoCCCPath
	path Path
}

type geoPathKind int

const (
	geoKindCSC geoPathKind = iota
	geoKindCCC
)

type geoCSCPath struct {
	First    GeoArc
	Straight GeoTangent
	Second   GeoArc
}

type geoCCCPath struct {
	First, Second, Third GeoArc
}

// Planar returns the underlying planar Path (in the local tangent
// frame), for callers that only need raw geometry.
func (p GeoPath) Planar() Path { return p.path }

// IsCSC reports whether the path is a curve-straight-curve path.
func (p GeoPath) IsCSC() bool { return p.kind == geoKindCSC }

// IsCCC reports whether the path is a curve-curve-curve path.
func (p GeoPath) IsCCC() bool { return p.kind == geoKindCCC }

// CSC returns the path's three geographic CSC segments. Valid only if IsCSC.
func (p GeoPath) CSC() (GeoArc, GeoTangent, GeoArc) {
	return p.csc.First, p.csc.Straight, p.csc.Second
}

// CCC returns the path's three geographic CCC arcs. Valid only if IsCCC.
func (p GeoPath) CCC() (GeoArc, GeoArc, GeoArc) {
	return p.ccc.First, p.ccc.Second, p.ccc.Third
}

// bearingToMathAngle converts a compass bearing in degrees (0 = north,
// clockwise) to a mathematical angle in radians (0 = +x, CCW).
func bearingToMathAngle(bearingDeg float64) float64 {
	return bearingDeg*math.Pi/180 - math.Pi/2
}

// mathAngleToBearing is the inverse of bearingToMathAngle, returning
// degrees in [0, 360).
func mathAngleToBearing(theta float64) float64 {
	deg := theta*180/math.Pi + 90
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// localFrame places end at the origin of a local tangent-plane frame and
// maps start into it, per the georeferenced wrapper's construction:
// great-circle bearing/distance from end to start become a planar polar
// offset, with compass bearings converted to math angles.
type localFrame struct {
	origin orb.Point
}

func newLocalFrame(origin orb.Point) localFrame {
	return localFrame{origin: origin}
}

// toLocal maps a geographic pose into this frame's planar DirectedPoint.
func (f localFrame) toLocal(p GeoPose) DirectedPoint {
	d := geodesy.HaversineDistance(f.origin, p.Point)
	brg := geodesy.InitialBearing(f.origin, p.Point)
	theta := brg - math.Pi/2
	return DirectedPoint{
		Point: Point{X: d * math.Cos(theta), Y: d * math.Sin(theta)},
		Angle: bearingToMathAngle(p.Bearing),
	}
}

// toGeo maps a planar Point back to a geographic point, by the wrapper's
// inverse mapping: geographic = haversine_destination(origin, bearing =
// atan2(y,x) + 90deg, distance = sqrt(x^2+y^2)).
func (f localFrame) toGeo(p Point) orb.Point {
	distance := p.Length()
	bearingDeg := mathAngleToBearing(math.Atan2(p.Y, p.X))
	return geodesy.HaversineDestination(f.origin, bearingDeg*math.Pi/180, distance)
}

// GeoCandidate pairs a Dubins word with its geographic path.
type GeoCandidate struct {
	Word Word
	Path GeoPath
}

// GeoCandidates computes Dubins path candidates between two geographic
// poses at turning radius r (meters), running the planar engine in a
// local tangent frame centered on end and converting results back to
// geographic coordinates.
func GeoCandidates(start, end GeoPose, r float64) []GeoCandidate {
	frame := newLocalFrame(end.Point)
	localStart := frame.toLocal(start)
	localEnd := frame.toLocal(end)

	planarCandidates := Candidates(localStart, localEnd, r)

	out := make([]GeoCandidate, 0, len(planarCandidates))
	for _, c := range planarCandidates {
		out = append(out, GeoCandidate{Word: c.Word, Path: toGeoPath(c.Path, frame)})
	}
	return out
}

func toGeoPath(p Path, frame localFrame) GeoPath {
	geoArc := func(a Arc) GeoArc {
		return GeoArc{Arc: a, Start: frame.toGeo(a.Start), End: frame.toGeo(a.End)}
	}
	geoTangent := func(tg Tangent) GeoTangent {
		return GeoTangent{Tangent: tg, Start: frame.toGeo(tg.Start), End: frame.toGeo(tg.End)}
	}

	if p.IsCSC() {
		a1, tg, a2 := p.CSC()
		return GeoPath{
			kind: geoKindCSC,
			csc:  geoCSCPath{First: geoArc(a1), Straight: geoTangent(tg), Second: geoArc(a2)},
			path: p,
		}
	}

	a1, a2, a3 := p.CCC()
	return GeoPath{
		kind: geoKindCCC,
		ccc:  geoCCCPath{First: geoArc(a1), Second: geoArc(a2), Third: geoArc(a3)},
		path: p,
	}
}
