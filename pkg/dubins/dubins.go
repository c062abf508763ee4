// Package dubins computes Dubins shortest-path candidates in a local
// planar working frame: circles, arcs, tangents, and the CSC/CCC path
// families built from them. Everything here is a pure function over
// value types; the package never reasons about bank angle, altitude, or
// geography — those live one layer up, in glide and georeference
// respectively.
package dubins

import (
	"math"

	"github.com/deadstick-go/deadstick/pkg/mathutil"
)

// AngleEpsilon is the tolerance used when normalizing an arc's raw angle
// against its circle's direction of travel.
const AngleEpsilon = 1e-6

// Point is a location in the local planar frame, in meters.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Length returns the Euclidean norm of p treated as a vector.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// DirectedPoint is a Point plus a heading in mathematical convention: 0
// along +x, increasing counterclockwise.
type DirectedPoint struct {
	Point
	Angle float64
}

// Direction is the sense of travel along a Circle.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// sign returns +1 for Right, -1 for Left.
func (d Direction) sign() float64 {
	if d == Right {
		return 1
	}
	return -1
}

// Circle is a turning circle of a given radius and direction of travel.
type Circle struct {
	Center    Point
	Radius    float64
	Direction Direction
}

// PointAt returns the point on the circle at angle theta (radians, math
// convention) measured from the center.
func (c Circle) PointAt(theta float64) Point {
	return Point{
		X: c.Center.X + c.Radius*math.Cos(theta),
		Y: c.Center.Y + c.Radius*math.Sin(theta),
	}
}

// AngleOf returns the angle (radians, math convention) of p as seen from
// the circle's center.
func (c Circle) AngleOf(p Point) float64 {
	return math.Atan2(p.Y-c.Center.Y, p.X-c.Center.X)
}

// CircleSet holds the two approach/departure circles associated with a
// directed point at a fixed turning radius: one circle for each
// direction of travel, centered r to the left or right of the heading.
type CircleSet struct {
	Left  Circle
	Right Circle
}

// NewCircleSet builds the CircleSet for a directed point at radius r, per
// the left/right center offsets of the component design.
func NewCircleSet(p DirectedPoint, r float64) CircleSet {
	leftCenter := Point{
		X: p.X + r*math.Cos(p.Angle-mathutil.PiOver2),
		Y: p.Y + r*math.Sin(p.Angle-mathutil.PiOver2),
	}
	rightCenter := Point{
		X: p.X + r*math.Cos(p.Angle+mathutil.PiOver2),
		Y: p.Y + r*math.Sin(p.Angle+mathutil.PiOver2),
	}
	return CircleSet{
		Left:  Circle{Center: leftCenter, Radius: r, Direction: Left},
		Right: Circle{Center: rightCenter, Radius: r, Direction: Right},
	}
}

// Of returns the circle in the set matching the given direction.
func (cs CircleSet) Of(d Direction) Circle {
	if d == Left {
		return cs.Left
	}
	return cs.Right
}

// Arc is a portion of a circle from Start to End, both of which must lie
// on the circle. Angle is signed to match the circle's direction.
type Arc struct {
	Circle     Circle
	Start, End Point
}

// rawAngle returns atan2(end) - atan2(start) as seen from the circle's
// center, unnormalized.
func (a Arc) rawAngle() float64 {
	return a.Circle.AngleOf(a.End) - a.Circle.AngleOf(a.Start)
}

// Angle returns the arc's signed angle, normalized to match the circle's
// direction of travel per the component design's convention.
func (a Arc) Angle() float64 {
	angle := a.rawAngle()
	switch a.Circle.Direction {
	case Right:
		if angle < -AngleEpsilon {
			angle += 2 * math.Pi
		}
	case Left:
		if angle > AngleEpsilon {
			angle -= 2 * math.Pi
		}
	}
	return angle
}

// Length returns the arc's raw length, |angle| * radius.
func (a Arc) Length() float64 {
	return math.Abs(a.Angle()) * a.Circle.Radius
}

// Tangent is a straight segment between points on two circles.
type Tangent struct {
	Start, End Point
}

// Length returns the Euclidean length of the tangent.
func (t Tangent) Length() float64 {
	return t.End.Sub(t.Start).Length()
}

// Path is a tagged union of the two Dubins path shapes this package
// produces: CSC (curve-straight-curve) or CCC (curve-curve-curve).
type Path struct {
	kind   pathKind
	csc    cscPath
	ccc    cccPath
}

type pathKind int

const (
	kindCSC pathKind = iota
	kindCCC
)

type cscPath struct {
	First   Arc
	Straight Tangent
	Second  Arc
}

type cccPath struct {
	First, Second, Third Arc
}

// IsCSC reports whether the path is a curve-straight-curve path.
func (p Path) IsCSC() bool { return p.kind == kindCSC }

// IsCCC reports whether the path is a curve-curve-curve path.
func (p Path) IsCCC() bool { return p.kind == kindCCC }

// CSC returns the path's three CSC segments. Valid only if IsCSC.
func (p Path) CSC() (Arc, Tangent, Arc) {
	return p.csc.First, p.csc.Straight, p.csc.Second
}

// CCC returns the path's three CCC arcs. Valid only if IsCCC.
func (p Path) CCC() (Arc, Arc, Arc) {
	return p.ccc.First, p.ccc.Second, p.ccc.Third
}

// Length returns the path's total raw length (sum of arc lengths and any
// straight tangent), ignoring bank and altitude.
func (p Path) Length() float64 {
	switch p.kind {
	case kindCSC:
		a1, t, a2 := p.CSC()
		return a1.Length() + t.Length() + a2.Length()
	default:
		a1, a2, a3 := p.CCC()
		return a1.Length() + a2.Length() + a3.Length()
	}
}

// Word names the Dubins word a candidate was generated from.
type Word int

const (
	LSL Word = iota
	LSR
	RSL
	RSR
	LRL
	RLR
)

func (w Word) String() string {
	return [...]string{"LSL", "LSR", "RSL", "RSR", "LRL", "RLR"}[w]
}

// Candidate pairs a Path with the Dubins word it was produced from.
type Candidate struct {
	Word Word
	Path Path
}

var cscWords = []struct {
	word        Word
	start, end  Direction
}{
	{LSL, Left, Left},
	{LSR, Left, Right},
	{RSL, Right, Left},
	{RSR, Right, Right},
}

var cccWords = []struct {
	word       Word
	direction  Direction
}{
	{LRL, Left},
	{RLR, Right},
}

// Candidates returns every Dubins path (from the six CSC/CCC words) that
// is geometrically valid for the given start/end poses at turning radius
// r. Words with no valid tangent or third circle are silently omitted;
// the result is never empty for distinct start/end and r > 0.
func Candidates(start, end DirectedPoint, r float64) []Candidate {
	startCircles := NewCircleSet(start, r)
	endCircles := NewCircleSet(end, r)

	var out []Candidate
	for _, w := range cscWords {
		c1 := startCircles.Of(w.start)
		c2 := endCircles.Of(w.end)
		if path, ok := cscPathFor(start, end, c1, c2); ok {
			out = append(out, Candidate{Word: w.word, Path: path})
		}
	}
	for _, w := range cccWords {
		c1 := startCircles.Of(w.direction)
		c2 := endCircles.Of(w.direction)
		if path, ok := cccPathFor(start, end, c1, c2, r); ok {
			out = append(out, Candidate{Word: w.word, Path: path})
		}
	}
	return out
}

// cscPathFor builds the CSC path between circles c1 (at start) and c2 (at
// end), or reports ok=false if the tangent is not geometrically valid.
func cscPathFor(start, end DirectedPoint, c1, c2 Circle) (Path, bool) {
	tangent, ok := tangentBetween(c1, c2)
	if !ok {
		return Path{}, false
	}

	arc1 := Arc{Circle: c1, Start: start.Point, End: tangent.Start}
	arc2 := Arc{Circle: c2, Start: tangent.End, End: end.Point}

	return Path{kind: kindCSC, csc: cscPath{First: arc1, Straight: tangent, Second: arc2}}, true
}

// tangentBetween computes the straight tangent segment between two
// circles, selecting an outer tangent when the circles share a
// direction and an inner tangent otherwise, per the component design's
// c/h construction.
func tangentBetween(c1, c2 Circle) (Tangent, bool) {
	delta := c2.Center.Sub(c1.Center)
	d := delta.Length()
	if d == 0 {
		return Tangent{}, false
	}
	u := delta.Scale(1 / d)

	sameDirection := c1.Direction == c2.Direction
	sign1 := 1.0
	if !sameDirection {
		sign1 = -1.0
	}

	c := (c1.Radius - sign1*c2.Radius) / d
	if c*c > 1 {
		// Inner tangent impossible (circles overlap too much); fall back
		// to treating this as an outer tangent.
		sign1 = 1.0
		c = (c1.Radius + sign1*c2.Radius) / d
		if c*c > 1 {
			return Tangent{}, false
		}
	}

	h := math.Sqrt(math.Max(0, 1-c*c))
	sign2 := -1.0
	if c1.Direction == Left {
		sign2 = 1.0
	}

	n := Point{
		X: u.X*c - sign2*h*u.Y,
		Y: u.Y*c + sign2*h*u.X,
	}

	start := c1.Center.Add(n.Scale(c1.Radius))
	end := c2.Center.Add(n.Scale(sign1 * c2.Radius))

	return Tangent{Start: start, End: end}, true
}

// cccPathFor builds the CCC path between same-direction circles c1
// (start) and c2 (end) at radius r, or reports ok=false if the circles
// are too far apart (d >= 4r) for a third tangent circle to exist.
func cccPathFor(start, end DirectedPoint, c1, c2 Circle, r float64) (Path, bool) {
	delta := c2.Center.Sub(c1.Center)
	d := delta.Length()
	if d >= 4*r {
		return Path{}, false
	}

	theta := mathutil.Acos(d / (4 * r))
	deltaAngle := math.Atan2(delta.Y, delta.X)

	var alpha float64
	if c1.Direction == Left {
		alpha = deltaAngle - theta
	} else {
		alpha = deltaAngle + theta
	}

	oppositeDirection := Right
	if c1.Direction == Right {
		oppositeDirection = Left
	}

	c3 := Circle{
		Center:    c1.Center.Add(Point{X: 2 * r * math.Cos(alpha), Y: 2 * r * math.Sin(alpha)}),
		Radius:    r,
		Direction: oppositeDirection,
	}

	cross1 := midpoint(c1.Center, c3.Center)
	cross2 := midpoint(c3.Center, c2.Center)

	arc1 := Arc{Circle: c1, Start: start.Point, End: cross1}
	arc2 := Arc{Circle: c3, Start: cross1, End: cross2}
	arc3 := Arc{Circle: c2, Start: cross2, End: end.Point}

	return Path{kind: kindCCC, ccc: cccPath{First: arc1, Second: arc2, Third: arc3}}, true
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
