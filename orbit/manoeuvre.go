package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/orbipath/pathfind"
)

// Kind enumerates the supported single-burn manoeuvre types.
type Kind int

const (
	// Prograde is a pro- or retrograde burn at a shared apsis between two
	// orbits on the same inclination.
	Prograde Kind = iota

	// PlaneChange is a pure inclination change between two orbits with
	// identical apsides.
	PlaneChange

	// Combined is an inclination change and pro/retrograde burn executed
	// as one burn at a shared apsis of two non-coplanar orbits.
	Combined
)

// String returns the manoeuvre kind's display name.
func (k Kind) String() string {
	switch k {
	case Prograde:
		return "pro/retrograde"
	case PlaneChange:
		return "plane change"
	case Combined:
		return "combined"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrInfeasibleManoeuvre is returned by Link when the requested kind is
// not possible between the two orbits.
var ErrInfeasibleManoeuvre = errors.New("orbit: manoeuvre not feasible between these orbits")

// Manoeuvre is a directed single-burn transfer between two intersecting
// orbits, weighted by its Δv cost. Link creates manoeuvres in mirrored
// pairs, one per traversal direction, so a burn can be flown both ways.
//
// Manoeuvre implements pathfind.Edge.
type Manoeuvre struct {
	from, to *Orbit
	kind     Kind
	radius   float64 // intersection radius the burn is performed at
	deltaV   float64
}

// From returns the departure orbit.
func (m *Manoeuvre) From() pathfind.Node { return m.from }

// To returns the arrival orbit.
func (m *Manoeuvre) To() pathfind.Node { return m.to }

// Weight returns the manoeuvre's Δv cost in m·s⁻¹.
func (m *Manoeuvre) Weight() float64 { return m.deltaV }

// Kind returns the manoeuvre's burn type.
func (m *Manoeuvre) Kind() Kind { return m.kind }

// DeltaV returns the manoeuvre's Δv cost in m·s⁻¹.
func (m *Manoeuvre) DeltaV() float64 { return m.deltaV }

// Radius returns the radius from the body's centre at which the burn is
// performed.
func (m *Manoeuvre) Radius() float64 { return m.radius }

// String renders the manoeuvre for logs and CLI output.
func (m *Manoeuvre) String() string {
	return fmt.Sprintf("%s burn at r=%.0fm: %.1f m/s", m.kind, m.radius, m.deltaV)
}

// Feasible reports whether a manoeuvre of the given kind is possible
// between the two orbits. Always false for an orbit and itself.
func Feasible(kind Kind, a, b *Orbit) bool {
	if a.ID() == b.ID() {
		return false
	}
	_, shared := a.SharedApsis(b)
	switch kind {
	case Prograde:
		return a.Inclination == b.Inclination && shared
	case PlaneChange:
		return a.SameApsides(b) && a.Inclination != b.Inclination
	case Combined:
		return a.Inclination != b.Inclination && shared
	default:
		return false
	}
}

// Link creates the manoeuvre of the given kind between a and b, performed
// at intersection radius r, and attaches it to both orbits in mirrored
// directed pairs. The returned manoeuvre is the a→b direction.
//
// Link fails with ErrInfeasibleManoeuvre when the kind is not possible
// between the orbits, and with ErrKeplerElements when r is not positive.
func Link(kind Kind, a, b *Orbit, r float64) (*Manoeuvre, error) {
	if r <= 0 {
		return nil, fmt.Errorf("%w: intersection radius %v", ErrKeplerElements, r)
	}
	if !Feasible(kind, a, b) {
		return nil, fmt.Errorf("%w: %s between %s and %s", ErrInfeasibleManoeuvre, kind, a, b)
	}

	dv := deltaV(kind, a, b, r)
	forward := &Manoeuvre{from: a, to: b, kind: kind, radius: r, deltaV: dv}
	mirror := &Manoeuvre{from: b, to: a, kind: kind, radius: r, deltaV: dv}
	a.manoeuvres = append(a.manoeuvres, forward)
	b.manoeuvres = append(b.manoeuvres, mirror)

	return forward, nil
}

// deltaV computes the burn cost at intersection radius r.
func deltaV(kind Kind, a, b *Orbit, r float64) float64 {
	va, vb := a.VAt(r), b.VAt(r)
	if kind == Prograde {
		return math.Abs(va - vb)
	}

	return cosineRule(va, vb, math.Abs(float64(a.Inclination-b.Inclination)))
}

// cosineRule returns the magnitude of the velocity change between two
// speeds whose directions differ by angleDeg degrees.
func cosineRule(v1, v2, angleDeg float64) float64 {
	return math.Sqrt(v1*v1 + v2*v2 - 2*v1*v2*math.Cos(angleDeg*math.Pi/180))
}
