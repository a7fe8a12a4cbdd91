package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/orbipath/pathfind"
)

// Sentinel errors for orbit construction.
var (
	// ErrKeplerElements indicates invalid Kepler elements: a non-positive
	// semi-major axis or apsis, or an eccentricity outside [0, 1).
	ErrKeplerElements = errors.New("orbit: invalid Kepler elements")

	// ErrBadInclination indicates an inclination outside 0..180 degrees.
	ErrBadInclination = errors.New("orbit: inclination must be within 0..180 degrees")
)

// Orbit is a Kepler orbit around a central body. Apsides are rounded to
// whole meters and, with the inclination, form the orbit's identity, so
// two orbits closer than a meter in both apsides at the same inclination
// are the same pathfind node.
//
// Orbit implements pathfind.Node and pathfind.HeuristicNode. An Orbit is
// immutable except for the manoeuvres attached to it by Link; attach all
// manoeuvres before starting a search.
type Orbit struct {
	// Body is the central body this orbit is around.
	Body *Body

	// SemiMajorAxis (a) in m.
	SemiMajorAxis float64

	// Eccentricity (e); 0 is circular.
	Eccentricity float64

	// Apoapsis in m from the body's centre, rounded to whole meters.
	Apoapsis float64

	// Periapsis in m from the body's centre, rounded to whole meters.
	Periapsis float64

	// Inclination in whole degrees, 0..180.
	Inclination int

	manoeuvres []*Manoeuvre
}

// NewOrbitAE builds an orbit from semi-major axis and eccentricity.
func NewOrbitAE(b *Body, a, e float64, inclination int) (*Orbit, error) {
	if b == nil || a <= 0 || e < 0 || e >= 1 {
		return nil, fmt.Errorf("%w: a=%v e=%v", ErrKeplerElements, a, e)
	}

	return newOrbit(b, math.Round(a*(1+e)), math.Round(a*(1-e)), inclination)
}

// NewOrbitApsides builds an orbit from its apsides, swapping them when
// the passed periapsis is the greater of the two.
func NewOrbitApsides(b *Body, apo, per float64, inclination int) (*Orbit, error) {
	if b == nil || apo <= 0 || per <= 0 {
		return nil, fmt.Errorf("%w: apo=%v per=%v", ErrKeplerElements, apo, per)
	}
	if per > apo {
		apo, per = per, apo
	}

	return newOrbit(b, math.Round(apo), math.Round(per), inclination)
}

func newOrbit(b *Body, apo, per float64, inclination int) (*Orbit, error) {
	if inclination < 0 || inclination > 180 {
		return nil, fmt.Errorf("%w: %d", ErrBadInclination, inclination)
	}

	return &Orbit{
		Body:          b,
		SemiMajorAxis: (apo + per) / 2,
		Eccentricity:  1 - 2/((apo/per)+1),
		Apoapsis:      apo,
		Periapsis:     per,
		Inclination:   inclination,
	}, nil
}

// ID returns the orbit's identity: apsides and inclination.
func (o *Orbit) ID() string {
	return fmt.Sprintf("a%.0f:p%.0f:i%d", o.Apoapsis, o.Periapsis, o.Inclination)
}

// Neighbors enumerates the manoeuvres departing from this orbit, in the
// order they were attached. Attachment order is deterministic for a
// fixed Collection, which keeps searches reproducible.
func (o *Orbit) Neighbors() []pathfind.Neighbor {
	nbs := make([]pathfind.Neighbor, 0, len(o.manoeuvres))
	for _, m := range o.manoeuvres {
		nbs = append(nbs, pathfind.Neighbor{Edge: m, Node: m.to})
	}

	return nbs
}

// Heuristic estimates the remaining Δv-ish cost to goal from the
// inclination gap and the apsis distances. A coarse guide: zero at the
// goal itself, non-negative everywhere, cheap to compute. For a goal
// that is not an *Orbit the estimate is zero, degrading A* to Dijkstra.
func (o *Orbit) Heuristic(goal pathfind.Node) float64 {
	t, ok := goal.(*Orbit)
	if !ok {
		return 0
	}

	return math.Abs(float64(o.Inclination-t.Inclination)) +
		math.Abs(o.Apoapsis-t.Apoapsis)/10000 +
		math.Abs(o.Periapsis-t.Periapsis)/10000
}

// VAt returns the orbital speed in m·s⁻¹ at radius r from the body's
// centre, by the vis-viva equation.
func (o *Orbit) VAt(r float64) float64 {
	return math.Sqrt(o.Body.Mu * ((2 / r) - (1 / o.SemiMajorAxis)))
}

// Apsides returns the orbit's periapsis and apoapsis.
func (o *Orbit) Apsides() (per, apo float64) { return o.Periapsis, o.Apoapsis }

// HasApsis reports whether r is one of the orbit's apsides.
func (o *Orbit) HasApsis(r float64) bool {
	return r == o.Apoapsis || r == o.Periapsis
}

// SharedApsis returns an apsis radius common to both orbits, preferring
// the periapsis, and whether one exists.
func (o *Orbit) SharedApsis(other *Orbit) (float64, bool) {
	switch {
	case other.HasApsis(o.Periapsis):
		return o.Periapsis, true
	case other.HasApsis(o.Apoapsis):
		return o.Apoapsis, true
	default:
		return 0, false
	}
}

// SameApsides reports whether both orbits have identical apsides.
func (o *Orbit) SameApsides(other *Orbit) bool {
	return o.Apoapsis == other.Apoapsis && o.Periapsis == other.Periapsis
}

// Manoeuvres returns the manoeuvres attached to this orbit.
func (o *Orbit) Manoeuvres() []*Manoeuvre { return o.manoeuvres }

// String renders the orbit for logs and CLI output.
func (o *Orbit) String() string {
	return fmt.Sprintf("Orbit(apo=%.0fm per=%.0fm i=%d°)", o.Apoapsis, o.Periapsis, o.Inclination)
}
