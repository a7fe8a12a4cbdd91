package orbit

import (
	"errors"
	"math"
)

// GravitationalConstant is G in m³·kg⁻¹·s⁻², per the JPL solar system
// dynamics constants.
const GravitationalConstant = 6.67430e-11

// Sentinel errors for body construction and orbit enumeration.
var (
	// ErrBadBody indicates a non-positive mass or radius.
	ErrBadBody = errors.New("orbit: body mass and radius must be positive")

	// ErrUnboundedBody indicates a body without a parent orbit, whose
	// sphere of influence (and thus maximum stable orbit) is unknown.
	ErrUnboundedBody = errors.New("orbit: body has no parent orbit bounding its sphere of influence")

	// ErrBadSections indicates a non-positive per-section sample count.
	ErrBadSections = errors.New("orbit: samples per section must be positive")
)

// Body is a massive central body around which objects orbit. The current
// model assumes orbiting objects are light enough that their pull on the
// body is negligible.
type Body struct {
	// Name identifies the body in catalogues and CLI output.
	Name string

	// Mass in kg.
	Mass float64

	// Radius in m.
	Radius float64

	// Mu is the standard gravitational parameter in m³·s⁻². Mu is known
	// to higher precision than G·M for most bodies, so constructors accept
	// it explicitly and fall back to Mass·G when zero.
	Mu float64

	// LowestOrbit is the minimum safe altitude above the surface in m,
	// accounting for atmosphere and terrain.
	LowestOrbit float64

	// Orbit is the orbit the body itself is in, or nil for the central
	// star. A parent orbit bounds the body's sphere of influence.
	Orbit *Orbit
}

// NewBody builds a Body. mu == 0 derives μ from mass·G; parent may be nil
// for the central star.
func NewBody(name string, mass, radius, lowestOrbit, mu float64, parent *Orbit) (*Body, error) {
	if mass <= 0 || radius <= 0 {
		return nil, ErrBadBody
	}
	if mu == 0 {
		mu = mass * GravitationalConstant
	}

	return &Body{
		Name:        name,
		Mass:        mass,
		Radius:      radius,
		Mu:          mu,
		LowestOrbit: lowestOrbit,
		Orbit:       parent,
	}, nil
}

// AddRadius converts an altitude above the surface to a radius from the
// body's centre.
func (b *Body) AddRadius(altitude float64) float64 { return altitude + b.Radius }

// MinOrbitRadius returns the lowest viable orbit radius from the centre.
func (b *Body) MinOrbitRadius() float64 { return b.Radius + b.LowestOrbit }

// HillSphereRadius returns the body's hill sphere radius in m, or an
// error for a body without a parent orbit.
func (b *Body) HillSphereRadius() (float64, error) {
	if b.Orbit == nil {
		return 0, ErrUnboundedBody
	}
	p := b.Orbit

	return p.SemiMajorAxis * (1 - p.Eccentricity) *
		math.Cbrt(b.Mass/(3*p.Body.Mass)), nil
}

// MaxOrbitRadius estimates the highest stable orbit radius as a third of
// the hill sphere radius, rounded to whole meters.
func (b *Body) MaxOrbitRadius() (float64, error) {
	hill, err := b.HillSphereRadius()
	if err != nil {
		return 0, err
	}

	return math.Round(hill / 3), nil
}

// ComputeRadii samples candidate orbit radii between MinOrbitRadius and
// MaxOrbitRadius, perSection values per section. sectionLimits split the
// range into bands sampled independently, so callers can keep dense
// coverage near the body while still reaching high orbits:
//
//	min ── limit₁ ── limit₂ ── max
//
// yields perSection uniformly spaced radii inside every adjacent pair.
// Radii are rounded to whole meters and returned in increasing order.
func (b *Body) ComputeRadii(perSection int, sectionLimits []float64) ([]float64, error) {
	if perSection <= 0 {
		return nil, ErrBadSections
	}
	max, err := b.MaxOrbitRadius()
	if err != nil {
		return nil, err
	}

	limits := make([]float64, 0, len(sectionLimits)+2)
	limits = append(limits, b.MinOrbitRadius())
	limits = append(limits, sectionLimits...)
	limits = append(limits, max)

	radii := make([]float64, 0, perSection*(len(limits)-1))
	for i := 0; i+1 < len(limits); i++ {
		step := (limits[i+1] - limits[i]) / float64(perSection)
		for s := 0; s < perSection; s++ {
			radii = append(radii, math.Round(limits[i]+float64(s)*step))
		}
	}

	return radii, nil
}
