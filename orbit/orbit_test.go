package orbit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbipath/orbit"
	"github.com/katalvlaran/orbipath/pathfind"
)

func earth(t *testing.T) *orbit.Body {
	t.Helper()

	return orbit.Known().Bodies["Earth"]
}

func TestNewOrbitAE_DerivesApsides(t *testing.T) {
	o, err := orbit.NewOrbitAE(earth(t), 10000000, 0.1, 20)
	require.NoError(t, err)

	require.Equal(t, 11000000.0, o.Apoapsis)
	require.Equal(t, 9000000.0, o.Periapsis)
	require.Equal(t, 10000000.0, o.SemiMajorAxis)
	require.InDelta(t, 0.1, o.Eccentricity, 1e-12)
	require.Equal(t, 20, o.Inclination)
}

func TestNewOrbitApsides_DerivesElements(t *testing.T) {
	o, err := orbit.NewOrbitApsides(earth(t), 11000000, 9000000, 0)
	require.NoError(t, err)

	require.Equal(t, 10000000.0, o.SemiMajorAxis)
	require.InDelta(t, 0.1, o.Eccentricity, 1e-12)
}

func TestNewOrbitApsides_SwapsReversedApsides(t *testing.T) {
	o, err := orbit.NewOrbitApsides(earth(t), 9000000, 11000000, 0)
	require.NoError(t, err)

	require.Equal(t, 11000000.0, o.Apoapsis)
	require.Equal(t, 9000000.0, o.Periapsis)
}

func TestNewOrbit_Validation(t *testing.T) {
	e := earth(t)

	_, err := orbit.NewOrbitAE(nil, 1e7, 0, 0)
	require.ErrorIs(t, err, orbit.ErrKeplerElements)

	_, err = orbit.NewOrbitAE(e, -1e7, 0, 0)
	require.ErrorIs(t, err, orbit.ErrKeplerElements)

	_, err = orbit.NewOrbitAE(e, 1e7, 1.0, 0)
	require.ErrorIs(t, err, orbit.ErrKeplerElements)

	_, err = orbit.NewOrbitApsides(e, 1e7, -1, 0)
	require.ErrorIs(t, err, orbit.ErrKeplerElements)

	_, err = orbit.NewOrbitAE(e, 1e7, 0, 181)
	require.ErrorIs(t, err, orbit.ErrBadInclination)

	_, err = orbit.NewOrbitApsides(e, 1e7, 1e7, -1)
	require.ErrorIs(t, err, orbit.ErrBadInclination)
}

func TestOrbit_Identity(t *testing.T) {
	e := earth(t)

	a, err := orbit.NewOrbitApsides(e, 11000000, 9000000, 20)
	require.NoError(t, err)
	require.Equal(t, "a11000000:p9000000:i20", a.ID())
	require.Equal(t, "Orbit(apo=11000000m per=9000000m i=20°)", a.String())

	// Sub-meter differences round onto the same identity.
	b, err := orbit.NewOrbitApsides(e, 11000000.4, 8999999.6, 20)
	require.NoError(t, err)
	require.Equal(t, a.ID(), b.ID())
}

func TestOrbit_VAt(t *testing.T) {
	e := earth(t)

	// Circular orbit speed is √(μ/r).
	leo, err := orbit.NewOrbitAE(e, 6571000, 0, 0)
	require.NoError(t, err)
	require.InDelta(t, 7788.5, leo.VAt(6571000), 0.1)

	// Geostationary transfer orbit, speed at perigee.
	gto, err := orbit.NewOrbitApsides(e, 42164000, 6571000, 0)
	require.NoError(t, err)
	require.InDelta(t, 10245.2, gto.VAt(gto.Periapsis), 0.1)
	require.InDelta(t, 1596.7, gto.VAt(gto.Apoapsis), 0.1)
}

func TestOrbit_ApsisQueries(t *testing.T) {
	e := earth(t)

	a, err := orbit.NewOrbitApsides(e, 11000000, 9000000, 0)
	require.NoError(t, err)
	b, err := orbit.NewOrbitApsides(e, 13000000, 11000000, 0)
	require.NoError(t, err)
	c, err := orbit.NewOrbitApsides(e, 8000000, 7000000, 0)
	require.NoError(t, err)

	per, apo := a.Apsides()
	require.Equal(t, 9000000.0, per)
	require.Equal(t, 11000000.0, apo)

	require.True(t, a.HasApsis(11000000))
	require.True(t, a.HasApsis(9000000))
	require.False(t, a.HasApsis(10000000))

	r, ok := a.SharedApsis(b)
	require.True(t, ok)
	require.Equal(t, 11000000.0, r)

	_, ok = a.SharedApsis(c)
	require.False(t, ok)

	twin, err := orbit.NewOrbitApsides(e, 11000000, 9000000, 45)
	require.NoError(t, err)
	require.True(t, a.SameApsides(twin))
	require.False(t, a.SameApsides(b))

	// SharedApsis prefers the receiver's periapsis when both match.
	r, ok = a.SharedApsis(twin)
	require.True(t, ok)
	require.Equal(t, 9000000.0, r)
}

func TestOrbit_Heuristic(t *testing.T) {
	e := earth(t)

	a, err := orbit.NewOrbitApsides(e, 11000000, 9000000, 20)
	require.NoError(t, err)
	b, err := orbit.NewOrbitApsides(e, 12000000, 9000000, 50)
	require.NoError(t, err)

	require.Zero(t, a.Heuristic(a), "zero at the goal itself")
	require.Positive(t, a.Heuristic(b))
	require.Equal(t, a.Heuristic(b), b.Heuristic(a), "symmetric")
	require.Zero(t, a.Heuristic(plainGoal{}), "non-orbit goal degrades to Dijkstra")
}

type plainGoal struct{}

func (plainGoal) ID() string                     { return "goal" }
func (plainGoal) Neighbors() []pathfind.Neighbor { return nil }
