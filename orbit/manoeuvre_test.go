package orbit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbipath/orbit"
)

// gtoTriple returns the classic LEO → GTO → GEO ladder: a circular
// parking orbit, the elliptic transfer touching both, and the circular
// target, all equatorial.
func gtoTriple(t *testing.T) (leo, gto, geo *orbit.Orbit) {
	t.Helper()
	e := earth(t)

	var err error
	leo, err = orbit.NewOrbitAE(e, 6571000, 0, 0)
	require.NoError(t, err)
	gto, err = orbit.NewOrbitApsides(e, 42164000, 6571000, 0)
	require.NoError(t, err)
	geo, err = orbit.NewOrbitAE(e, 42164000, 0, 0)
	require.NoError(t, err)

	return leo, gto, geo
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "pro/retrograde", orbit.Prograde.String())
	require.Equal(t, "plane change", orbit.PlaneChange.String())
	require.Equal(t, "combined", orbit.Combined.String())
	require.Equal(t, "kind(9)", orbit.Kind(9).String())
}

func TestFeasible(t *testing.T) {
	e := earth(t)
	leo, gto, geo := gtoTriple(t)

	tilted, err := orbit.NewOrbitApsides(e, 42164000, 6571000, 30)
	require.NoError(t, err)
	leoTwin, err := orbit.NewOrbitAE(e, 6571000, 0, 30)
	require.NoError(t, err)

	// Coplanar with a shared apsis.
	require.True(t, orbit.Feasible(orbit.Prograde, leo, gto))
	require.True(t, orbit.Feasible(orbit.Prograde, gto, geo))

	// No intersection at all: a transfer needs a shared apsis.
	require.False(t, orbit.Feasible(orbit.Prograde, leo, geo))
	require.False(t, orbit.Feasible(orbit.Combined, leo, geo))

	// Same apsides, different planes.
	require.True(t, orbit.Feasible(orbit.PlaneChange, leo, leoTwin))
	require.False(t, orbit.Feasible(orbit.PlaneChange, leo, gto))

	// Shared apsis across planes.
	require.True(t, orbit.Feasible(orbit.Combined, leo, tilted))
	require.False(t, orbit.Feasible(orbit.Combined, leo, gto), "coplanar pair is a plain burn")

	// Never between an orbit and itself.
	require.False(t, orbit.Feasible(orbit.Prograde, leo, leo))
	require.False(t, orbit.Feasible(orbit.PlaneChange, leo, leo))
}

func TestLink_MirroredPair(t *testing.T) {
	leo, gto, _ := gtoTriple(t)

	m, err := orbit.Link(orbit.Prograde, leo, gto, leo.Periapsis)
	require.NoError(t, err)

	require.Same(t, leo, m.From())
	require.Same(t, gto, m.To())
	require.Equal(t, orbit.Prograde, m.Kind())
	require.Equal(t, leo.Periapsis, m.Radius())
	require.Equal(t, m.DeltaV(), m.Weight())

	// The mirror twin hangs off the other orbit, same cost, reversed
	// direction.
	require.Len(t, leo.Manoeuvres(), 1)
	require.Len(t, gto.Manoeuvres(), 1)
	twin := gto.Manoeuvres()[0]
	require.Same(t, gto, twin.From())
	require.Same(t, leo, twin.To())
	require.Equal(t, m.DeltaV(), twin.DeltaV())
}

func TestLink_Errors(t *testing.T) {
	leo, _, geo := gtoTriple(t)

	_, err := orbit.Link(orbit.Prograde, leo, geo, leo.Periapsis)
	require.ErrorIs(t, err, orbit.ErrInfeasibleManoeuvre)

	_, err = orbit.Link(orbit.Prograde, leo, geo, 0)
	require.ErrorIs(t, err, orbit.ErrKeplerElements)

	require.Empty(t, leo.Manoeuvres(), "failed links attach nothing")
}

func TestLink_HohmannTransferCost(t *testing.T) {
	leo, gto, geo := gtoTriple(t)

	raise, err := orbit.Link(orbit.Prograde, leo, gto, gto.Periapsis)
	require.NoError(t, err)
	circ, err := orbit.Link(orbit.Prograde, gto, geo, gto.Apoapsis)
	require.NoError(t, err)

	// Textbook LEO→GEO Hohmann figures.
	require.InDelta(t, 2457, raise.DeltaV(), 5)
	require.InDelta(t, 1478, circ.DeltaV(), 5)
	require.InDelta(t, 3935, raise.DeltaV()+circ.DeltaV(), 5)
}

func TestLink_PlaneChangeCost(t *testing.T) {
	e := earth(t)

	a, err := orbit.NewOrbitAE(e, 7000000, 0, 0)
	require.NoError(t, err)
	b, err := orbit.NewOrbitAE(e, 7000000, 0, 60)
	require.NoError(t, err)

	m, err := orbit.Link(orbit.PlaneChange, a, b, 7000000)
	require.NoError(t, err)

	// A 60° plane change between equal circular speeds costs exactly one
	// orbital speed: 2·v·sin(30°) = v.
	require.InDelta(t, a.VAt(7000000), m.DeltaV(), 1e-6)
}

func TestManoeuvre_String(t *testing.T) {
	leo, gto, _ := gtoTriple(t)

	m, err := orbit.Link(orbit.Prograde, leo, gto, gto.Periapsis)
	require.NoError(t, err)
	require.Contains(t, m.String(), "pro/retrograde burn at r=6571000m")
}
