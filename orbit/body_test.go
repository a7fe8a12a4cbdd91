package orbit_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbipath/orbit"
)

func TestNewBody_Validation(t *testing.T) {
	_, err := orbit.NewBody("x", 0, 1000, 0, 0, nil)
	require.ErrorIs(t, err, orbit.ErrBadBody)

	_, err = orbit.NewBody("x", 1e22, -5, 0, 0, nil)
	require.ErrorIs(t, err, orbit.ErrBadBody)
}

func TestNewBody_DerivesMuFromMass(t *testing.T) {
	b, err := orbit.NewBody("x", 2e24, 1e6, 0, 0, nil)
	require.NoError(t, err)
	require.InEpsilon(t, 2e24*orbit.GravitationalConstant, b.Mu, 1e-12)
}

func TestNewBody_KeepsExplicitMu(t *testing.T) {
	b, err := orbit.NewBody("Earth", 5.9736e24, 6371000, 160000, 3.986004418e14, nil)
	require.NoError(t, err)
	require.Equal(t, 3.986004418e14, b.Mu)
}

func TestBody_RadiusHelpers(t *testing.T) {
	earth := orbit.Known().Bodies["Earth"]
	require.Equal(t, earth.Radius+200000, earth.AddRadius(200000))
	require.Equal(t, earth.Radius+earth.LowestOrbit, earth.MinOrbitRadius())
}

func TestBody_HillSphereRadius(t *testing.T) {
	cat := orbit.Known()

	// Earth's hill sphere is about 1.47 million km.
	hill, err := cat.Bodies["Earth"].HillSphereRadius()
	require.NoError(t, err)
	require.InDelta(t, 1.47e9, hill, 1e7)

	// The central star has no parent orbit to bound it.
	_, err = cat.Bodies["Sun"].HillSphereRadius()
	require.ErrorIs(t, err, orbit.ErrUnboundedBody)
}

func TestBody_MaxOrbitRadius(t *testing.T) {
	earth := orbit.Known().Bodies["Earth"]
	hill, err := earth.HillSphereRadius()
	require.NoError(t, err)

	max, err := earth.MaxOrbitRadius()
	require.NoError(t, err)
	require.InDelta(t, hill/3, max, 0.5)
	require.Equal(t, max, float64(int64(max)), "rounded to whole meters")
}

func TestBody_ComputeRadii(t *testing.T) {
	earth := orbit.Known().Bodies["Earth"]

	_, err := earth.ComputeRadii(0, nil)
	require.ErrorIs(t, err, orbit.ErrBadSections)

	_, err = orbit.Known().Bodies["Sun"].ComputeRadii(3, nil)
	require.ErrorIs(t, err, orbit.ErrUnboundedBody)

	// Two section limits split min..max into three bands of four samples.
	radii, err := earth.ComputeRadii(4, []float64{1e7, 1e8})
	require.NoError(t, err)
	require.Len(t, radii, 12)
	require.Equal(t, earth.MinOrbitRadius(), radii[0])
	require.True(t, sort.Float64sAreSorted(radii))
}

func TestBody_ComputeRadii_SingleBand(t *testing.T) {
	earth := orbit.Known().Bodies["Earth"]

	radii, err := earth.ComputeRadii(5, nil)
	require.NoError(t, err)
	require.Len(t, radii, 5)
}
