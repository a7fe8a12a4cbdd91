package orbit

// Catalog holds ready-made bodies and orbits for planners and the CLI.
// Every call to Known builds fresh instances: orbits accumulate
// manoeuvres once used in a Collection, so sharing catalogue entries
// between runs would leak graph state.
type Catalog struct {
	Bodies map[string]*Body
	Orbits map[string]*Orbit
}

// Known returns a catalogue of real-world and Kerbal Space Program
// bodies with a handful of named orbits around Earth. Estimates, good
// enough for planning.
func Known() *Catalog {
	sun := mustBody("Sun", 1.989e30, 696349999, 0, 1.32712440018e20, nil)
	earthOrbit := mustOrbitAE(sun, 149598023000, 0.0167086, 7)
	earth := mustBody("Earth", 5.9736e24, 6371000, 160000, 3.986004418e14, earthOrbit)
	moonOrbit := mustOrbitApsides(earth, 405400000, 363228900, 5)
	moon := mustBody("Moon", 7.34767309e22, 1737400, 0, 4.9048695e12, moonOrbit)

	kerbol := mustBody("Kerbol", 1.7565459e28, 261600000, 0, 1.1723328e18, nil)
	kerbinOrbit := mustOrbitApsides(kerbol, 13599840256, 13599840256, 0)
	kerbin := mustBody("Kerbin", 5.2915158e22, 600000, 70000, 3.5316000e12, kerbinOrbit)
	munOrbit := mustOrbitAE(kerbin, 12000000, 0, 0)
	mun := mustBody("Mun", 9.7599066e20, 200000, 0, 6.5138398e10, munOrbit)
	minmusOrbit := mustOrbitAE(kerbin, 47000000, 0, 6)
	minmus := mustBody("Minmus", 2.6457580e19, 60000, 0, 1.7658000e9, minmusOrbit)

	return &Catalog{
		Bodies: map[string]*Body{
			"Sun":    sun,
			"Earth":  earth,
			"Moon":   moon,
			"Kerbol": kerbol,
			"Kerbin": kerbin,
			"Mun":    mun,
			"Minmus": minmus,
		},
		Orbits: map[string]*Orbit{
			"ISS":              mustOrbitApsides(earth, earth.AddRadius(422000), earth.AddRadius(418000), 52),
			"GEO":              mustOrbitAE(earth, 42164000, 0, 0),
			"KSC_Parking":      mustOrbitAE(earth, earth.AddRadius(200000), 0, 28),
			"Baikonur_Parking": mustOrbitAE(earth, earth.AddRadius(200000), 0, 49),
			"Sun_synchronous":  mustOrbitAE(earth, earth.AddRadius(274000), 0, 97),
			"LEO_Equatorial":   mustOrbitAE(earth, earth.AddRadius(200000), 0, 0),
		},
	}
}

// Catalogue constants are known-good; a failure here is a programming
// error, not a runtime condition.
func mustBody(name string, mass, radius, lowestOrbit, mu float64, parent *Orbit) *Body {
	b, err := NewBody(name, mass, radius, lowestOrbit, mu, parent)
	if err != nil {
		panic(err)
	}

	return b
}

func mustOrbitAE(b *Body, a, e float64, inclination int) *Orbit {
	o, err := NewOrbitAE(b, a, e, inclination)
	if err != nil {
		panic(err)
	}

	return o
}

func mustOrbitApsides(b *Body, apo, per float64, inclination int) *Orbit {
	o, err := NewOrbitApsides(b, apo, per, inclination)
	if err != nil {
		panic(err)
	}

	return o
}
