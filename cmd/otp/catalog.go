package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orbipath/orbit"
)

// catalogFile is the YAML schema for extending the built-in catalogue.
//
//	bodies:
//	  - name: Duna
//	    mass: 4.5154270e21
//	    radius: 320000
//	    mu: 3.0136321e11      # optional, derived from mass when omitted
//	    lowestOrbit: 50000
//	    parent:               # optional orbit around an earlier body
//	      body: Kerbol
//	      apoapsis: 21783189163
//	      periapsis: 19669121365
//	      inclination: 0
//	orbits:
//	  - name: Duna_Low
//	    body: Duna
//	    apoapsis: 370000
//	    periapsis: 370000
//	    inclination: 0
type catalogFile struct {
	Bodies []bodyEntry  `yaml:"bodies"`
	Orbits []orbitEntry `yaml:"orbits"`
}

type bodyEntry struct {
	Name        string      `yaml:"name"`
	Mass        float64     `yaml:"mass"`
	Radius      float64     `yaml:"radius"`
	Mu          float64     `yaml:"mu"`
	LowestOrbit float64     `yaml:"lowestOrbit"`
	Parent      *orbitEntry `yaml:"parent"`
}

type orbitEntry struct {
	Name        string  `yaml:"name"`
	Body        string  `yaml:"body"`
	Apoapsis    float64 `yaml:"apoapsis"`
	Periapsis   float64 `yaml:"periapsis"`
	Inclination int     `yaml:"inclination"`
}

// loadCatalog merges bodies and orbits from a YAML file into catalog.
// Entries may reference built-in bodies or bodies defined earlier in the
// same file; same-named entries replace built-in ones.
func loadCatalog(path string, catalog *orbit.Catalog) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", path, err)
	}

	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&file); err != nil {
		return fmt.Errorf("catalog %s: %w", path, err)
	}

	for _, be := range file.Bodies {
		var parent *orbit.Orbit
		if be.Parent != nil {
			parent, err = buildOrbit(catalog, *be.Parent)
			if err != nil {
				return fmt.Errorf("catalog %s: body %q parent: %w", path, be.Name, err)
			}
		}
		body, err := orbit.NewBody(be.Name, be.Mass, be.Radius, be.LowestOrbit, be.Mu, parent)
		if err != nil {
			return fmt.Errorf("catalog %s: body %q: %w", path, be.Name, err)
		}
		catalog.Bodies[be.Name] = body
	}

	for _, oe := range file.Orbits {
		o, err := buildOrbit(catalog, oe)
		if err != nil {
			return fmt.Errorf("catalog %s: orbit %q: %w", path, oe.Name, err)
		}
		catalog.Orbits[oe.Name] = o
	}

	return nil
}

func buildOrbit(catalog *orbit.Catalog, oe orbitEntry) (*orbit.Orbit, error) {
	body, ok := catalog.Bodies[oe.Body]
	if !ok {
		return nil, fmt.Errorf("references unknown body %q", oe.Body)
	}

	return orbit.NewOrbitApsides(body, oe.Apoapsis, oe.Periapsis, oe.Inclination)
}
