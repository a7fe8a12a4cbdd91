package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orbipath/astar"
	"github.com/katalvlaran/orbipath/dijkstra"
	"github.com/katalvlaran/orbipath/orbit"
	"github.com/katalvlaran/orbipath/pathfind"
	"github.com/katalvlaran/orbipath/progress"
	"github.com/katalvlaran/orbipath/tiebreak"
)

var planFlags struct {
	body            string
	from            string
	to              string
	algorithm       string
	penalty         float64
	precision       int
	inclinationStep int
	sectionLimits   []float64
	catalogPath     string
	workers         int
	quiet           bool
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Find the minimum-Δv burn sequence between two orbits",
	Example: `  otp plan --body Earth --from ISS --to GEO
  otp plan --from KSC_Parking --to GEO --algorithm dijkstra
  otp plan --from 6771000,6771000,0 --to 42164000,42164000,0 --penalty 2`,
	RunE: runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&planFlags.body, "body", "Earth", "central body (catalogue name)")
	f.StringVar(&planFlags.from, "from", "", "start orbit: catalogue name or apoapsis,periapsis,inclination (m, m, deg)")
	f.StringVar(&planFlags.to, "to", "", "target orbit: catalogue name or apoapsis,periapsis,inclination")
	f.StringVar(&planFlags.algorithm, "algorithm", "tiebreak", "search algorithm: dijkstra, astar or tiebreak")
	f.Float64Var(&planFlags.penalty, "penalty", 5, "tiebreak per-burn penalty in m/s (search-time only)")
	f.IntVar(&planFlags.precision, "precision", 5, "orbit radii sampled per altitude section")
	f.IntVar(&planFlags.inclinationStep, "inclination-step", 5, "degrees between candidate inclinations")
	f.Float64SliceVar(&planFlags.sectionLimits, "section-limits", []float64{150000, 20000000},
		"altitudes (m above surface) splitting the sampling range into sections")
	f.StringVar(&planFlags.catalogPath, "catalog", "", "YAML file with extra bodies and orbits")
	f.IntVar(&planFlags.workers, "workers", 0, "manoeuvre evaluation workers (0 = all CPUs)")
	f.BoolVar(&planFlags.quiet, "quiet", false, "suppress the progress bar")

	_ = planCmd.MarkFlagRequired("from")
	_ = planCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	catalog := orbit.Known()
	if planFlags.catalogPath != "" {
		if err := loadCatalog(planFlags.catalogPath, catalog); err != nil {
			return err
		}
	}

	body, ok := catalog.Bodies[planFlags.body]
	if !ok {
		return fmt.Errorf("unknown body %q (catalogue has: %s)", planFlags.body, names(catalog.Bodies))
	}

	start, err := resolveOrbit(catalog, body, planFlags.from)
	if err != nil {
		return err
	}
	target, err := resolveOrbit(catalog, body, planFlags.to)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"body":   body.Name,
		"start":  start.String(),
		"target": target.String(),
	}).Info("enumerating candidate orbits")

	collection, err := orbit.NewCollection(body)
	if err != nil {
		return err
	}
	collection.AddOrbit(start)
	collection.AddOrbit(target)

	limits := make([]float64, 0, len(planFlags.sectionLimits))
	for _, alt := range planFlags.sectionLimits {
		limits = append(limits, body.AddRadius(alt))
	}
	if err = collection.CreateOrbits(planFlags.precision, limits, planFlags.inclinationStep); err != nil {
		return err
	}
	log.WithField("orbits", collection.Len()).Info("computing manoeuvres")

	var mopts []orbit.ManoeuvreOption
	if planFlags.workers > 0 {
		mopts = append(mopts, orbit.WithWorkers(planFlags.workers))
	}
	if !planFlags.quiet {
		var bar *progress.Bar
		mopts = append(mopts, orbit.WithOnProgress(func(done, total int) {
			if bar == nil {
				bar, _ = progress.New(total, progress.WithWriter(cmd.ErrOrStderr()))
			}
			_ = bar.Set(done)
		}))
	}
	if err = collection.ComputeManoeuvres(mopts...); err != nil {
		return err
	}

	log.WithField("algorithm", planFlags.algorithm).Info("searching for the cheapest transfer")
	path, err := findPath(collection.Graph(), start.ID(), target.ID())
	if err != nil {
		return err
	}

	printPlan(cmd, start, target, path)

	return nil
}

// findPath dispatches to the selected algorithm.
func findPath(g *pathfind.Graph, start, goal string) (pathfind.Path, error) {
	switch planFlags.algorithm {
	case "dijkstra":
		return dijkstra.ShortestPath(g, start, goal)
	case "astar":
		return astar.ShortestPath(g, start, goal)
	case "tiebreak":
		return tiebreak.ShortestPath(g, start, goal, planFlags.penalty)
	default:
		return pathfind.Path{}, fmt.Errorf("unknown algorithm %q (want dijkstra, astar or tiebreak)", planFlags.algorithm)
	}
}

// resolveOrbit accepts a catalogue orbit name or an
// "apoapsis,periapsis,inclination" triple around body.
func resolveOrbit(catalog *orbit.Catalog, body *orbit.Body, ref string) (*orbit.Orbit, error) {
	if o, ok := catalog.Orbits[ref]; ok {
		if o.Body != body {
			return nil, fmt.Errorf("orbit %q is around %s, not %s", ref, o.Body.Name, body.Name)
		}

		return o, nil
	}

	parts := strings.Split(ref, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("orbit %q: not in catalogue (%s) and not an apo,per,incl triple",
			ref, names(catalog.Orbits))
	}
	apo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("orbit %q: bad apoapsis: %w", ref, err)
	}
	per, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("orbit %q: bad periapsis: %w", ref, err)
	}
	incl, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, fmt.Errorf("orbit %q: bad inclination: %w", ref, err)
	}

	return orbit.NewOrbitApsides(body, apo, per, incl)
}

// printPlan renders the burn sequence on stdout.
func printPlan(cmd *cobra.Command, start, target *orbit.Orbit, path pathfind.Path) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nFound plan for %.1f m/s Δv (%d burns):\n", path.Weight, path.Hops())
	fmt.Fprintf(out, "Start:  %s\n", start)
	fmt.Fprintf(out, "Target: %s\n\n", target)
	for _, step := range path.Steps {
		if step.Via != nil {
			fmt.Fprintf(out, "   %s\n", step.Via)
		}
		fmt.Fprintf(out, "%s\n", step.Node)
	}
}

func names[V any](m map[string]V) string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return strings.Join(out, ", ")
}
