package orbit

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/orbipath/pathfind"
)

// Sentinel errors for collection operations.
var (
	// ErrNilBody indicates a Collection built without a central body.
	ErrNilBody = errors.New("orbit: collection requires a central body")

	// ErrBadWorkers is the panic value for a non-positive WithWorkers
	// argument.
	ErrBadWorkers = errors.New("orbit: worker count must be positive")

	// ErrBadInclinationStep indicates a non-positive inclination step.
	ErrBadInclinationStep = errors.New("orbit: inclination step must be positive")
)

// Collection owns a set of candidate orbits around one central body and
// generates every feasible manoeuvre between them. Orbits sharing an
// apsis radius are indexed together, since single-burn transfers only
// exist at an intersection.
type Collection struct {
	body   *Body
	kinds  []Kind
	orbits map[string]*Orbit
	order  []string             // insertion order, keeps generation deterministic
	apsis  map[float64][]*Orbit // apsis radius → orbits having it
}

// NewCollection builds a Collection around body, trying the given
// manoeuvre kinds in order when linking orbit pairs. With no kinds given
// it tries Prograde, PlaneChange, then Combined — the first feasible
// kind wins for each pair.
func NewCollection(body *Body, kinds ...Kind) (*Collection, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if len(kinds) == 0 {
		kinds = []Kind{Prograde, PlaneChange, Combined}
	}

	return &Collection{
		body:   body,
		kinds:  kinds,
		orbits: make(map[string]*Orbit),
		apsis:  make(map[float64][]*Orbit),
	}, nil
}

// AddOrbit inserts o, indexing it under each of its apsides. Orbits
// already present (same identity) are ignored.
func (c *Collection) AddOrbit(o *Orbit) {
	if o == nil {
		return
	}
	id := o.ID()
	if _, ok := c.orbits[id]; ok {
		return
	}
	c.orbits[id] = o
	c.order = append(c.order, id)
	c.apsis[o.Periapsis] = append(c.apsis[o.Periapsis], o)
	if o.Apoapsis != o.Periapsis {
		c.apsis[o.Apoapsis] = append(c.apsis[o.Apoapsis], o)
	}
}

// Len returns the number of orbits in the collection.
func (c *Collection) Len() int { return len(c.orbits) }

// Orbits returns the collection's orbits in insertion order.
func (c *Collection) Orbits() []*Orbit {
	out := make([]*Orbit, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.orbits[id])
	}

	return out
}

// CreateOrbits enumerates candidate orbits around the body: radii sampled
// by Body.ComputeRadii (perSection per band, extra band edges from
// sectionLimits), every periapsis/apoapsis combination of those radii,
// at every inclination from 0 to 180 in steps of inclinationStep.
// Generates on the order of radii² · (180/step) orbits.
func (c *Collection) CreateOrbits(perSection int, sectionLimits []float64, inclinationStep int) error {
	if inclinationStep <= 0 {
		return ErrBadInclinationStep
	}
	radii, err := c.body.ComputeRadii(perSection, sectionLimits)
	if err != nil {
		return err
	}

	for incl := 0; incl <= 180; incl += inclinationStep {
		for pi := 0; pi < len(radii); pi++ {
			for ai := pi; ai < len(radii); ai++ {
				o, err := NewOrbitApsides(c.body, radii[ai], radii[pi], incl)
				if err != nil {
					return fmt.Errorf("orbit: enumerating radii %v/%v: %w", radii[ai], radii[pi], err)
				}
				c.AddOrbit(o)
			}
		}
	}

	return nil
}

// ManoeuvreOptions tunes ComputeManoeuvres.
type ManoeuvreOptions struct {
	// Workers bounds the number of concurrent bucket evaluations.
	// Defaults to runtime.NumCPU().
	Workers int

	// OnProgress, if set, is called after each shared-apsis bucket has
	// been evaluated, with the number of completed buckets and the total.
	// Invocations are serialized; the callback need not be safe for
	// concurrent use.
	OnProgress func(done, total int)
}

// ManoeuvreOption configures ComputeManoeuvres via functional arguments.
type ManoeuvreOption func(*ManoeuvreOptions)

// WithWorkers bounds concurrent bucket evaluation. Panics on n < 1.
func WithWorkers(n int) ManoeuvreOption {
	return func(o *ManoeuvreOptions) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithOnProgress registers a progress hook.
func WithOnProgress(fn func(done, total int)) ManoeuvreOption {
	return func(o *ManoeuvreOptions) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// candidate is a feasible orbit pair found during bucket evaluation,
// linked in the serial attachment phase.
type candidate struct {
	kind   Kind
	a, b   *Orbit
	radius float64
}

// ComputeManoeuvres evaluates every orbit pair sharing an apsis radius
// and links the first feasible manoeuvre kind for each pair. Evaluation
// runs per bucket on a bounded worker group; attachment to orbits is
// serialized afterwards in deterministic bucket order, so repeated runs
// over the same orbits produce an identical graph.
func (c *Collection) ComputeManoeuvres(opts ...ManoeuvreOption) error {
	cfg := ManoeuvreOptions{Workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}

	radii := make([]float64, 0, len(c.apsis))
	for r := range c.apsis {
		radii = append(radii, r)
	}
	sort.Float64s(radii)

	var (
		results = make([][]candidate, len(radii))
		mu      sync.Mutex
		done    int
	)

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, r := range radii {
		i, r := i, r
		g.Go(func() error {
			results[i] = c.evaluateBucket(r)
			if cfg.OnProgress != nil {
				mu.Lock()
				done++
				cfg.OnProgress(done, len(radii))
				mu.Unlock()
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Attachment mutates orbits, so it stays single-threaded. A pair can
	// surface in two buckets when the orbits share both apsides; the seen
	// set keeps one manoeuvre pair per orbit pair.
	seen := make(map[[2]string]bool)
	for _, bucket := range results {
		for _, cand := range bucket {
			key := pairKey(cand.a, cand.b)
			if seen[key] {
				continue
			}
			seen[key] = true
			if _, err := Link(cand.kind, cand.a, cand.b, cand.radius); err != nil {
				return err
			}
		}
	}

	return nil
}

// evaluateBucket finds the first feasible kind for each orbit pair
// indexed under radius r. Reads orbit state only.
func (c *Collection) evaluateBucket(r float64) []candidate {
	orbits := c.apsis[r]
	var out []candidate
	for i := 0; i < len(orbits); i++ {
		for j := i + 1; j < len(orbits); j++ {
			for _, kind := range c.kinds {
				if Feasible(kind, orbits[i], orbits[j]) {
					out = append(out, candidate{kind: kind, a: orbits[i], b: orbits[j], radius: r})

					break
				}
			}
		}
	}

	return out
}

func pairKey(a, b *Orbit) [2]string {
	ka, kb := a.ID(), b.ID()
	if kb < ka {
		ka, kb = kb, ka
	}

	return [2]string{ka, kb}
}

// Graph exports the collection as a pathfind.Graph. Call it after
// ComputeManoeuvres; the graph shares the collection's orbits, so it
// must be treated as read-only while searches run.
func (c *Collection) Graph() *pathfind.Graph {
	g := pathfind.NewGraph()
	for _, id := range c.order {
		g.AddNode(c.orbits[id])
	}

	return g
}
