package pathfind

import (
	"container/heap"
	"fmt"
	"math"
)

// Search runs a best-first traversal from startID to goalID over g,
// ordered by the priorities supplied by strat.
//
// Validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. strat.EdgeCost and strat.Priority must be non-nil (ErrNilStrategy).
//  3. startID and goalID must exist in g (ErrNodeNotFound, wrapped with
//     the offending endpoint).
//
// The traversal settles each node at most once. When the goal is popped,
// the path is reconstructed by walking predecessor edges back to the
// start, and its weight is recomputed from true edge weights — strategy
// cost shifts never leak into the result. An exhausted frontier yields
// ErrNoPath; a negative or non-finite edge weight aborts the call with
// ErrMalformedWeight.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Search(g *Graph, startID, goalID string, strat Strategy, opts ...Option) (Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Path{}, ErrGraphNil
	}
	if strat.EdgeCost == nil || strat.Priority == nil {
		return Path{}, ErrNilStrategy
	}

	start, ok := g.Node(startID)
	if !ok {
		return Path{}, fmt.Errorf("%w: start %q", ErrNodeNotFound, startID)
	}
	goal, ok := g.Node(goalID)
	if !ok {
		return Path{}, fmt.Errorf("%w: goal %q", ErrNodeNotFound, goalID)
	}

	r := &runner{
		graph:   g,
		strat:   strat,
		options: cfg,
		goal:    goal,
		best:    make(map[string]float64, g.NodeCount()),
		via:     make(map[string]Edge, g.NodeCount()),
		settled: make(map[string]bool, g.NodeCount()),
	}

	if err := r.init(start); err != nil {
		return Path{}, err
	}

	return r.process(startID, goalID)
}

// runner holds the mutable state of a single Search call. All of it is
// created fresh per call and discarded on return; the graph itself is
// never written.
type runner struct {
	graph   *Graph
	strat   Strategy
	options Options
	goal    Node

	best    map[string]float64 // node ID → best-known search cost
	via     map[string]Edge    // node ID → edge the best cost arrived through
	settled map[string]bool    // node ID → cost finalized
	pq      frontier
	seq     uint64 // monotone push counter; FIFO among equal priorities
}

// init seeds the frontier with the start node at cost 0.
func (r *runner) init(start Node) error {
	heap.Init(&r.pq)

	pri, err := r.strat.Priority(start, r.goal, 0)
	if err != nil {
		return err
	}
	r.best[start.ID()] = 0
	r.push(&frontierEntry{cost: 0, priority: pri, node: start})

	return nil
}

// process pops frontier entries in priority order until the goal is
// settled or the frontier empties.
func (r *runner) process(startID, goalID string) (Path, error) {
	for r.pq.Len() > 0 {
		entry := heap.Pop(&r.pq).(*frontierEntry)
		id := entry.node.ID()

		// Stale entry: a cheaper cost for this node was already finalized
		// (lazy decrease-key — duplicates stay in the heap and are skipped
		// here, which realizes settle-once without an explicit decrease).
		if r.settled[id] {
			continue
		}
		r.settled[id] = true
		if r.options.OnSettle != nil {
			r.options.OnSettle(id, entry.cost)
		}

		if id == goalID {
			return r.reconstruct(startID, entry.node)
		}

		if err := r.relax(entry); err != nil {
			return Path{}, err
		}
	}

	return Path{}, fmt.Errorf("%w: %q → %q", ErrNoPath, startID, goalID)
}

// relax examines each outgoing edge of the popped entry's node and pushes
// every strict improvement onto the frontier.
func (r *runner) relax(entry *frontierEntry) error {
	var (
		w, cost, candidate, pri float64
		id                      string
		err                     error
	)
	for _, nb := range entry.node.Neighbors() {
		if nb.Edge == nil || nb.Node == nil {
			continue
		}
		w = nb.Edge.Weight()
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: edge %s→%s weight=%v",
				ErrMalformedWeight, entry.node.ID(), nb.Node.ID(), w)
		}

		cost = r.strat.EdgeCost(nb.Edge)
		candidate = entry.cost + cost
		if candidate > r.options.MaxCost {
			continue
		}

		id = nb.Node.ID()
		if r.settled[id] {
			continue
		}
		if known, ok := r.best[id]; ok && candidate >= known {
			continue
		}

		pri, err = r.strat.Priority(nb.Node, r.goal, candidate)
		if err != nil {
			return err
		}

		r.best[id] = candidate
		r.via[id] = nb.Edge
		r.push(&frontierEntry{cost: candidate, priority: pri, node: nb.Node, via: nb.Edge})
	}

	return nil
}

// reconstruct walks predecessor edges from the goal back to the start,
// reverses the sequence and sums the true edge weights.
func (r *runner) reconstruct(startID string, goal Node) (Path, error) {
	steps := []Step{{Node: goal, Via: r.via[goal.ID()]}}
	total := 0.0

	cur := goal.ID()
	for cur != startID {
		e := r.via[cur]
		total += e.Weight()
		prev := e.From()
		cur = prev.ID()
		steps = append(steps, Step{Node: prev, Via: r.via[cur]})
	}

	// Reverse into start → goal order.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return Path{Steps: steps, Weight: total}, nil
}

func (r *runner) push(e *frontierEntry) {
	e.seq = r.seq
	r.seq++
	heap.Push(&r.pq, e)
}

// frontierEntry is one tentative (cost, priority, node, predecessor edge)
// record awaiting expansion. Entries are ephemeral and owned solely by
// the running search.
type frontierEntry struct {
	cost     float64 // accumulated search cost (per strategy EdgeCost)
	priority float64 // frontier key (per strategy Priority)
	seq      uint64  // push order, breaks priority ties first-in-first-out
	node     Node
	via      Edge
}

// frontier is a min-heap of *frontierEntry ordered by priority, with
// push order as the tie-break so equal-priority entries pop in the
// sequence they were discovered.
type frontier []*frontierEntry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierEntry)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
