package pathfind

// Step is one entry of a reconstructed path: the node reached and the
// edge it was reached through. Via is nil for the start node.
type Step struct {
	Node Node
	Via  Edge
}

// Path is the result of a successful search: the ordered steps from
// start to goal inclusive, and the total weight summed strictly from
// true edge weights. Search-time penalties (tiebreak's ε) never appear
// in Weight.
type Path struct {
	Steps  []Step
	Weight float64
}

// Hops returns the number of edges on the path.
func (p Path) Hops() int {
	if len(p.Steps) == 0 {
		return 0
	}

	return len(p.Steps) - 1
}

// Start returns the first node on the path, or nil for an empty path.
func (p Path) Start() Node {
	if len(p.Steps) == 0 {
		return nil
	}

	return p.Steps[0].Node
}

// Goal returns the last node on the path, or nil for an empty path.
func (p Path) Goal() Node {
	if len(p.Steps) == 0 {
		return nil
	}

	return p.Steps[len(p.Steps)-1].Node
}
