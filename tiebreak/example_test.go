package tiebreak_test

import (
	"fmt"

	"github.com/katalvlaran/orbipath/pathfind"
	"github.com/katalvlaran/orbipath/tiebreak"
)

// ExampleShortestPath shows the fewer-edges preference: the direct edge
// and the two-hop detour both weigh 10, so the single edge wins, and the
// penalty never shows up in the reported weight.
func ExampleShortestPath() {
	a, m, z := &site{id: "A"}, &site{id: "M"}, &site{id: "Z"}
	link(a, m, 5)
	link(m, z, 5)
	link(a, z, 10)
	g := pathfind.NewGraph(a, m, z)

	path, err := tiebreak.ShortestPath(g, "A", "Z", 0.001)
	if err != nil {
		fmt.Println("search failed:", err)
		return
	}
	fmt.Printf("%d edge(s), weight %.0f\n", path.Hops(), path.Weight)
	// Output:
	// 1 edge(s), weight 10
}
