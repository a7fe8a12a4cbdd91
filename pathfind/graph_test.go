package pathfind_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/orbipath/pathfind"
)

func TestGraph_AddAndLookup(t *testing.T) {
	a, b := &site{id: "A"}, &site{id: "B"}
	g := pathfind.NewGraph(a, b)

	if g.NodeCount() != 2 {
		t.Fatalf("expected 2 nodes, got %d", g.NodeCount())
	}
	if !g.HasNode("A") || !g.HasNode("B") {
		t.Fatalf("expected both nodes present")
	}
	if g.HasNode("C") {
		t.Fatalf("did not expect node C")
	}
	got, ok := g.Node("A")
	if !ok || got != pathfind.Node(a) {
		t.Fatalf("lookup of A returned %v, %v", got, ok)
	}
}

func TestGraph_AddNodeReplacesSameID(t *testing.T) {
	first, second := &site{id: "A"}, &site{id: "A"}
	g := pathfind.NewGraph(first)
	g.AddNode(second)

	if g.NodeCount() != 1 {
		t.Fatalf("expected 1 node after duplicate add, got %d", g.NodeCount())
	}
	got, _ := g.Node("A")
	if got != pathfind.Node(second) {
		t.Fatalf("expected latest node to win")
	}
}

func TestGraph_IgnoresNilNode(t *testing.T) {
	g := pathfind.NewGraph()
	g.AddNode(nil)
	if g.NodeCount() != 0 {
		t.Fatalf("nil node must be ignored")
	}
}

func TestGraph_NodeIDsSorted(t *testing.T) {
	g := pathfind.NewGraph(&site{id: "C"}, &site{id: "A"}, &site{id: "B"})
	if got := g.NodeIDs(); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("expected sorted IDs, got %v", got)
	}
}
