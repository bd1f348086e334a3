package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/path"
)

// ExampleDijkstra routes across a small road network and reconstructs the
// cheapest route from depot 0 to destination 3.
func ExampleDijkstra() {
	// 0 ──4── 1 ──1── 3 ──3── 4
	//  ╲1    ╱2      ╱5
	//    ── 2 ──────
	g := core.New(5)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 2)
	_ = g.AddEdge(1, 3, 1)
	_ = g.AddEdge(2, 3, 5)
	_ = g.AddEdge(3, 4, 3)

	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	route, err := path.Reconstruct(res, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("dist:", res.Dist[3])
	fmt.Println("route:", route)
	// Output:
	// dist: 4
	// route: [0 2 1 3]
}

// ExampleDijkstra_withValidateWeights shows the fail-fast pre-scan rejecting
// a graph that holds a negative edge.
func ExampleDijkstra_withValidateWeights() {
	g := core.New(2)
	_ = g.AddEdge(0, 1, -7)

	_, err := dijkstra.Dijkstra(g, 0, dijkstra.WithValidateWeights())
	fmt.Println(err != nil)
	// Output:
	// true
}
