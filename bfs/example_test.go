package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlesolver/bfs"
)

// ExampleSolve finds the fewest-hop route in a small network of 11 states.
// Two competing routes exist from 0 to 10: one of length 4, another length 3.
func ExampleSolve() {
	g := newGraph(11, [][2]int{
		// Route1: 0–1–2–3–10 (4 hops)
		{0, 1}, {1, 2}, {2, 3}, {3, 10},
		// Route2: 0–4–5–10 (3 hops)
		{0, 4}, {4, 5}, {5, 10},
		// Some extra branches
		{2, 6}, {6, 7}, {3, 8}, {8, 9},
	}, 10)

	res, err := bfs.Solve(g.at(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !res.Found {
		fmt.Println("No solution")
		return
	}
	fmt.Println(ids(res.Path), res.Steps())
	// Output:
	// [0 4 5 10] 3
}

// ExampleSolve_unbounded searches an infinite integer line; only the part
// of the space closer than the goal is ever generated.
func ExampleSolve_unbounded() {
	res, _ := bfs.Solve(line{pos: 0, goal: 3})

	positions := make([]int, 0, len(res.Path))
	for _, s := range res.Path {
		positions = append(positions, s.pos)
	}
	fmt.Println("path:", positions)
	fmt.Println("expanded:", res.Expanded, "generated:", res.Generated, "unique:", res.Unique)
	// Output:
	// path: [0 1 2 3]
	// expanded: 6 generated: 11 unique: 7
}

// ExampleHint shows the single next step a front end would display.
func ExampleHint() {
	g := newGraph(5, [][2]int{{0, 1}, {1, 2}, {0, 3}, {3, 4}, {4, 2}}, 2)

	next, ok, err := bfs.Hint(g.at(0))
	if err != nil || !ok {
		fmt.Println("No solution")
		return
	}
	fmt.Println("move to", next.id)
	// Output:
	// move to 1
}
