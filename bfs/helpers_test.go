package bfs_test

import (
	"math/rand"
	"strconv"
)

// graph is a small explicit adjacency list used to drive the engine through
// the state contract. Vertices are 0..len(adj)-1.
type graph struct {
	adj   [][]int
	goals map[int]bool
}

// node is one vertex of a graph, seen as a puzzle state.
type node struct {
	id int
	g  *graph
}

func (n node) IsGoal() bool { return n.g.goals[n.id] }

// Neighbors allocates fresh values on every call, like a real domain would.
func (n node) Neighbors() []node {
	out := make([]node, 0, len(n.g.adj[n.id]))
	for _, v := range n.g.adj[n.id] {
		out = append(out, node{id: v, g: n.g})
	}
	return out
}

func (n node) Key() string { return strconv.Itoa(n.id) }

// newGraph builds a directed graph from an edge list on n vertices.
func newGraph(n int, edges [][2]int, goals ...int) *graph {
	g := &graph{adj: make([][]int, n), goals: make(map[int]bool, len(goals))}
	for _, e := range edges {
		g.adj[e[0]] = append(g.adj[e[0]], e[1])
	}
	for _, v := range goals {
		g.goals[v] = true
	}
	return g
}

func (g *graph) at(id int) node { return node{id: id, g: g} }

// randomGraph builds a directed graph with the given edge probability and
// a random goal set, reproducibly from seed.
func randomGraph(seed int64, n int, p float64, goalCount int) *graph {
	r := rand.New(rand.NewSource(seed))
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && r.Float64() < p {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	goals := make([]int, 0, goalCount)
	for i := 0; i < goalCount; i++ {
		goals = append(goals, r.Intn(n))
	}
	return newGraph(n, edges, goals...)
}

// bruteDistance relaxes every edge |V| times (Bellman-Ford with unit costs)
// and returns the smallest distance from src to any goal, or -1.
func bruteDistance(g *graph, src int) int {
	const inf = 1 << 30
	n := len(g.adj)
	dist := make([]int, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[src] = 0
	for round := 0; round < n; round++ {
		changed := false
		for u := 0; u < n; u++ {
			if dist[u] == inf {
				continue
			}
			for _, v := range g.adj[u] {
				if dist[u]+1 < dist[v] {
					dist[v] = dist[u] + 1
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	best := -1
	for v := range g.goals {
		if dist[v] != inf && (best == -1 || dist[v] < best) {
			best = dist[v]
		}
	}
	return best
}

// hasEdge reports whether u→v is an edge of g.
func (g *graph) hasEdge(u, v int) bool {
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}
	return false
}

// line is an unbounded integer line: every n has neighbours n+1 and n-1.
type line struct {
	pos, goal int
}

func (l line) IsGoal() bool { return l.pos == l.goal }

func (l line) Neighbors() []line {
	return []line{{pos: l.pos + 1, goal: l.goal}, {pos: l.pos - 1, goal: l.goal}}
}

func (l line) Key() string { return strconv.Itoa(l.pos) }
