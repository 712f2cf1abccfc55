// Package puzzlesolver is a generic shortest-solution engine for puzzles
// whose configurations form an implicit graph, plus four puzzles built on it.
//
// 🚀 What is puzzlesolver?
//
//	A small library and command that bring together:
//		• A state contract: IsGoal, Neighbors, Key
//		• Breadth-first search with duplicate detection, hooks and limits
//		• An immutable rune grid shared by the board puzzles
//		• Puzzles: clock, dice, hoppers, astro
//
// ✨ Why puzzlesolver?
//
//   - Any type that can list its successors can be solved
//   - Shortest solutions, first-discovered predecessor wins
//   - No global state: concurrent searches never interfere
//   - Hooks (OnEnqueue, OnDequeue, OnVisit) for progress and tracing
//
// Packages:
//
//	state/           — the State[S] contract every puzzle implements
//	bfs/             — Solve and Hint, options, counters
//	board/           — immutable rows×cols grid, directions, file parsing
//	puzzles/clock/   — turn an N-hour clock to a goal hour
//	puzzles/dice/    — roll a row of dice to a goal face string
//	puzzles/hoppers/ — jump frogs until no green frog remains
//	puzzles/astro/   — slide robots so the astronaut stops on the goal
//	cmd/puzzles/     — command-line solver, single puzzles or YAML batches
//
// Quick example:
//
//	start, _ := clock.New(12, 6, 12)
//	res, _ := bfs.Solve(start)
//	fmt.Println(res.Steps()) // 6
//
//	go install github.com/katalvlaran/puzzlesolver/cmd/puzzles@latest
package puzzlesolver
