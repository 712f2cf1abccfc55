// Package state defines the capability contract every puzzle configuration
// must satisfy to be searched by package bfs.
//
// What
//
//   - A State is one immutable configuration of a puzzle.
//   - IsGoal reports whether the configuration solves the puzzle.
//   - Neighbors enumerates every configuration reachable by exactly one legal
//     transition. Each call returns fresh values; the receiver is never mutated.
//   - Key is the canonical identity of the configuration. Two states are equal
//     iff their keys are equal; the key's map hash is the state's hash, so
//     equality and hashing can never disagree.
//
// Preconditions
//
// The engine trusts, and does not verify, that Neighbors terminates, that the
// reachable space from a start is finite (or contains a goal), and that Key is
// deterministic. A collaborator that breaks these rules causes non-termination
// or wrong deduplication, not an error.
//
// The type parameter S is the concrete state type itself, so a domain writes:
//
//	type Config struct{ ... }
//	func (c Config) IsGoal() bool         { ... }
//	func (c Config) Neighbors() []Config  { ... }
//	func (c Config) Key() string          { ... }
//
// and Config satisfies State[Config].
package state

// State is the contract consumed by the search engine.
type State[S any] interface {
	// IsGoal reports whether this configuration satisfies the search target.
	IsGoal() bool

	// Neighbors returns all configurations one legal transition away.
	// The slice order is the order the engine discovers them in.
	Neighbors() []S

	// Key returns the canonical encoding used for equality and hashing.
	Key() string
}

// Equal reports whether a and b denote the same configuration.
func Equal[S State[S]](a, b S) bool {
	return a.Key() == b.Key()
}
