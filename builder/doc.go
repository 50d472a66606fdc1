// Package builder assembles deterministic graph fixtures for tests, demos,
// and benchmarks.
//
// What
//
//	Topology factories (Path, Cycle, Complete, RandomSparse) return
//	Constructor closures that BuildGraph applies in order to a fresh
//	core.Graph. RandomGeometric stands alone because it also returns node
//	coordinates for heuristic-driven searches.
//
// Determinism
//
//	Same options, seed, and constructor order produce an identical graph:
//	node IDs come from a pure IDFn, edges are emitted in a documented stable
//	order, and all randomness flows through one seeded *rand.Rand. This
//	matters because adjacency insertion order is the tie-breaker for every
//	search over the result.
//
// Error policy
//
//	Constructors validate early and return sentinel errors (ErrTooFewNodes,
//	ErrInvalidProbability, ErrNeedRandSource, ...); they never panic.
//	Validation panics are confined to option constructors (WithX), where a
//	bad argument is a programmer error.
//
// Usage
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Path(4),
//	    builder.RandomSparse(4, 0.3),
//	)
package builder
