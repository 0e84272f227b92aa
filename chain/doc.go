// Package chain implements the staged forward-chaining simulation engine.
//
// Given a technique catalog, the technique bundle of one threat actor,
// and a set of conditions assumed true before the run, Simulate computes
// the ordered sequence of stages at which previously blocked techniques
// become executable. Each stage fires every not-yet-fired technique whose
// requirements are covered by the condition pool as it stood before the
// stage, then folds the fired techniques' effects into the pool. The loop
// ends when no further technique can fire.
//
// The engine is pure: it performs no I/O, never mutates its inputs, and
// is deterministic — identical inputs yield identical stage sequences.
// Termination is guaranteed because a technique fires at most once, so
// the stage count is bounded by the bundle size.
package chain
