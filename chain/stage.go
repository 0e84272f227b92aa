package chain

import "github.com/zero-day-ai/chainsim/promise"

// Stage records one round of the forward-chaining fixpoint.
type Stage struct {
	// Index is the 1-based position of the stage in the simulation.
	Index int `json:"stage"`

	// Techniques are the ids of the techniques that fired during this
	// stage, in bundle order. Every one of them had all requirements
	// covered by PreConditions and had not fired in an earlier stage.
	Techniques []string `json:"techniques"`

	// PreConditions is the condition pool as it stood before the stage:
	// the sum of everything provided by earlier stages and the initial
	// conditions.
	PreConditions promise.Set `json:"last_stage_sum_provides"`

	// NewProvides are the promises this stage added to the pool. It may
	// be empty: techniques can fire while providing nothing new.
	NewProvides promise.Set `json:"new_provides"`
}

// Simulation is the engine's result: the ordered stage sequence plus the
// summary of where the attack chain ended up.
type Simulation struct {
	// Stages is the ordered fixpoint trace. Empty when nothing could fire.
	Stages []Stage `json:"stages"`

	// Provided is the final condition pool after the last stage,
	// including seeds and system conditions.
	Provided promise.Set `json:"provided"`

	// Objectives is the subset of Provided whose promises are goal
	// conditions. Objectives present via seeds alone count as reached.
	Objectives promise.Set `json:"objectives"`
}

// Reached returns true if the given end condition is present in the
// final condition pool.
func (s *Simulation) Reached(end promise.Promise) bool {
	return s.Provided.Contains(end)
}

// Fired returns the ids of every technique that fired across all stages,
// in firing order.
func (s *Simulation) Fired() []string {
	var out []string
	for _, stage := range s.Stages {
		out = append(out, stage.Techniques...)
	}
	return out
}
