package chain

import (
	"fmt"

	"github.com/zero-day-ai/chainsim/catalog"
	"github.com/zero-day-ai/chainsim/promise"
)

// Simulate runs the staged forward-chaining fixpoint.
//
// The condition pool starts as the union of seeds and systemConditions.
// Each iteration collects every bundle technique that has not fired yet
// and whose requirements are covered by the pool, records a stage, and
// grows the pool by the techniques' provides. Iteration stops when no
// candidate remains.
//
// A bundle id absent from the catalog is a configuration error: Simulate
// fails outright and returns no partial result. Inputs are never mutated.
func Simulate(seeds []promise.Promise, bundle []string, cat catalog.Catalog, systemConditions []promise.Promise) (*Simulation, error) {
	if err := cat.Validate(bundle); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	pool := promise.NewSet(seeds...).Union(promise.NewSet(systemConditions...))
	fired := make(map[string]struct{}, len(bundle))
	var stages []Stage

	for {
		var candidates []string
		for _, id := range bundle {
			if _, done := fired[id]; done {
				continue
			}
			tech, _ := cat.Get(id)
			if tech.RequiresMet(pool) {
				candidates = append(candidates, id)
				// Duplicate bundle entries must not fire twice within
				// the same stage either.
				fired[id] = struct{}{}
			}
		}
		if len(candidates) == 0 {
			break
		}

		newProvides := promise.NewSet()
		for _, id := range candidates {
			tech, _ := cat.Get(id)
			for _, p := range tech.Provides {
				if !pool.Contains(p) {
					newProvides.Add(p)
				}
			}
		}

		stages = append(stages, Stage{
			Index:         len(stages) + 1,
			Techniques:    candidates,
			PreConditions: pool.Clone(),
			NewProvides:   newProvides,
		})

		pool = pool.Union(newProvides)
	}

	return &Simulation{
		Stages:     stages,
		Provided:   pool,
		Objectives: pool.Objectives(),
	}, nil
}
