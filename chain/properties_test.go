package chain

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/zero-day-ai/chainsim/catalog"
	"github.com/zero-day-ai/chainsim/promise"
)

// chainedCatalog builds n techniques where each one requires the promise
// provided by its predecessor, forcing one stage per technique.
func chainedCatalog(n int) (catalog.Catalog, []string) {
	cat := make(catalog.Catalog, n)
	bundle := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("T%d", i)
		var requires []promise.Promise
		if i > 0 {
			requires = []promise.Promise{promise.Promise(fmt.Sprintf("p%d", i-1))}
		}
		cat[id] = catalog.Technique{
			ID:       id,
			Name:     id,
			Requires: requires,
			Provides: []promise.Promise{promise.Promise(fmt.Sprintf("p%d", i))},
		}
		bundle = append(bundle, id)
	}
	return cat, bundle
}

func TestSimulate_PoolIsMonotonic(t *testing.T) {
	cat, bundle := chainedCatalog(6)

	sim, err := Simulate(nil, bundle, cat, []promise.Promise{"ambient"})
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	for i := 1; i < len(sim.Stages); i++ {
		prev := sim.Stages[i-1].PreConditions
		cur := sim.Stages[i].PreConditions
		for _, p := range prev.Sorted() {
			if !cur.Contains(p) {
				t.Fatalf("promise %q retracted between stage %d and %d", p, i, i+1)
			}
		}
	}
	last := sim.Stages[len(sim.Stages)-1]
	for _, p := range last.PreConditions.Sorted() {
		if !sim.Provided.Contains(p) {
			t.Fatalf("promise %q missing from final pool", p)
		}
	}
}

func TestSimulate_NoTechniqueFiresTwice(t *testing.T) {
	cat, bundle := chainedCatalog(6)

	sim, err := Simulate(nil, bundle, cat, nil)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	seen := make(map[string]int)
	for _, stage := range sim.Stages {
		for _, id := range stage.Techniques {
			seen[id]++
		}
	}
	for id, count := range seen {
		if count > 1 {
			t.Errorf("technique %s fired %d times", id, count)
		}
	}
}

func TestSimulate_StageCountBoundedByBundleSize(t *testing.T) {
	cat, bundle := chainedCatalog(10)

	sim, err := Simulate(nil, bundle, cat, nil)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	if len(sim.Stages) > len(bundle) {
		t.Errorf("stages = %d exceeds bundle size %d", len(sim.Stages), len(bundle))
	}
	// The chained shape forces exactly one stage per technique.
	if len(sim.Stages) != len(bundle) {
		t.Errorf("stages = %d, want %d for a strict chain", len(sim.Stages), len(bundle))
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	cat, bundle := chainedCatalog(8)
	seeds := []promise.Promise{"seed"}
	system := []promise.Promise{"sys"}

	first, err := Simulate(seeds, bundle, cat, system)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	for run := 0; run < 5; run++ {
		again, err := Simulate(seeds, bundle, cat, system)
		if err != nil {
			t.Fatalf("Simulate() error = %v", err)
		}
		if len(again.Stages) != len(first.Stages) {
			t.Fatalf("stage count varies: %d vs %d", len(again.Stages), len(first.Stages))
		}
		for i := range first.Stages {
			if !reflect.DeepEqual(again.Stages[i].Techniques, first.Stages[i].Techniques) {
				t.Fatalf("stage %d fired set varies: %v vs %v",
					i+1, again.Stages[i].Techniques, first.Stages[i].Techniques)
			}
			if !reflect.DeepEqual(again.Stages[i].NewProvides.Sorted(), first.Stages[i].NewProvides.Sorted()) {
				t.Fatalf("stage %d new provides vary", i+1)
			}
		}
	}
}

func TestSimulate_VacuousRequirementFiresInStageOne(t *testing.T) {
	cat := catalog.Catalog{
		"free": {ID: "free", Name: "free", Provides: []promise.Promise{"a"}},
		"late": {ID: "late", Name: "late", Requires: []promise.Promise{"a"}},
	}

	sim, err := Simulate(nil, []string{"late", "free"}, cat, nil)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	if len(sim.Stages) == 0 {
		t.Fatal("no stages produced")
	}
	if !reflect.DeepEqual(sim.Stages[0].Techniques, []string{"free"}) {
		t.Errorf("stage 1 techniques = %v, want [free]", sim.Stages[0].Techniques)
	}
}

func TestSimulate_RerunWithFinalPoolIsFixpoint(t *testing.T) {
	cat, bundle := chainedCatalog(5)

	first, err := Simulate(nil, bundle, cat, nil)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	// Seeding a fresh bundle-less run with the final pool adds nothing.
	again, err := Simulate(first.Provided.Sorted(), nil, cat, nil)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if len(again.Stages) != 0 {
		t.Errorf("re-run stages = %d, want 0", len(again.Stages))
	}
	if !again.Provided.Equal(first.Provided) {
		t.Errorf("re-run pool = %v, want %v", again.Provided.Sorted(), first.Provided.Sorted())
	}
}
