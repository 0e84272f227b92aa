package catalog

import (
	"testing"

	"github.com/zero-day-ai/chainsim/promise"
)

func TestTechnique_IsShadow(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"shadow id", "_system_weakness", true},
		{"ordinary id", "spearphishing", false},
		{"underscore inside id", "lateral_movement", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tech := Technique{ID: tt.id, Name: "n"}
			if got := tech.IsShadow(); got != tt.want {
				t.Errorf("IsShadow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTechnique_RequiresMet(t *testing.T) {
	pool := promise.NewSet("a", "b")

	tests := []struct {
		name     string
		requires []promise.Promise
		want     bool
	}{
		{"all requirements in pool", []promise.Promise{"a"}, true},
		{"requirement missing", []promise.Promise{"a", "c"}, false},
		{"no requirements is vacuously met", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tech := Technique{ID: "t", Name: "t", Requires: tt.requires}
			if got := tech.RequiresMet(pool); got != tt.want {
				t.Errorf("RequiresMet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTechnique_ProvidesRedundant(t *testing.T) {
	pool := promise.NewSet("a", "b")

	redundant := Technique{ID: "t1", Name: "t1", Provides: []promise.Promise{"a", "b"}}
	if !redundant.ProvidesRedundant(pool) {
		t.Error("ProvidesRedundant() = false for fully covered provides")
	}

	fresh := Technique{ID: "t2", Name: "t2", Provides: []promise.Promise{"a", "c"}}
	if fresh.ProvidesRedundant(pool) {
		t.Error("ProvidesRedundant() = true although c is new")
	}

	// Nothing provided means nothing new by definition.
	empty := Technique{ID: "t3", Name: "t3"}
	if !empty.ProvidesRedundant(pool) {
		t.Error("ProvidesRedundant() = false for empty provides")
	}
}

func TestTechnique_HasTactic(t *testing.T) {
	tech := Technique{ID: "t", Name: "t", Tactics: []string{"defense_evasion", "execution"}}

	if !tech.HasTactic("execution") {
		t.Error("HasTactic(execution) = false, want true")
	}
	if tech.HasTactic("persistence") {
		t.Error("HasTactic(persistence) = true, want false")
	}
}

func TestTechnique_Validate(t *testing.T) {
	if err := (Technique{ID: "t", Name: "Spearphishing"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v for valid technique", err)
	}
	if err := (Technique{Name: "x"}).Validate(); err == nil {
		t.Error("Validate() = nil for missing id")
	}
	if err := (Technique{ID: "t"}).Validate(); err == nil {
		t.Error("Validate() = nil for missing name")
	}
}
