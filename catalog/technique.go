package catalog

import (
	"fmt"
	"strings"

	"github.com/zero-day-ai/chainsim/promise"
)

// ShadowPrefix marks a technique id as a shadow technique. Shadow
// techniques fire like any other but never appear in rendered technique
// lists.
const ShadowPrefix = "_"

// Technique is one entry in the catalog: an attacker action with
// preconditions and effects. All fields other than ID and Name are
// optional and default to empty collections.
type Technique struct {
	// ID is the unique technique identifier. It is derived from the
	// catalog map key at load time and never serialized inline.
	ID string `json:"-" yaml:"-"`

	// Name is the human-readable technique name used in reports.
	Name string `json:"name" yaml:"name"`

	// Tactics are free-form labels (e.g. "defense_evasion") used only
	// for reporting and NOP filtering, never by the chaining algorithm.
	Tactics []string `json:"tactic,omitempty" yaml:"tactic,omitempty"`

	// Requires are the promises that must all be true before the
	// technique can fire. An empty list is vacuously satisfied.
	Requires []promise.Promise `json:"requires,omitempty" yaml:"requires,omitempty"`

	// Provides are the promises granted once the technique fires.
	Provides []promise.Promise `json:"provides,omitempty" yaml:"provides,omitempty"`
}

// IsShadow returns true if the technique models an environment-driven
// condition change rather than an attacker action.
func (t Technique) IsShadow() bool {
	return strings.HasPrefix(t.ID, ShadowPrefix)
}

// RequiresMet returns true if every required promise is present in the
// pool. A technique with no requirements is always ready.
func (t Technique) RequiresMet(pool promise.Set) bool {
	return pool.ContainsAll(t.Requires)
}

// ProvidesRedundant returns true if everything the technique provides is
// already present in the pool, i.e. firing it grants nothing new.
func (t Technique) ProvidesRedundant(pool promise.Set) bool {
	return pool.ContainsAll(t.Provides)
}

// HasTactic returns true if the technique carries the given tactic label.
func (t Technique) HasTactic(tactic string) bool {
	for _, label := range t.Tactics {
		if label == tactic {
			return true
		}
	}
	return false
}

// Validate checks that the technique record is usable by the engine.
func (t Technique) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("technique id is empty")
	}
	if t.Name == "" {
		return fmt.Errorf("technique %q: name is required", t.ID)
	}
	return nil
}

// normalize fills nil collections so downstream code never needs to
// distinguish absent from empty.
func (t *Technique) normalize() {
	if t.Tactics == nil {
		t.Tactics = []string{}
	}
	if t.Requires == nil {
		t.Requires = []promise.Promise{}
	}
	if t.Provides == nil {
		t.Provides = []promise.Promise{}
	}
}
