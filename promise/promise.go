package promise

import "strings"

// ObjectivePrefix marks a promise as an objective: a goal condition whose
// achievement represents a desired outcome for the attacker.
const ObjectivePrefix = "objective_"

// Promise is an atomic fact token in the simulated world. A promise is
// either true (present in a condition pool) or unknown; there is no
// negation.
type Promise string

// String returns the string representation of the promise.
func (p Promise) String() string {
	return string(p)
}

// IsObjective returns true if the promise is a goal condition.
func (p Promise) IsObjective() bool {
	return strings.HasPrefix(string(p), ObjectivePrefix)
}

// FromStrings converts a slice of raw identifiers to promises.
// Empty identifiers are dropped.
func FromStrings(ids []string) []Promise {
	out := make([]Promise, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		out = append(out, Promise(id))
	}
	return out
}
