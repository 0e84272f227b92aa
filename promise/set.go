package promise

import (
	"encoding/json"
	"sort"
)

// Set is an unordered collection of promises. The zero value is not
// usable; construct sets with NewSet.
type Set map[Promise]struct{}

// NewSet creates a set containing the given promises.
func NewSet(promises ...Promise) Set {
	s := make(Set, len(promises))
	for _, p := range promises {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts a promise into the set.
func (s Set) Add(p Promise) {
	s[p] = struct{}{}
}

// Contains returns true if the promise is in the set.
func (s Set) Contains(p Promise) bool {
	_, ok := s[p]
	return ok
}

// ContainsAll returns true if every given promise is in the set.
// Vacuously true for an empty argument list.
func (s Set) ContainsAll(promises []Promise) bool {
	for _, p := range promises {
		if !s.Contains(p) {
			return false
		}
	}
	return true
}

// Union returns a new set with the members of both sets.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for p := range s {
		out[p] = struct{}{}
	}
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// Diff returns a new set with the members of s not present in other.
func (s Set) Diff(other Set) Set {
	out := make(Set)
	for p := range s {
		if !other.Contains(p) {
			out[p] = struct{}{}
		}
	}
	return out
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}

// Len returns the number of promises in the set.
func (s Set) Len() int {
	return len(s)
}

// Equal returns true if both sets contain exactly the same promises.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Sorted returns the members of the set in lexicographic order.
// This is the only ordered view of a set; anything rendered or serialized
// goes through it so repeated runs produce identical output.
func (s Set) Sorted() []Promise {
	out := make([]Promise, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Objectives returns a new set holding only the objective promises in s.
func (s Set) Objectives() Set {
	out := make(Set)
	for p := range s {
		if p.IsObjective() {
			out[p] = struct{}{}
		}
	}
	return out
}

// MarshalJSON encodes the set as a sorted JSON array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array into the set.
func (s *Set) UnmarshalJSON(data []byte) error {
	var promises []Promise
	if err := json.Unmarshal(data, &promises); err != nil {
		return err
	}
	*s = NewSet(promises...)
	return nil
}
