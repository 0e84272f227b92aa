package catalog

import "sort"

// NOPs returns the ids of techniques that cannot meaningfully change a
// simulation outcome and should be stripped from a bundle before
// simulating.
//
// A technique is a NOP when it provides nothing and carries one of the
// given tactic labels (classically "defense_evasion"). With
// emptyProvidesOnly set, an empty provides list is the sole criterion and
// tactics are ignored.
func NOPs(c Catalog, tactics []string, emptyProvidesOnly bool) map[string]struct{} {
	tacticSet := make(map[string]struct{}, len(tactics))
	for _, tac := range tactics {
		tacticSet[tac] = struct{}{}
	}

	nops := make(map[string]struct{})
	for id, t := range c {
		if len(t.Provides) > 0 {
			continue
		}
		if emptyProvidesOnly {
			nops[id] = struct{}{}
			continue
		}
		for _, tac := range t.Tactics {
			if _, ok := tacticSet[tac]; ok {
				nops[id] = struct{}{}
				break
			}
		}
	}
	return nops
}

// StripNOPs removes NOP techniques from a technique id list, returning
// the filtered list and the removed ids in sorted order.
func StripNOPs(ids []string, nops map[string]struct{}) (kept []string, removed []string) {
	kept = make([]string, 0, len(ids))
	for _, id := range ids {
		if _, nop := nops[id]; nop {
			removed = append(removed, id)
			continue
		}
		kept = append(kept, id)
	}
	sort.Strings(removed)
	return kept, removed
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
