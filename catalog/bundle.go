package catalog

// Bundle is the set of techniques attributed to one threat actor,
// optionally extended with techniques inherited from the tools the actor
// is known to use.
type Bundle struct {
	// Name identifies the threat actor the bundle belongs to.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Techniques are the technique ids directly attributed to the actor,
	// in file order. Duplicates are tolerated; the engine fires each
	// technique at most once.
	Techniques []string `json:"techniques" yaml:"techniques"`

	// Tools maps a tool name to the technique ids the tool contributes.
	// Tool techniques only enter the simulation when explicitly merged
	// via TechniqueIDs(true).
	Tools map[string][]string `json:"tools,omitempty" yaml:"tools,omitempty"`
}

// TechniqueIDs returns the technique ids of the bundle, deduplicated with
// first occurrence preserved. With includeTools set, techniques inherited
// from tools are appended in sorted tool order so repeated runs see the
// same sequence.
func (b Bundle) TechniqueIDs(includeTools bool) []string {
	seen := make(map[string]struct{}, len(b.Techniques))
	out := make([]string, 0, len(b.Techniques))

	add := func(id string) {
		if id == "" {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, id := range b.Techniques {
		add(id)
	}

	if includeTools {
		for _, tool := range sortedKeys(b.Tools) {
			for _, id := range b.Tools[tool] {
				add(id)
			}
		}
	}

	return out
}

// Include appends the given technique ids to the list, skipping ids
// already present.
func Include(ids []string, include []string) []string {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	out := ids
	for _, id := range include {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Exclude removes the given technique ids from the list. Exclusions that
// were not present are returned so the caller can warn about them; the
// remaining list is unaffected by them.
func Exclude(ids []string, exclude []string) (remaining []string, missing []string) {
	drop := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		drop[id] = struct{}{}
	}

	remaining = make([]string, 0, len(ids))
	found := make(map[string]struct{})
	for _, id := range ids {
		if _, ok := drop[id]; ok {
			found[id] = struct{}{}
			continue
		}
		remaining = append(remaining, id)
	}

	for _, id := range exclude {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return remaining, missing
}
