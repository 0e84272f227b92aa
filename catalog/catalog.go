package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownTechnique indicates a bundle references a technique id that
// is absent from the catalog. This is a configuration error: the
// bundle/catalog pairing is corrupt and the run must abort.
var ErrUnknownTechnique = errors.New("technique not found in catalog")

// Catalog is a read-only mapping from technique id to its record.
type Catalog map[string]Technique

// Get returns the technique for the given id.
func (c Catalog) Get(id string) (Technique, bool) {
	t, ok := c[id]
	return t, ok
}

// IDs returns all technique ids in lexicographic order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks that every technique id in the given list resolves
// against the catalog. All unknown ids are reported at once.
func (c Catalog) Validate(ids []string) error {
	var missing []string
	for _, id := range ids {
		if _, ok := c[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrUnknownTechnique, strings.Join(missing, ", "))
	}
	return nil
}

// validate checks every record in the catalog. Called once at load time.
func (c Catalog) validate() error {
	for id, t := range c {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("catalog entry %q: %w", id, err)
		}
	}
	return nil
}
