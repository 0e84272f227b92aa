package catalog

import (
	"errors"
	"strings"
	"testing"
)

func testCatalog() Catalog {
	return Catalog{
		"t1": {ID: "t1", Name: "Initial Access"},
		"t2": {ID: "t2", Name: "Privilege Escalation"},
	}
}

func TestCatalog_Get(t *testing.T) {
	c := testCatalog()

	tech, ok := c.Get("t1")
	if !ok {
		t.Fatal("Get(t1) not found")
	}
	if tech.Name != "Initial Access" {
		t.Errorf("Get(t1).Name = %q", tech.Name)
	}

	if _, ok := c.Get("nope"); ok {
		t.Error("Get(nope) found, want missing")
	}
}

func TestCatalog_IDs(t *testing.T) {
	ids := testCatalog().IDs()
	if len(ids) != 2 || ids[0] != "t1" || ids[1] != "t2" {
		t.Errorf("IDs() = %v, want [t1 t2]", ids)
	}
}

func TestCatalog_Validate(t *testing.T) {
	c := testCatalog()

	if err := c.Validate([]string{"t1", "t2"}); err != nil {
		t.Errorf("Validate() error = %v for known ids", err)
	}

	err := c.Validate([]string{"t1", "ghost2", "ghost1"})
	if err == nil {
		t.Fatal("Validate() = nil for unknown ids")
	}
	if !errors.Is(err, ErrUnknownTechnique) {
		t.Errorf("Validate() error = %v, want ErrUnknownTechnique", err)
	}
	// All unknown ids reported at once, sorted.
	if !strings.Contains(err.Error(), "ghost1, ghost2") {
		t.Errorf("Validate() error = %v, want both unknown ids listed", err)
	}
}
