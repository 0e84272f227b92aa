package catalog

import (
	"reflect"
	"testing"
)

func TestBundle_TechniqueIDs(t *testing.T) {
	b := Bundle{
		Name:       "apt-example",
		Techniques: []string{"t1", "t2", "t1"},
		Tools: map[string][]string{
			"zmap":     {"t4"},
			"mimikatz": {"t3", "t2"},
		},
	}

	tests := []struct {
		name         string
		includeTools bool
		want         []string
	}{
		{
			name:         "duplicates collapse, first occurrence wins",
			includeTools: false,
			want:         []string{"t1", "t2"},
		},
		{
			name:         "tool techniques appended in sorted tool order",
			includeTools: true,
			want:         []string{"t1", "t2", "t3", "t4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.TechniqueIDs(tt.includeTools)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TechniqueIDs(%v) = %v, want %v", tt.includeTools, got, tt.want)
			}
		})
	}
}

func TestInclude(t *testing.T) {
	got := Include([]string{"t1", "t2"}, []string{"t2", "t3"})
	want := []string{"t1", "t2", "t3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Include() = %v, want %v", got, want)
	}
}

func TestExclude(t *testing.T) {
	remaining, missing := Exclude([]string{"t1", "t2", "t3"}, []string{"t2", "ghost"})

	if !reflect.DeepEqual(remaining, []string{"t1", "t3"}) {
		t.Errorf("Exclude() remaining = %v, want [t1 t3]", remaining)
	}
	if !reflect.DeepEqual(missing, []string{"ghost"}) {
		t.Errorf("Exclude() missing = %v, want [ghost]", missing)
	}
}

func TestExclude_NothingMissing(t *testing.T) {
	remaining, missing := Exclude([]string{"t1", "t2"}, []string{"t1"})

	if !reflect.DeepEqual(remaining, []string{"t2"}) {
		t.Errorf("Exclude() remaining = %v, want [t2]", remaining)
	}
	if len(missing) != 0 {
		t.Errorf("Exclude() missing = %v, want none", missing)
	}
}
