package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a technique catalog from a JSON or YAML file, keyed
// by technique id. The format is selected by file extension (.json,
// .yaml, .yml). Records are normalized (absent collections become empty)
// and validated before the catalog is returned.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	raw := make(map[string]Technique)
	if err := unmarshalByExt(path, data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	cat := make(Catalog, len(raw))
	for id, t := range raw {
		t.ID = id
		t.normalize()
		cat[id] = t
	}

	if err := cat.validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// LoadBundle reads a threat actor technique bundle from a JSON or YAML
// file. Two shapes are accepted: a bare array of technique ids, or an
// object with name, techniques, and optional tool-inherited technique
// lists.
func LoadBundle(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("read bundle: %w", err)
	}

	// Bare id list first; the object shape rejects it and vice versa.
	var ids []string
	if err := unmarshalByExt(path, data, &ids); err == nil {
		return Bundle{Techniques: ids}, nil
	}

	var b Bundle
	if err := unmarshalByExt(path, data, &b); err != nil {
		return Bundle{}, fmt.Errorf("parse bundle %s: %w", path, err)
	}
	if b.Techniques == nil {
		b.Techniques = []string{}
	}
	return b, nil
}

func unmarshalByExt(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}
