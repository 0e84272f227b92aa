// Package catalog provides the static technique data model for attack
// chain simulation: the technique catalog, per-actor technique bundles,
// and the NOP pre-filter.
//
// A Technique describes one attacker action: the promises it requires
// before it can execute and the promises it grants once executed.
// Technique ids carrying a leading underscore are shadow techniques: they
// participate fully in chaining but are suppressed from rendered output,
// which is how conditions contributed by the environment itself are
// modeled.
//
// Catalogs and bundles are loaded from JSON or YAML files (see LoadCatalog
// and LoadBundle) and validated once at load time; the simulation engine
// assumes well-formed records.
package catalog
