// Package report renders completed simulations for analysts.
//
// The primary view is a stage table: one row per stage with the fired
// techniques, optionally the promises newly unlocked at the end of the
// stage and the tactics in play. Shadow techniques are suppressed from
// every rendered technique list; techniques whose provides were already
// redundant with the pool at time of firing carry a "[*]" marker.
//
// Simulations can also be exported as JSON or CSV for downstream tooling.
// Nothing in this package mutates the Simulation it renders.
package report
