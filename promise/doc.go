// Package promise provides the condition vocabulary for attack chain
// simulation.
//
// A Promise is an atomic true/false fact about attacker capability or
// system state (e.g. "admin_access", "poor_security_practices"). Promises
// have no internal structure; equality is exact string match. Promises
// whose identifier carries the "objective_" prefix are objectives: goal
// conditions an analyst cares about reaching. The prefix convention is
// enforced here and nowhere else.
//
// Set is the collection type used for condition pools. Sets returned by
// this package are independent copies; no Set operation mutates its
// receiver's arguments.
package promise
