// Package chainsim simulates how a threat actor progresses through a
// catalog of attack techniques.
//
// Every technique requires certain promises (atomic condition facts) to
// already be true and grants new promises once executed. Starting from a
// set of seed conditions, the simulator forward-chains through the
// actor's technique bundle in stages: each stage fires every technique
// whose preconditions are met, folds its effects into the condition pool,
// and repeats until nothing more can fire. The result shows an analyst
// which stage unlocks which capability and whether a designated end
// condition (an objective such as "objective_exfiltration") is reachable.
//
// # Packages
//
//   - promise: the condition vocabulary and set type
//   - catalog: technique records, per-actor bundles, NOP filtering, loading
//   - chain: the forward-chaining simulation engine
//   - report: stage tables and JSON/CSV export
//
// The root package ties these together: Runner orchestrates a full run
// (bundle expansion, NOP stripping, include/exclude lists, simulation,
// outcome classification) with structured logging and tracing hooks.
//
// Example:
//
//	cat, err := catalog.LoadCatalog("technique_promises.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	bundle, err := catalog.LoadBundle("apt-example.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	runner := chainsim.NewRunner(
//		chainsim.WithEndCondition("objective_exfiltration"),
//	)
//	outcome, err := runner.Run(context.Background(), chainsim.RunInput{
//		Catalog: cat,
//		Bundle:  bundle,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(report.StagesTable(outcome.Simulation, cat, report.Options{}))
package chainsim
