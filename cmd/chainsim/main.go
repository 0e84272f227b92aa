package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zero-day-ai/chainsim"
	"github.com/zero-day-ai/chainsim/catalog"
	"github.com/zero-day-ai/chainsim/promise"
	"github.com/zero-day-ai/chainsim/report"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chainsim",
		Short: "Simulate a run through the techniques used by a threat actor",
		Long: `chainsim forward-chains through a threat actor's technique bundle.

Starting from the given seed and system conditions, it computes the
sequence of stages at which blocked techniques become executable and
reports whether the end condition was reached.`,
		SilenceUsage: true,
		RunE:         runSimulate,
	}

	cmd.Flags().StringP("technique-bundle", "b", "", "The threat actor file to simulate (required)")
	cmd.Flags().StringP("catalog", "c", "technique_promises.json", "Technique catalog file (JSON or YAML)")
	cmd.Flags().StringSlice("seeds", nil, "Entry conditions 'already in place'")
	cmd.Flags().StringSlice("system-conditions", nil, "Conditions related to the system (e.g. poor_security_practices)")
	cmd.Flags().String("end-condition", chainsim.DefaultEndCondition.String(), "What condition is the desired outcome")
	cmd.Flags().StringSlice("include-techniques", nil, "Include these techniques as accessible to the attacker")
	cmd.Flags().StringSlice("exclude-techniques", nil, "Exclude these techniques even if accessible to the attacker")
	cmd.Flags().Bool("include-tools", false, "Include techniques inherited from tools the actor uses")
	cmd.Flags().Bool("nop-empty-provides", false, "Remove techniques with empty provides only, ignoring tactics")
	cmd.Flags().Bool("show-promises", false, "Show available promises on each stage")
	cmd.Flags().Bool("show-tactics", false, "Show tactics after techniques and per-stage tactic sets")
	cmd.Flags().String("promise-descriptions", "", "Promise description file used to annotate objectives")
	cmd.Flags().String("format", report.FormatTable.String(), "Output format: table, json, or csv")
	cmd.Flags().String("log-level", "warn", "Log level: debug, info, warn, or error")
	cmd.MarkFlagRequired("technique-bundle")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chainsim version %s\n", version)
		},
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	bundlePath, _ := cmd.Flags().GetString("technique-bundle")
	catalogPath, _ := cmd.Flags().GetString("catalog")
	seeds, _ := cmd.Flags().GetStringSlice("seeds")
	systemConditions, _ := cmd.Flags().GetStringSlice("system-conditions")
	endCondition, _ := cmd.Flags().GetString("end-condition")
	includeTechniques, _ := cmd.Flags().GetStringSlice("include-techniques")
	excludeTechniques, _ := cmd.Flags().GetStringSlice("exclude-techniques")
	includeTools, _ := cmd.Flags().GetBool("include-tools")
	nopEmptyProvides, _ := cmd.Flags().GetBool("nop-empty-provides")
	showPromises, _ := cmd.Flags().GetBool("show-promises")
	showTactics, _ := cmd.Flags().GetBool("show-tactics")
	descriptionsPath, _ := cmd.Flags().GetString("promise-descriptions")
	formatName, _ := cmd.Flags().GetString("format")
	logLevel, _ := cmd.Flags().GetString("log-level")

	format := report.Format(formatName)
	if !format.IsValid() {
		return fmt.Errorf("unknown format %q (want table, json, or csv)", formatName)
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: parseLevel(logLevel),
	}))

	cat, err := catalog.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}
	bundle, err := catalog.LoadBundle(bundlePath)
	if err != nil {
		return err
	}

	var descriptions map[string]string
	if descriptionsPath != "" {
		f, err := os.Open(descriptionsPath)
		if err != nil {
			return fmt.Errorf("open descriptions: %w", err)
		}
		defer chainsim.CloseWithLog(f, logger, "promise descriptions file")
		descriptions, err = catalog.ReadDescriptions(f)
		if err != nil {
			return err
		}
	}

	opts := []chainsim.Option{
		chainsim.WithLogger(logger),
		chainsim.WithEndCondition(promise.Promise(endCondition)),
	}
	if nopEmptyProvides {
		opts = append(opts, chainsim.WithEmptyProvidesOnly())
	}

	runner := chainsim.NewRunner(opts...)
	outcome, err := runner.Run(cmd.Context(), chainsim.RunInput{
		Catalog:           cat,
		Bundle:            bundle,
		Seeds:             promise.FromStrings(seeds),
		SystemConditions:  promise.FromStrings(systemConditions),
		IncludeTechniques: includeTechniques,
		ExcludeTechniques: excludeTechniques,
		IncludeTools:      includeTools,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printOutcome(out, outcome, cat, format, report.Options{
		ShowPromises: showPromises,
		ShowTactics:  showTactics,
	}, descriptions)

	return nil
}

func printOutcome(out io.Writer, outcome *chainsim.Outcome, cat catalog.Catalog, format report.Format, opts report.Options, descriptions map[string]string) {
	sim := outcome.Simulation

	fmt.Fprintf(out, "Removed %d NOP techniques: %v\n", len(outcome.RemovedNOPs), outcome.RemovedNOPs)

	if err := report.Export(out, sim, cat, format, opts); err != nil {
		fmt.Fprintf(out, "render failed: %v\n", err)
		return
	}

	if format == report.FormatTable {
		fmt.Fprintln(out, "[*] Technique does not provide any new promises")
	}

	if sim.Objectives.Len() > 0 {
		fmt.Fprintf(out, "The following objectives were reached: %s\n",
			formatObjectives(sim.Objectives, descriptions))
	}

	if outcome.Success {
		fmt.Fprintf(out, "SUCCESS: Attack chain exited with end condition '%s'\n", outcome.EndCondition)
	} else {
		fmt.Fprintf(out, "FAIL: incomplete attack chain, could not achieve end condition: %s\n", outcome.EndCondition)
	}
}

func formatObjectives(objectives promise.Set, descriptions map[string]string) string {
	parts := make([]string, 0, objectives.Len())
	for _, p := range objectives.Sorted() {
		if desc, ok := descriptions[p.String()]; ok && desc != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", p, desc))
			continue
		}
		parts = append(parts, p.String())
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

// parseLevel maps a level name to a slog.Level. Unknown values default
// to warn so a typo never floods the report output.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
