package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/zero-day-ai/chainsim/catalog"
	"github.com/zero-day-ai/chainsim/chain"
)

// RedundantMarker is appended to a technique description when everything
// the technique provides was already in the pool when it fired.
const RedundantMarker = " [*]"

// Options control what the stage table shows.
type Options struct {
	// ShowPromises adds a column with the promises newly available at
	// the end of each stage.
	ShowPromises bool

	// ShowTactics annotates technique descriptions with their tactics
	// and adds a column with the set of tactics in play per stage.
	ShowTactics bool
}

// StagesTable renders the simulation's stage sequence as a bordered
// table. Output is deterministic: techniques, promises, and tactics are
// sorted within each cell.
func StagesTable(sim *chain.Simulation, cat catalog.Catalog, opts Options) string {
	headers := []string{"STAGE", "TECHNIQUES"}
	if opts.ShowPromises {
		headers = append(headers, "NEW PROMISES @END-OF-STAGE")
	}
	if opts.ShowTactics {
		headers = append(headers, "TACTICS")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)

	for _, stage := range sim.Stages {
		var descriptions []string
		tactics := make(map[string]struct{})

		for _, id := range stage.Techniques {
			tech, ok := cat.Get(id)
			if !ok || tech.IsShadow() {
				continue
			}
			for _, tac := range tech.Tactics {
				tactics[tac] = struct{}{}
			}
			descriptions = append(descriptions, describe(tech, stage, opts.ShowTactics))
		}
		sort.Strings(descriptions)

		row := []string{fmt.Sprintf("%d", stage.Index), strings.Join(descriptions, "\n")}
		if opts.ShowPromises {
			row = append(row, joinPromises(stage))
		}
		if opts.ShowTactics {
			row = append(row, joinSorted(tactics))
		}
		t.Row(row...)
	}

	return t.String()
}

// describe builds the display string for one fired technique.
func describe(tech catalog.Technique, stage chain.Stage, showTactics bool) string {
	desc := tech.Name
	if showTactics && len(tech.Tactics) > 0 {
		desc += " (" + strings.Join(tech.Tactics, ",") + ")"
	}
	if tech.ProvidesRedundant(stage.PreConditions) {
		desc += RedundantMarker
	}
	return desc
}

func joinPromises(stage chain.Stage) string {
	parts := make([]string, 0, stage.NewProvides.Len())
	for _, p := range stage.NewProvides.Sorted() {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, "\n")
}

func joinSorted(set map[string]struct{}) string {
	parts := make([]string, 0, len(set))
	for s := range set {
		parts = append(parts, s)
	}
	sort.Strings(parts)
	return strings.Join(parts, "\n")
}
