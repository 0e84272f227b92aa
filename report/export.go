package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/zero-day-ai/chainsim/catalog"
	"github.com/zero-day-ai/chainsim/chain"
)

// Format represents the output format for exporting a simulation.
type Format string

const (
	// FormatTable exports the bordered stage table.
	FormatTable Format = "table"

	// FormatJSON exports the full simulation as indented JSON.
	FormatJSON Format = "json"

	// FormatCSV exports one row per stage as comma-separated values.
	FormatCSV Format = "csv"
)

// IsValid returns true if the export format is recognized.
func (f Format) IsValid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatCSV:
		return true
	default:
		return false
	}
}

// String returns the string representation of the export format.
func (f Format) String() string {
	return string(f)
}

// Export writes the simulation to w in the given format. The table and
// CSV forms suppress shadow techniques; JSON carries the raw stage
// sequence for downstream tooling.
func Export(w io.Writer, sim *chain.Simulation, cat catalog.Catalog, format Format, opts Options) error {
	switch format {
	case FormatTable:
		_, err := fmt.Fprintln(w, StagesTable(sim, cat, opts))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sim)
	case FormatCSV:
		return exportCSV(w, sim, cat)
	default:
		return fmt.Errorf("unsupported export format: %q", format)
	}
}

func exportCSV(w io.Writer, sim *chain.Simulation, cat catalog.Catalog) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"stage", "techniques", "new_promises"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, stage := range sim.Stages {
		var visible []string
		for _, id := range stage.Techniques {
			if tech, ok := cat.Get(id); ok && !tech.IsShadow() {
				visible = append(visible, id)
			}
		}

		promises := make([]string, 0, stage.NewProvides.Len())
		for _, p := range stage.NewProvides.Sorted() {
			promises = append(promises, p.String())
		}

		record := []string{
			fmt.Sprintf("%d", stage.Index),
			strings.Join(visible, ";"),
			strings.Join(promises, ";"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv stage %d: %w", stage.Index, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
