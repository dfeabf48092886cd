package app

import (
	"fmt"
	"io"

	"github.com/specialistvlad/capigen/internal/captable"
	"github.com/specialistvlad/capigen/internal/model"
)

// Summary describes the outcome of a run.
type Summary struct {
	Latest          model.Version
	TotalFunctions  int
	TableEntries    int
	ExcludedEntries int
	// Written lists the generated files; empty for dry runs and checks.
	Written []string
}

func newSummary(m *model.Model, t *captable.Table) *Summary {
	return &Summary{
		Latest:          m.Latest,
		TotalFunctions:  len(m.Functions),
		TableEntries:    t.Len(),
		ExcludedEntries: m.Exclusions.Len(),
	}
}

// Print writes the human-readable summary to w.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "Information")
	fmt.Fprintf(w, " * Current Extension C API Version: %s\n", s.Latest)
	fmt.Fprintf(w, " * Total functions: %d\n", s.TotalFunctions)
	fmt.Fprintf(w, " * Functions in C API struct: %d\n", s.TableEntries)
	fmt.Fprintf(w, " * Functions in C API but excluded from struct: %d\n", s.ExcludedEntries)
	if len(s.Written) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generated headers")
	for _, path := range s.Written {
		fmt.Fprintf(w, " * %s\n", path)
	}
}
