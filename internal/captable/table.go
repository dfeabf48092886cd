package captable

import (
	"fmt"

	"github.com/specialistvlad/capigen/internal/model"
)

// Slot is one position in the function table.
type Slot struct {
	Index    int
	Version  model.Version
	Function *model.FunctionDefinition
}

// Rule is the binding decision for the functions of one API version.
type Rule struct {
	Version model.Version
	// MinorGate is the minimum requested minor version; zero means the
	// minor version is not consulted.
	MinorGate int
	PatchGate int
	Entries   []*model.FunctionDefinition
}

// HasMinorGate reports whether the rule consults the requested minor version.
func (r Rule) HasMinorGate() bool {
	return r.MinorGate != 0
}

// Admits reports whether a caller requesting (minor, patch) gets the rule's
// functions bound.
func (r Rule) Admits(minor, patch int) bool {
	if !r.HasMinorGate() {
		return patch >= r.PatchGate
	}
	return minor >= r.MinorGate && patch >= r.PatchGate
}

// Table is the function table layout for a validated model.
type Table struct {
	slots  []Slot
	rules  []Rule
	latest model.Version
	// ruleOf maps each slot to the index of the rule deciding it.
	ruleOf              []int
	index               map[string]int
	exclusionsValidated bool
}

// Build lays out the table for m. Every version entry must name a function
// defined in m.
func Build(m *model.Model) (*Table, error) {
	t := &Table{
		latest:              m.Latest,
		index:               make(map[string]int, m.TableSize()),
		exclusionsValidated: m.ExclusionsValidated,
	}

	var unknown []string
	for _, v := range m.Versions {
		if len(v.Entries) == 0 {
			continue
		}
		rule := Rule{Version: v.Version, MinorGate: v.Version.Minor, PatchGate: v.Version.Patch}
		for _, name := range v.Entries {
			fn, ok := m.Function(name)
			if !ok {
				unknown = append(unknown, fmt.Sprintf("%s (%s)", name, v.Source))
				continue
			}
			t.index[name] = len(t.slots)
			t.slots = append(t.slots, Slot{Index: len(t.slots), Version: v.Version, Function: fn})
			t.ruleOf = append(t.ruleOf, len(t.rules))
			rule.Entries = append(rule.Entries, fn)
		}
		t.rules = append(t.rules, rule)
	}

	if len(unknown) > 0 {
		return nil, model.NewError(model.ErrUnknownSymbol, "function table entries name undefined functions", unknown...)
	}
	return t, nil
}

// Slots returns the table layout.
func (t *Table) Slots() []Slot {
	out := make([]Slot, len(t.slots))
	copy(out, t.slots)
	return out
}

// Rules returns one rule per API version that introduces functions, in
// ascending version order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of slots.
func (t *Table) Len() int {
	return len(t.slots)
}

// Latest returns the highest declared version.
func (t *Table) Latest() model.Version {
	return t.latest
}

// ExclusionsValidated reports whether the model behind the table passed the
// exclusion check.
func (t *Table) ExclusionsValidated() bool {
	return t.exclusionsValidated
}

// Contains reports whether name has a slot in the table.
func (t *Table) Contains(name string) bool {
	_, ok := t.index[name]
	return ok
}
