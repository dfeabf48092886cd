package captable

import "github.com/specialistvlad/capigen/internal/model"

// Instance is the outcome of negotiating the table for one requested
// version. Every slot is either bound or absent.
type Instance struct {
	table *Table
	minor int
	patch int
	bound []bool
}

// Negotiate decides, for a caller requesting (minor, patch), which slots are
// bound. Each version's rule is applied independently of the others.
func (t *Table) Negotiate(minor, patch int) *Instance {
	admitted := make([]bool, len(t.rules))
	for i, r := range t.rules {
		admitted[i] = r.Admits(minor, patch)
	}

	in := &Instance{table: t, minor: minor, patch: patch, bound: make([]bool, len(t.slots))}
	for i := range t.slots {
		in.bound[i] = admitted[t.ruleOf[i]]
	}
	return in
}

// Requested returns the (minor, patch) pair the instance was negotiated for.
func (in *Instance) Requested() (minor, patch int) {
	return in.minor, in.patch
}

// Len returns the number of slots.
func (in *Instance) Len() int {
	return len(in.bound)
}

// Bound reports whether slot i is bound. Out-of-range slots are absent.
func (in *Instance) Bound(i int) bool {
	if i < 0 || i >= len(in.bound) {
		return false
	}
	return in.bound[i]
}

// Lookup returns the function behind name if its slot is bound. Absent and
// unknown names both report false.
func (in *Instance) Lookup(name string) (*model.FunctionDefinition, bool) {
	i, ok := in.table.index[name]
	if !ok || !in.bound[i] {
		return nil, false
	}
	return in.table.slots[i].Function, true
}

// BoundNames returns the names of the bound slots in table order.
func (in *Instance) BoundNames() []string {
	var names []string
	for i, slot := range in.table.slots {
		if in.bound[i] {
			names = append(names, slot.Function.Name)
		}
	}
	return names
}
