// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// Model is the validated, read-only view of a definition set. It is built once
// per run and must not be modified after construction.
type Model struct {
	// Groups in output order.
	Groups []*FunctionGroup
	// Functions indexes every definition by name.
	Functions map[string]*FunctionDefinition
	// Versions in ascending order.
	Versions []*ApiVersion
	// Latest is the highest declared version.
	Latest     Version
	Exclusions *ExclusionSet

	// ExclusionsValidated records that every function was checked to be in
	// exactly one of the function table and Exclusions.
	ExclusionsValidated bool
}

// Function looks up a definition by name.
func (m *Model) Function(name string) (*FunctionDefinition, bool) {
	fn, ok := m.Functions[name]
	return fn, ok
}

// TableSize is the number of function table slots.
func (m *Model) TableSize() int {
	n := 0
	for _, v := range m.Versions {
		n += len(v.Entries)
	}
	return n
}
