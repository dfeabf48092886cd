// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// ExclusionSet holds the functions that are deliberately left out of the
// extension function table. It remembers the group each name was listed
// under and the order names were declared in, so reports stay stable.
type ExclusionSet struct {
	groups map[string]string
	order  []string
}

// NewExclusionSet returns an empty set.
func NewExclusionSet() *ExclusionSet {
	return &ExclusionSet{groups: make(map[string]string)}
}

// Add records name as excluded under group. Adding a name twice keeps the
// first group and reports false.
func (s *ExclusionSet) Add(group, name string) bool {
	if _, exists := s.groups[name]; exists {
		return false
	}
	s.groups[name] = group
	s.order = append(s.order, name)
	return true
}

// Contains reports whether name is excluded.
func (s *ExclusionSet) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.groups[name]
	return ok
}

// GroupOf returns the exclusion group name was listed under.
func (s *ExclusionSet) GroupOf(name string) string {
	if s == nil {
		return ""
	}
	return s.groups[name]
}

// Len returns the number of excluded functions.
func (s *ExclusionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Names returns the excluded names in declaration order.
func (s *ExclusionSet) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
