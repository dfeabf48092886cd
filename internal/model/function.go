// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines FunctionDefinition and FunctionGroup.
//
// A FunctionDefinition is owned by exactly one group. Groups hold pointers into
// the global function registry instead of copies, so the declaration rendered
// in the public header and the struct member rendered in the function table
// are always produced from the same record.
package model

// Param is a single C function parameter. The order of a function's params is
// its call signature.
type Param struct {
	Type string
	Name string
}

// Comment is the documentation attached to a function.
type Comment struct {
	Description string

	// ParamComments maps a parameter name to its description.
	ParamComments map[string]string
	// ReturnValue describes the return value. Empty means no @return line.
	ReturnValue string
}

// ParamComment returns the documentation for the named parameter.
func (c *Comment) ParamComment(name string) (string, bool) {
	if c == nil || c.ParamComments == nil {
		return "", false
	}
	text, ok := c.ParamComments[name]
	return text, ok
}

// FunctionDefinition describes one C API function.
type FunctionDefinition struct {
	Name       string
	ReturnType string
	Params     []Param
	Group      string
	Comment    *Comment
	Deprecated bool

	// GroupDeprecated is inherited from the owning group.
	GroupDeprecated bool

	Source Source
}

// FunctionGroup is a named, ordered section of the public header.
type FunctionGroup struct {
	Name        string
	Description string
	Deprecated  bool
	Functions   []*FunctionDefinition
	Source      Source
}

// Names returns the names of the group's functions in declaration order.
func (g *FunctionGroup) Names() []string {
	names := make([]string, 0, len(g.Functions))
	for _, fn := range g.Functions {
		names = append(names, fn.Name)
	}
	return names
}
