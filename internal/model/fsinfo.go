// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Source, which links a parsed definition back to the file
// (and, when known, the line) it was declared in. Every validation error that
// names a definition also names its Source, so a maintainer can jump straight
// to the offending record.
package model

import "fmt"

// Source is the location of a definition in its input file.
type Source struct {
	FilePath string
	// Line is 1-based; zero means the format carries no line information.
	Line int
}

// NewSource returns a Source for the given file and line.
func NewSource(filePath string, line int) Source {
	return Source{FilePath: filePath, Line: line}
}

// String renders the location as "path:line", or just "path" without a line.
func (s Source) String() string {
	if s.FilePath == "" {
		return "<unknown>"
	}
	if s.Line <= 0 {
		return s.FilePath
	}
	return fmt.Sprintf("%s:%d", s.FilePath, s.Line)
}
