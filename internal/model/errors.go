// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error produced while loading or validating definitions
// wraps exactly one of these.
var (
	ErrMalformedInput    = errors.New("malformed input")
	ErrDuplicateSymbol   = errors.New("duplicate symbol")
	ErrUnknownSymbol     = errors.New("unknown symbol")
	ErrVersionFormat     = errors.New("invalid version format")
	ErrVersionOrder      = errors.New("api versions out of order")
	ErrMissingTableEntry = errors.New("functions missing from both the function table and the exclusion list")
	ErrExclusionConflict = errors.New("functions listed in both the function table and the exclusion list")
)

// Error is a validation failure that names every offending item at once.
type Error struct {
	Kind   error
	Detail string
	Items  []string
}

// NewError builds an *Error of the given kind.
func NewError(kind error, detail string, items ...string) *Error {
	return &Error{Kind: kind, Detail: detail, Items: items}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if len(e.Items) == 0 {
		return msg
	}
	return fmt.Sprintf("%s:\n- %s", msg, strings.Join(e.Items, "\n- "))
}

func (e *Error) Unwrap() error { return e.Kind }

// ItemsOf collects the items of every *Error of the given kind found in err,
// following both single and joined wrapping.
func ItemsOf(err error, kind error) []string {
	var items []string
	var walk func(error)
	walk = func(e error) {
		switch x := e.(type) {
		case nil:
		case *Error:
			if x.Kind == kind {
				items = append(items, x.Items...)
			}
		case interface{ Unwrap() []error }:
			for _, inner := range x.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(x.Unwrap())
		}
	}
	walk(err)
	return items
}
