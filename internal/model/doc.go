// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of a C API definition set: the
// function groups that make up the public header, the API versions that make
// up the extension function table, and the list of functions deliberately
// kept out of that table.
//
// # Core Concepts
//
//   - FunctionDefinition: a single C function (name, return type, ordered
//     parameters, optional documentation and deprecation flag).
//
//   - FunctionGroup: an ordered collection of functions rendered together as
//     one section of the public header.
//
//   - ApiVersion: an increment of the extension function table. Each function
//     in the table is introduced by exactly one ApiVersion.
//
//   - ExclusionSet: the functions that are part of the public header but are
//     intentionally absent from the function table.
//
//   - Model: the immutable aggregate of all of the above, produced once per
//     run by the loading and validation stages and then handed, read-only, to
//     the table builder and the renderer.
//
// Every failure the pipeline can produce is an *Error whose Kind is one of
// the sentinel errors in this package, so callers can match them with
// errors.Is regardless of which stage raised them.
package model
