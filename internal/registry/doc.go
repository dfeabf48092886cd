// Package registry builds the global function registry from loaded group
// records.
//
// The Registry is the single owner of every FunctionDefinition. It is
// responsible for rejecting duplicate symbols, attaching each function to its
// group, and putting the groups into their canonical output order. Once built
// it is read-only; later phases only look names up in it.
package registry
