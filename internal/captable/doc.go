// Package captable lays out the versioned extension function table and
// implements capability negotiation over it.
//
// The table holds one slot per function introduced by an API version,
// versions ascending and each version's entries in declared order. A caller
// asks for a (minor, patch) version and receives an Instance in which every
// slot is either bound to its function or explicitly absent. Each version is
// decided on its own by its Rule:
//
//	minor gate == 0:  bound iff patch >= rule patch
//	otherwise:        bound iff minor >= rule minor && patch >= rule patch
//
// Bound sets grow monotonically when both requested components grow. They are
// not monotonic under plain lexicographic (minor, patch) order: v0.1.5 is bound
// for (1, 5) but not for (2, 0).
package captable
