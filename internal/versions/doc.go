// Package versions validates the API version manifests.
//
// Manifests must already be declared in ascending semantic-version order; a
// manifest added out of sequence is a fatal error rather than something to
// sort silently. Each function may be introduced by exactly one manifest.
package versions
