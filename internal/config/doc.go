// Package config defines the format-agnostic input records for the generator,
// along with the Loader interface that concrete input formats implement.
//
// Loaders only translate files into records. They check that each record is
// well formed (required fields present, values of the right shape) but know
// nothing about cross-record invariants such as duplicate symbols or version
// ordering; those belong to the registry, versions and exclusion packages.
//
// Concrete implementations live in separate packages: hcl for .hcl files and
// records for one-record-per-file JSON (and YAML) definitions.
package config
