// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It maps
// the capigen commands (generate, check, negotiate, version) onto the app
// package and translates usage problems into *ExitError values.
package cli
