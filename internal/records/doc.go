// Package records provides the config.Loader for JSON definition files, one
// record per file. Because every JSON document is also a YAML document, the
// same loader accepts .yaml and .yml files with identical structure.
//
// Each file holds exactly one record, identified by its top-level key:
//
//   - "group": a function group with its "entries".
//   - "version": an API version manifest; the file name (without extension)
//     must equal the version string.
//   - "exclusion_list": the list of functions kept out of the function table.
//
// Unknown keys and missing required keys are reported as malformed input,
// naming the file and the path of the offending value.
package records
