// Package hcl provides the HCL implementation of config.Loader. It parses
// definition files written in HCL native syntax and translates their blocks
// into the format-agnostic records of the config package.
//
// A single file may mix all three kinds of top-level blocks:
//
//	group "open_connect" {
//	  description = "..."
//
//	  function "duckdb_open" {
//	    return_type = "duckdb_state"
//	    param "path" { type = "const char *" }
//	    param "out_database" { type = "duckdb_database *" }
//	    comment {
//	      description    = "Creates a new database or opens an existing database file."
//	      return_value   = "`DuckDBSuccess` on success or `DuckDBError` on failure."
//	      param_comments = {
//	        path         = "Path to the database file on disk."
//	        out_database = "The result database object."
//	      }
//	    }
//	  }
//	}
//
//	api_version "v0.0.1" {
//	  entries = ["duckdb_open"]
//	}
//
//	exclusion_list {
//	  group "unstable" {
//	    entries = ["duckdb_internal_thing"]
//	  }
//	}
package hcl
