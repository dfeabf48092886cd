package testutil

// JSONDefinitions is a small but complete JSON definition tree, one record
// per file: two function groups, two API versions and an exclusion list that
// together account for every function exactly once.
var JSONDefinitions = map[string]string{
	"functions/open_connect.json": `{
  "group": "open_connect",
  "description": "// Opening and closing databases",
  "entries": [
    {
      "name": "duckdb_open",
      "return_type": "duckdb_state",
      "params": [
        {"type": "const char *", "name": "path"},
        {"type": "duckdb_database *", "name": "out_database"}
      ],
      "comment": {
        "description": "Creates a new database or opens an existing database file stored at the given path.\n\n",
        "param_comments": {
          "path": "Path to the database file on disk.",
          "out_database": "The result database object."
        },
        "return_value": "` + "`DuckDBSuccess`" + ` on success or ` + "`DuckDBError`" + ` on failure."
      }
    },
    {
      "name": "duckdb_close",
      "return_type": "void",
      "params": [
        {"type": "duckdb_database *", "name": "database"}
      ]
    }
  ]
}`,
	"functions/helpers.json": `{
  "group": "helpers",
  "deprecated": true,
  "entries": [
    {
      "name": "duckdb_malloc",
      "return_type": "void *",
      "params": [
        {"type": "size_t", "name": "size"}
      ]
    },
    {
      "name": "duckdb_internal_debug",
      "return_type": "void",
      "deprecated": true
    }
  ]
}`,
	"apis/v0/v0.0.1.json": `{
  "version": "v0.0.1",
  "entries": ["duckdb_open", "duckdb_close"]
}`,
	"apis/v0/v0.1.0.json": `{
  "version": "v0.1.0",
  "entries": ["duckdb_malloc"]
}`,
	"apis/v0/exclusion_list.json": `{
  "exclusion_list": [
    {"group": "debugging", "entries": ["duckdb_internal_debug"]}
  ]
}`,
}

// HCLDefinitions describes the same definition set as JSONDefinitions in a
// single HCL file.
var HCLDefinitions = map[string]string{
	"definitions/capi.hcl": `
group "open_connect" {
  description = "// Opening and closing databases"

  function "duckdb_open" {
    return_type = "duckdb_state"
    param "path" {
      type = "const char *"
    }
    param "out_database" {
      type = "duckdb_database *"
    }
    comment {
      description    = "Creates a new database or opens an existing database file stored at the given path.\n\n"
      return_value   = "` + "`DuckDBSuccess`" + ` on success or ` + "`DuckDBError`" + ` on failure."
      param_comments = {
        path         = "Path to the database file on disk."
        out_database = "The result database object."
      }
    }
  }

  function "duckdb_close" {
    return_type = "void"
    param "database" {
      type = "duckdb_database *"
    }
  }
}

group "helpers" {
  deprecated = true

  function "duckdb_malloc" {
    return_type = "void *"
    param "size" {
      type = "size_t"
    }
  }

  function "duckdb_internal_debug" {
    return_type = "void"
    deprecated  = true
  }
}

api_version "v0.0.1" {
  entries = ["duckdb_open", "duckdb_close"]
}

api_version "v0.1.0" {
  entries = ["duckdb_malloc"]
}

exclusion_list {
  group "debugging" {
    entries = ["duckdb_internal_debug"]
  }
}
`,
}

// JSONProjectConfig is a capigen.yaml for the JSONDefinitions layout.
const JSONProjectConfig = `project: duckdb
definitions:
  - functions
api_versions:
  - apis/v0
group_order:
  - open_connect
  - helpers
outputs:
  public_header: out/duckdb.h
  extension_header: out/duckdb_extension.h
  internal_header: out/extension_api.hpp
`

// HCLProjectConfig is a capigen.yaml for the HCLDefinitions layout.
const HCLProjectConfig = `project: duckdb
definitions:
  - definitions
api_versions: []
group_order:
  - open_connect
  - helpers
outputs:
  public_header: out/duckdb.h
  extension_header: out/duckdb_extension.h
  internal_header: out/extension_api.hpp
`
