package hcl

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/capigen/internal/config"
	"github.com/specialistvlad/capigen/internal/model"
	"github.com/specialistvlad/capigen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadHCL(t *testing.T, src string) (*config.Sources, error) {
	t.Helper()
	root := testutil.WriteFiles(t, map[string]string{"defs.hcl": src})
	return NewLoader().Load(context.Background(), filepath.Join(root, "defs.hcl"))
}

func TestLoad_FixtureDefinitions(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, testutil.HCLDefinitions)
	sources, err := NewLoader().Load(context.Background(), filepath.Join(root, "definitions", "capi.hcl"))
	require.NoError(t, err)

	require.Len(t, sources.Groups, 2)
	openConnect := sources.Groups[0]
	assert.Equal(t, "open_connect", openConnect.Name)
	assert.Equal(t, "// Opening and closing databases", openConnect.Description)
	require.Len(t, openConnect.Entries, 2)

	open := openConnect.Entries[0]
	assert.Equal(t, "duckdb_open", open.Name)
	assert.Equal(t, "duckdb_state", open.ReturnType)
	assert.Equal(t, []config.ParamRecord{
		{Type: "const char *", Name: "path"},
		{Type: "duckdb_database *", Name: "out_database"},
	}, open.Params)
	require.NotNil(t, open.Comment)
	assert.Equal(t, "Path to the database file on disk.", open.Comment.ParamComments["path"])
	assert.Contains(t, open.Comment.ReturnValue, "DuckDBSuccess")
	assert.Equal(t, 5, open.Source.Line)

	helpers := sources.Groups[1]
	assert.True(t, helpers.Deprecated)
	assert.True(t, helpers.Entries[1].Deprecated)
	assert.Nil(t, helpers.Entries[1].Params)

	require.Len(t, sources.Versions, 2)
	assert.Equal(t, "v0.0.1", sources.Versions[0].Version)
	assert.Equal(t, []string{"duckdb_open", "duckdb_close"}, sources.Versions[0].Entries)
	assert.Equal(t, "v0.1.0", sources.Versions[1].Version)

	require.Len(t, sources.Exclusions, 1)
	assert.Equal(t, []config.ExclusionGroupRecord{
		{Group: "debugging", Entries: []string{"duckdb_internal_debug"}},
	}, sources.Exclusions[0].Groups)
}

func TestLoad_KeepsFileOrderAcrossFiles(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"a.hcl": `api_version "v0.0.1" { entries = ["a"] }`,
		"b.hcl": `api_version "v0.0.2" { entries = ["b"] }`,
	})

	sources, err := NewLoader().Load(context.Background(), filepath.Join(root, "b.hcl"), filepath.Join(root, "a.hcl"))
	require.NoError(t, err)
	require.Len(t, sources.Versions, 2)
	assert.Equal(t, "v0.0.2", sources.Versions[0].Version)
	assert.Equal(t, "v0.0.1", sources.Versions[1].Version)
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		hcl         string
		errContains []string
	}{
		{
			name: "missing return type",
			hcl: `
			group "g" {
				function "f" {}
			}
			`,
			errContains: []string{`Missing required argument`, `"return_type"`},
		},
		{
			name: "duplicate comment block",
			hcl: `
			group "g" {
				function "f" {
					return_type = "void"
					comment { description = "a" }
					comment { description = "b" }
				}
			}
			`,
			errContains: []string{`Duplicate comment block`},
		},
		{
			name: "duplicate parameter",
			hcl: `
			group "g" {
				function "f" {
					return_type = "void"
					param "x" { type = "int" }
					param "x" { type = "int" }
				}
			}
			`,
			errContains: []string{`Duplicate parameter`, `"x"`},
		},
		{
			name: "param comments not strings",
			hcl: `
			group "g" {
				function "f" {
					return_type = "void"
					comment {
						description    = "d"
						param_comments = { x = ["not", "a", "string"] }
					}
				}
			}
			`,
			errContains: []string{`Invalid param_comments`},
		},
		{
			name:        "unknown top-level block",
			hcl:         `runner "x" {}`,
			errContains: []string{`Unsupported block type`},
		},
		{
			name:        "syntax error",
			hcl:         `group "g" {`,
			errContains: []string{`defs.hcl:1`},
		},
		{
			name: "every problem is reported",
			hcl: `
			group "g" {
				function "f" {}
				function "h" {}
			}
			`,
			errContains: []string{`defs.hcl:3`, `defs.hcl:4`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := loadHCL(t, tc.hcl)
			require.Error(t, err)
			require.ErrorIs(t, err, model.ErrMalformedInput)
			for _, want := range tc.errContains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
