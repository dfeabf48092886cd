package exclusion

import (
	"context"
	"testing"

	"github.com/specialistvlad/capigen/internal/config"
	"github.com/specialistvlad/capigen/internal/model"
	"github.com/specialistvlad/capigen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() ([]*model.FunctionGroup, map[string]*model.FunctionDefinition) {
	functions := make(map[string]*model.FunctionDefinition)
	mk := func(name string, names ...string) *model.FunctionGroup {
		g := &model.FunctionGroup{Name: name}
		for i, n := range names {
			fn := &model.FunctionDefinition{Name: n, Group: name, Source: model.NewSource(name+".json", i+2)}
			functions[n] = fn
			g.Functions = append(g.Functions, fn)
		}
		return g
	}
	groups := []*model.FunctionGroup{
		mk("open_connect", "duckdb_open", "duckdb_close"),
		mk("helpers", "duckdb_malloc", "duckdb_free", "duckdb_internal"),
	}
	return groups, functions
}

func exclusions(entries map[string][]string) []*config.ExclusionRecord {
	rec := &config.ExclusionRecord{Source: model.NewSource("exclusion_list.json", 1)}
	for _, group := range []string{"internal", "unstable"} {
		if names, ok := entries[group]; ok {
			rec.Groups = append(rec.Groups, config.ExclusionGroupRecord{Group: group, Entries: names})
		}
	}
	return []*config.ExclusionRecord{rec}
}

func version(minor int, entries ...string) *model.ApiVersion {
	return &model.ApiVersion{Version: model.Version{Minor: minor}, Entries: entries}
}

func TestBuildSet(t *testing.T) {
	t.Parallel()
	_, functions := fixture()

	set, err := BuildSet(context.Background(), exclusions(map[string][]string{
		"internal": {"duckdb_internal"},
		"unstable": {"duckdb_free"},
	}), functions)
	require.NoError(t, err)
	assert.Equal(t, []string{"duckdb_internal", "duckdb_free"}, set.Names())
	assert.Equal(t, "unstable", set.GroupOf("duckdb_free"))
}

func TestBuildSet_RepeatedEntryIsAWarning(t *testing.T) {
	t.Parallel()
	_, functions := fixture()
	ctx, logs := testutil.LogContext(t)

	set, err := BuildSet(ctx, exclusions(map[string][]string{
		"internal": {"duckdb_internal"},
		"unstable": {"duckdb_internal"},
	}), functions)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, "internal", set.GroupOf("duckdb_internal"))
	assert.Contains(t, logs.String(), "more than once")
}

func TestBuildSet_UnknownEntries(t *testing.T) {
	t.Parallel()
	_, functions := fixture()

	_, err := BuildSet(context.Background(), exclusions(map[string][]string{
		"internal": {"duckdb_internl", "no_such_function_at_all"},
	}), functions)
	require.ErrorIs(t, err, model.ErrUnknownSymbol)
	assert.Equal(t, []string{
		"duckdb_internl (exclusion_list.json:1; did you mean duckdb_internal?)",
		"no_such_function_at_all (exclusion_list.json:1)",
	}, model.ItemsOf(err, model.ErrUnknownSymbol))
}

func TestValidate(t *testing.T) {
	t.Parallel()
	groups, functions := fixture()

	cases := []struct {
		name      string
		versions  []*model.ApiVersion
		excluded  []string
		missing   []string
		conflicts []string
	}{
		{
			name:     "every function accounted for exactly once",
			versions: []*model.ApiVersion{version(0, "duckdb_open", "duckdb_close"), version(1, "duckdb_malloc", "duckdb_free")},
			excluded: []string{"duckdb_internal"},
		},
		{
			name:     "missing functions are listed in group order",
			versions: []*model.ApiVersion{version(0, "duckdb_open")},
			excluded: []string{"duckdb_internal"},
			missing: []string{
				"duckdb_close (open_connect.json:3)",
				"duckdb_malloc (helpers.json:2)",
				"duckdb_free (helpers.json:3)",
			},
		},
		{
			name:     "conflicts are listed in table order",
			versions: []*model.ApiVersion{version(0, "duckdb_open", "duckdb_close"), version(1, "duckdb_malloc", "duckdb_internal", "duckdb_free")},
			excluded: []string{"duckdb_free", "duckdb_internal"},
			conflicts: []string{
				`duckdb_internal (introduced in v0.1.0, excluded under "internal")`,
				`duckdb_free (introduced in v0.1.0, excluded under "internal")`,
			},
		},
		{
			name:      "both failures are reported together",
			versions:  []*model.ApiVersion{version(0, "duckdb_open", "duckdb_internal")},
			excluded:  []string{"duckdb_internal", "duckdb_malloc", "duckdb_free"},
			missing:   []string{"duckdb_close (open_connect.json:3)"},
			conflicts: []string{`duckdb_internal (introduced in v0.0.0, excluded under "internal")`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			set, err := BuildSet(context.Background(), exclusions(map[string][]string{"internal": tc.excluded}), functions)
			require.NoError(t, err)

			err = Validate(context.Background(), groups, tc.versions, set)
			if tc.missing == nil && tc.conflicts == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.missing, model.ItemsOf(err, model.ErrMissingTableEntry))
			assert.Equal(t, tc.conflicts, model.ItemsOf(err, model.ErrExclusionConflict))
			if tc.missing != nil {
				assert.ErrorIs(t, err, model.ErrMissingTableEntry)
			}
			if tc.conflicts != nil {
				assert.ErrorIs(t, err, model.ErrExclusionConflict)
			}
		})
	}
}
