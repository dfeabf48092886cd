package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/capigen/internal/config"
	"github.com/specialistvlad/capigen/internal/model"
	"github.com/specialistvlad/capigen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fn(name, file string, line int) *config.FunctionRecord {
	return &config.FunctionRecord{Name: name, ReturnType: "void", Source: model.NewSource(file, line)}
}

func group(name, file string, fns ...*config.FunctionRecord) *config.GroupRecord {
	return &config.GroupRecord{Name: name, Entries: fns, Source: model.NewSource(file, 1)}
}

func TestBuild_IndexesFunctionsAndGroups(t *testing.T) {
	t.Parallel()

	helpers := group("helpers", "helpers.json", fn("duckdb_malloc", "helpers.json", 4))
	helpers.Deprecated = true
	records := []*config.GroupRecord{
		group("open_connect", "open.json", fn("duckdb_open", "open.json", 4), fn("duckdb_close", "open.json", 9)),
		helpers,
	}

	reg, err := Build(context.Background(), records, Options{AllowUncommentedParams: true})
	require.NoError(t, err)

	require.Len(t, reg.Groups, 2)
	assert.Equal(t, []string{"duckdb_open", "duckdb_close"}, reg.Groups[0].Names())
	assert.Equal(t, []string{"duckdb_open", "duckdb_close", "duckdb_malloc"}, reg.Names())

	malloc, ok := reg.Lookup("duckdb_malloc")
	require.True(t, ok)
	assert.Equal(t, "helpers", malloc.Group)
	assert.True(t, malloc.GroupDeprecated)
	assert.False(t, malloc.Deprecated)
	assert.Same(t, reg.Groups[1].Functions[0], malloc)

	_, ok = reg.Lookup("duckdb_nothing")
	assert.False(t, ok)
}

func TestBuild_DuplicateSymbolsNameBothSources(t *testing.T) {
	t.Parallel()

	records := []*config.GroupRecord{
		group("a", "a.json", fn("dup_one", "a.json", 3), fn("dup_two", "a.json", 8)),
		group("b", "b.json", fn("dup_one", "b.json", 3)),
		group("c", "c.json", fn("dup_two", "c.json", 5)),
	}

	_, err := Build(context.Background(), records, Options{AllowUncommentedParams: true})
	require.Error(t, err)
	require.ErrorIs(t, err, model.ErrDuplicateSymbol)
	assert.Equal(t, []string{
		"dup_one (a.json:3 and b.json:3)",
		"dup_two (a.json:8 and c.json:5)",
	}, model.ItemsOf(err, model.ErrDuplicateSymbol))
}

func TestBuild_DuplicateGroupName(t *testing.T) {
	t.Parallel()

	records := []*config.GroupRecord{
		group("a", "a.json", fn("f", "a.json", 3)),
		group("a", "b.json", fn("g", "b.json", 3)),
	}

	_, err := Build(context.Background(), records, Options{AllowUncommentedParams: true})
	require.ErrorIs(t, err, model.ErrDuplicateSymbol)
	assert.Contains(t, err.Error(), "group a (a.json:1 and b.json:1)")
}

func TestBuild_UncommentedParams(t *testing.T) {
	t.Parallel()

	documented := fn("f", "a.json", 3)
	documented.Params = []config.ParamRecord{{Type: "int", Name: "x"}, {Type: "int", Name: "y"}}
	documented.Comment = &config.CommentRecord{Description: "d", ParamComments: map[string]string{"x": "the x"}}

	undocumented := fn("g", "a.json", 9)
	undocumented.Params = []config.ParamRecord{{Type: "int", Name: "z"}}

	records := []*config.GroupRecord{group("a", "a.json", documented, undocumented)}

	_, err := Build(context.Background(), records, Options{AllowUncommentedParams: true})
	require.NoError(t, err)

	_, err = Build(context.Background(), records, Options{})
	require.ErrorIs(t, err, model.ErrMalformedInput)
	assert.Equal(t, []string{`a.json:3: parameter "y" of f has no comment`},
		model.ItemsOf(err, model.ErrMalformedInput))
}

func TestBuild_GroupOrder(t *testing.T) {
	t.Parallel()

	records := []*config.GroupRecord{
		group("c", "c.json", fn("fc", "c.json", 1)),
		group("a", "a.json", fn("fa", "a.json", 1)),
		group("b", "b.json", fn("fb", "b.json", 1)),
	}

	cases := []struct {
		name      string
		order     []string
		want      []string
		wantWarns []string
	}{
		{
			name:  "empty reference keeps discovery order",
			order: nil,
			want:  []string{"c", "a", "b"},
		},
		{
			name:  "reference order is applied",
			order: []string{"a", "b", "c"},
			want:  []string{"a", "b", "c"},
		},
		{
			name:      "unlisted groups follow in discovery order",
			order:     []string{"b"},
			want:      []string{"b", "c", "a"},
			wantWarns: []string{"does not match the reference group order", "group=c", "group=a"},
		},
		{
			name:      "missing reference group is only a warning",
			order:     []string{"a", "zzz", "b", "c"},
			want:      []string{"a", "b", "c"},
			wantWarns: []string{"was not found in any definition file", "group=zzz"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx, logs := testutil.LogContext(t)

			reg, err := Build(ctx, records, Options{GroupOrder: tc.order, AllowUncommentedParams: true})
			require.NoError(t, err)

			var got []string
			for _, g := range reg.Groups {
				got = append(got, g.Name)
			}
			assert.Equal(t, tc.want, got)
			for _, want := range tc.wantWarns {
				assert.Contains(t, logs.String(), want)
			}
			if len(tc.wantWarns) == 0 {
				assert.NotContains(t, logs.String(), "level=WARN")
			}
		})
	}
}
