package exclusion

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/capigen/internal/config"
	"github.com/specialistvlad/capigen/internal/ctxlog"
	"github.com/specialistvlad/capigen/internal/model"
)

// BuildSet merges the exclusion records into a single set. Entries naming
// undefined functions are reported together as one unknown-symbol error.
func BuildSet(ctx context.Context, records []*config.ExclusionRecord, functions map[string]*model.FunctionDefinition) (*model.ExclusionSet, error) {
	logger := ctxlog.FromContext(ctx)

	candidates := make([]string, 0, len(functions))
	for name := range functions {
		candidates = append(candidates, name)
	}

	set := model.NewExclusionSet()
	var unknown []string
	for _, rec := range records {
		for _, g := range rec.Groups {
			for _, name := range g.Entries {
				if _, ok := functions[name]; !ok {
					unknown = append(unknown, model.UnknownSymbolItem(name, rec.Source, candidates))
					continue
				}
				if !set.Add(g.Group, name) {
					logger.Warn("Function is listed in the exclusion list more than once.",
						"function", name, "group", g.Group, "first_group", set.GroupOf(name))
				}
			}
		}
	}

	if len(unknown) > 0 {
		return nil, model.NewError(model.ErrUnknownSymbol, "exclusion list names undefined functions", unknown...)
	}
	logger.Debug("Exclusion list loaded.", "excluded", set.Len())
	return set, nil
}

// Validate checks that every function in groups is either introduced by one
// of versions or excluded, and that no function is both. Missing functions
// are reported in group order; conflicts in table order.
func Validate(ctx context.Context, groups []*model.FunctionGroup, versions []*model.ApiVersion, excluded *model.ExclusionSet) error {
	logger := ctxlog.FromContext(ctx)

	inTable := make(map[string]struct{})
	var conflicts []string
	for _, v := range versions {
		for _, name := range v.Entries {
			inTable[name] = struct{}{}
			if excluded.Contains(name) {
				conflicts = append(conflicts, fmt.Sprintf("%s (introduced in %s, excluded under %q)", name, v.Version, excluded.GroupOf(name)))
			}
		}
	}

	var missing []string
	for _, g := range groups {
		for _, fn := range g.Functions {
			if _, ok := inTable[fn.Name]; ok {
				continue
			}
			if excluded.Contains(fn.Name) {
				continue
			}
			missing = append(missing, fmt.Sprintf("%s (%s)", fn.Name, fn.Source))
		}
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, model.NewError(model.ErrMissingTableEntry, "add each to an api version or to the exclusion list", missing...))
	}
	if len(conflicts) > 0 {
		errs = append(errs, model.NewError(model.ErrExclusionConflict, "remove each from either the api version or the exclusion list", conflicts...))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	logger.Debug("Exclusion list is consistent with the function table.", "table", len(inTable), "excluded", excluded.Len())
	return nil
}
