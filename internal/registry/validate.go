package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/capigen/internal/ctxlog"
	"github.com/specialistvlad/capigen/internal/model"
)

// checkParamComments reports every parameter of a documented function that
// has no description of its own.
func checkParamComments(groups []*model.FunctionGroup) error {
	var items []string
	for _, g := range groups {
		for _, fn := range g.Functions {
			if fn.Comment == nil {
				continue
			}
			for _, p := range fn.Params {
				if _, ok := fn.Comment.ParamComment(p.Name); !ok {
					items = append(items, fmt.Sprintf("%s: parameter %q of %s has no comment", fn.Source, p.Name, fn.Name))
				}
			}
		}
	}
	if len(items) == 0 {
		return nil
	}
	return model.NewError(model.ErrMalformedInput, "uncommented parameters", items...)
}

// orderGroups puts the groups named in order first, in that order, followed
// by the rest in discovery order. Mismatches against the reference list are
// reported as warnings only.
func orderGroups(ctx context.Context, groups []*model.FunctionGroup, order []string) []*model.FunctionGroup {
	if len(order) == 0 {
		return groups
	}
	logger := ctxlog.FromContext(ctx)

	if len(groups) != len(order) {
		logger.Warn("The number of function groups does not match the reference group order. Add new groups to group_order.",
			"discovered", len(groups), "reference", len(order))
	}

	byName := make(map[string]*model.FunctionGroup, len(groups))
	for _, g := range groups {
		byName[g.Name] = g
	}

	ordered := make([]*model.FunctionGroup, 0, len(groups))
	placed := make(map[string]struct{}, len(groups))
	for _, name := range order {
		g, ok := byName[name]
		if !ok {
			logger.Warn("Group listed in group_order was not found in any definition file.", "group", name)
			continue
		}
		if _, dup := placed[name]; dup {
			continue
		}
		placed[name] = struct{}{}
		ordered = append(ordered, g)
	}

	for _, g := range groups {
		if _, ok := placed[g.Name]; ok {
			continue
		}
		logger.Warn("Group is not listed in group_order; appending it in discovery order.", "group", g.Name, "source", g.Source.String())
		ordered = append(ordered, g)
	}
	return ordered
}
