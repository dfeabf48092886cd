package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/capigen/internal/config"
	"github.com/specialistvlad/capigen/internal/ctxlog"
	"github.com/specialistvlad/capigen/internal/model"
)

// Options controls how the registry is built.
type Options struct {
	// GroupOrder is the reference ordering of group names. Empty means
	// discovery order.
	GroupOrder []string
	// AllowUncommentedParams permits documented functions whose parameters
	// are not all described.
	AllowUncommentedParams bool
}

// Registry holds every function definition, indexed by name, and the groups
// that own them in output order.
type Registry struct {
	Groups    []*model.FunctionGroup
	Functions map[string]*model.FunctionDefinition
}

// Build creates a Registry from group records given in discovery order.
func Build(ctx context.Context, records []*config.GroupRecord, opts Options) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building function registry.", "group_records", len(records))

	reg := &Registry{Functions: make(map[string]*model.FunctionDefinition)}
	groupSources := make(map[string]model.Source)
	var duplicates []string

	for _, rec := range records {
		if first, exists := groupSources[rec.Name]; exists {
			duplicates = append(duplicates, fmt.Sprintf("group %s (%s and %s)", rec.Name, first, rec.Source))
			continue
		}
		groupSources[rec.Name] = rec.Source

		group := &model.FunctionGroup{
			Name:        rec.Name,
			Description: rec.Description,
			Deprecated:  rec.Deprecated,
			Source:      rec.Source,
		}
		for _, fnRec := range rec.Entries {
			if existing, exists := reg.Functions[fnRec.Name]; exists {
				duplicates = append(duplicates, fmt.Sprintf("%s (%s and %s)", fnRec.Name, existing.Source, fnRec.Source))
				continue
			}
			fn := newFunction(fnRec, group)
			reg.Functions[fn.Name] = fn
			group.Functions = append(group.Functions, fn)
		}
		reg.Groups = append(reg.Groups, group)
	}

	var errs []error
	if len(duplicates) > 0 {
		errs = append(errs, model.NewError(model.ErrDuplicateSymbol, "symbols defined more than once", duplicates...))
	}
	if !opts.AllowUncommentedParams {
		if err := checkParamComments(reg.Groups); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	reg.Groups = orderGroups(ctx, reg.Groups, opts.GroupOrder)
	logger.Debug("Function registry built.", "groups", len(reg.Groups), "functions", len(reg.Functions))
	return reg, nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*model.FunctionDefinition, bool) {
	fn, ok := r.Functions[name]
	return fn, ok
}

// Names returns every function name in group output order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Functions))
	for _, g := range r.Groups {
		names = append(names, g.Names()...)
	}
	return names
}

func newFunction(rec *config.FunctionRecord, group *model.FunctionGroup) *model.FunctionDefinition {
	fn := &model.FunctionDefinition{
		Name:            rec.Name,
		ReturnType:      rec.ReturnType,
		Group:           group.Name,
		Deprecated:      rec.Deprecated,
		GroupDeprecated: group.Deprecated,
		Source:          rec.Source,
	}
	for _, p := range rec.Params {
		fn.Params = append(fn.Params, model.Param{Type: p.Type, Name: p.Name})
	}
	if rec.Comment != nil {
		fn.Comment = &model.Comment{
			Description:   rec.Comment.Description,
			ParamComments: rec.Comment.ParamComments,
			ReturnValue:   rec.Comment.ReturnValue,
		}
	}
	return fn
}
