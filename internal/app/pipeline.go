package app

import (
	"context"
	"errors"

	"github.com/specialistvlad/capigen/internal/captable"
	"github.com/specialistvlad/capigen/internal/config"
	"github.com/specialistvlad/capigen/internal/ctxlog"
	"github.com/specialistvlad/capigen/internal/exclusion"
	"github.com/specialistvlad/capigen/internal/model"
	"github.com/specialistvlad/capigen/internal/registry"
	"github.com/specialistvlad/capigen/internal/versions"
)

// BuildModel validates loaded sources into a Model. With skipExclusions the
// exclusion list is still parsed, but not reconciled with the function
// table, and the resulting model cannot be rendered into a public header.
func (a *App) BuildModel(ctx context.Context, sources *config.Sources, skipExclusions bool) (*model.Model, error) {
	logger := ctxlog.FromContext(ctx)

	reg, err := registry.Build(ctxlog.With(ctx, "stage", "registry"), sources.Groups, registry.Options{
		GroupOrder:             a.config.GroupOrder,
		AllowUncommentedParams: a.config.AllowUncommentedParams,
	})
	if err != nil {
		return nil, err
	}

	// Version and exclusion problems are independent of each other and are
	// reported together.
	vreg, verr := versions.Build(ctxlog.With(ctx, "stage", "versions"), sources.Versions, reg.Functions)
	excluded, xerr := exclusion.BuildSet(ctxlog.With(ctx, "stage", "exclusions"), sources.Exclusions, reg.Functions)
	if err := errors.Join(verr, xerr); err != nil {
		return nil, err
	}

	if skipExclusions {
		logger.Warn("Exclusion list validation skipped; headers cannot be generated from this run.")
	} else if err := exclusion.Validate(ctx, reg.Groups, vreg.Versions, excluded); err != nil {
		return nil, err
	}

	return &model.Model{
		Groups:              reg.Groups,
		Functions:           reg.Functions,
		Versions:            vreg.Versions,
		Latest:              vreg.Latest,
		Exclusions:          excluded,
		ExclusionsValidated: !skipExclusions,
	}, nil
}

// load runs the pipeline up to the function table.
func (a *App) load(ctx context.Context, skipExclusions bool) (*model.Model, *captable.Table, error) {
	sources, err := a.LoadSources(ctx)
	if err != nil {
		return nil, nil, err
	}
	m, err := a.BuildModel(ctx, sources, skipExclusions)
	if err != nil {
		return nil, nil, err
	}
	table, err := captable.Build(m)
	if err != nil {
		return nil, nil, err
	}
	ctxlog.FromContext(ctx).Debug("Function table built.", "slots", table.Len(), "rules", len(table.Rules()))
	return m, table, nil
}
