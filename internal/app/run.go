package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/capigen/internal/captable"
	"github.com/specialistvlad/capigen/internal/render"
)

// GenerateOptions controls a generation run.
type GenerateOptions struct {
	// DryRun renders every header but writes nothing.
	DryRun bool
}

// Generate runs the full pipeline and writes the three headers. Nothing is
// written unless loading, validation and rendering all succeed.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) (*Summary, error) {
	ctx = a.withLogger(ctx)
	a.logger.Debug("Generate started.", "dry_run", opts.DryRun)

	m, table, err := a.load(ctx, false)
	if err != nil {
		return nil, err
	}

	ropts, err := a.renderOptions()
	if err != nil {
		return nil, err
	}
	r, err := render.New(ropts)
	if err != nil {
		return nil, err
	}
	headers, err := r.All(m, table)
	if err != nil {
		return nil, fmt.Errorf("failed to render headers: %w", err)
	}

	summary := newSummary(m, table)
	if opts.DryRun {
		a.logger.Info("Dry run: headers rendered but not written.")
		summary.Print(a.outW)
		return summary, nil
	}

	files := []outputFile{
		{path: a.config.Outputs.PublicHeader, content: headers.Public},
		{path: a.config.Outputs.ExtensionHeader, content: headers.Extension},
		{path: a.config.Outputs.InternalHeader, content: headers.Internal},
	}
	if err := writeOutputs(ctx, files); err != nil {
		return nil, err
	}
	summary.Written = a.config.OutputFiles()
	a.runFormatter(ctx, summary.Written)

	summary.Print(a.outW)
	a.logger.Info("C API headers generated successfully.")
	return summary, nil
}

// Check validates the definitions without rendering anything.
func (a *App) Check(ctx context.Context, skipExclusions bool) (*Summary, error) {
	ctx = a.withLogger(ctx)
	m, table, err := a.load(ctx, skipExclusions)
	if err != nil {
		return nil, err
	}
	summary := newSummary(m, table)
	summary.Print(a.outW)
	return summary, nil
}

// Negotiate builds the function table and negotiates it for the requested
// version, printing one line per slot.
func (a *App) Negotiate(ctx context.Context, minor, patch int) (*captable.Instance, error) {
	ctx = a.withLogger(ctx)
	_, table, err := a.load(ctx, false)
	if err != nil {
		return nil, err
	}

	in := table.Negotiate(minor, patch)
	fmt.Fprintf(a.outW, "Negotiated function table for minor=%d patch=%d\n", minor, patch)
	for i, slot := range table.Slots() {
		state := "absent"
		if in.Bound(i) {
			state = "bound"
		}
		fmt.Fprintf(a.outW, " * [%d] %s %s: %s\n", slot.Index, slot.Version, slot.Function.Name, state)
	}
	fmt.Fprintf(a.outW, "%d of %d functions bound\n", len(in.BoundNames()), in.Len())
	return in, nil
}

func (a *App) renderOptions() (render.Options, error) {
	opts := render.Options{
		Project:             a.config.Project,
		DisplayName:         a.config.DisplayName,
		ErrorPrefix:         a.config.ErrorPrefix,
		APIStruct:           a.config.APIStruct,
		APIPointer:          a.config.APIPointer,
		IndexType:           a.config.IndexType,
		PublicHeaderName:    filepath.Base(a.config.Outputs.PublicHeader),
		ExtensionHeaderName: filepath.Base(a.config.Outputs.ExtensionHeader),
		InternalHeaderName:  filepath.Base(a.config.Outputs.InternalHeader),
	}
	if a.config.BaseHeader != "" {
		data, err := os.ReadFile(a.config.BaseHeader)
		if err != nil {
			return opts, fmt.Errorf("failed to read base header: %w", err)
		}
		opts.BaseHeader = string(data)
	}
	return opts, nil
}
