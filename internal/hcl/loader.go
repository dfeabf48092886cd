package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/capigen/internal/config"
	"github.com/specialistvlad/capigen/internal/ctxlog"
	"github.com/specialistvlad/capigen/internal/model"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load parses every file and translates its blocks into records. Diagnostics
// from all files are collected, so a single run reports every problem.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Sources, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file_count", len(paths))

	parser := hclparse.NewParser()
	sources := &config.Sources{}
	var allDiags hcl.Diagnostics

	for _, path := range paths {
		hclFile, diags := parser.ParseHCLFile(path)
		allDiags = append(allDiags, diags...)
		if diags.HasErrors() {
			continue
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		allDiags = append(allDiags, diags...)
		if diags.HasErrors() {
			continue
		}

		fileSources, diags := translateFile(&root)
		allDiags = append(allDiags, diags...)
		sources.Merge(fileSources)
		logger.Debug("Loaded definitions from HCL file.", "file", path,
			"groups", len(root.Groups), "versions", len(root.Versions), "exclusion_lists", len(root.Exclusions))
	}

	if allDiags.HasErrors() {
		return nil, diagnosticsError(allDiags)
	}
	for _, d := range allDiags {
		logger.Warn(d.Summary, "detail", d.Detail, "range", rangeString(d.Subject))
	}

	logger.Debug("HCL loading complete.", "groups", len(sources.Groups), "versions", len(sources.Versions))
	return sources, nil
}

// diagnosticsError converts every error diagnostic into an item of a single
// malformed-input error.
func diagnosticsError(diags hcl.Diagnostics) error {
	var items []string
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		item := fmt.Sprintf("%s: %s", rangeString(d.Subject), d.Summary)
		if d.Detail != "" {
			item += "; " + d.Detail
		}
		items = append(items, item)
	}
	return model.NewError(model.ErrMalformedInput, "invalid HCL definitions", items...)
}

func rangeString(r *hcl.Range) string {
	if r == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", r.Filename, r.Start.Line)
}

func sourceOf(r hcl.Range) model.Source {
	return model.NewSource(r.Filename, r.Start.Line)
}
