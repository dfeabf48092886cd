// This file contains the logic for translating the decoded HCL schema structs
// into the format-agnostic records defined in the config package.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/capigen/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateFile converts one decoded file into records.
func translateFile(root *fileRoot) (*config.Sources, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	sources := &config.Sources{}

	for _, g := range root.Groups {
		group, groupDiags := translateGroup(g)
		diags = append(diags, groupDiags...)
		sources.Groups = append(sources.Groups, group)
	}
	for _, v := range root.Versions {
		sources.Versions = append(sources.Versions, &config.VersionRecord{
			Version: v.Version,
			Entries: v.Entries,
			Source:  sourceOf(v.DefRange),
		})
	}
	for _, x := range root.Exclusions {
		rec := &config.ExclusionRecord{Source: sourceOf(x.DefRange)}
		for _, g := range x.Groups {
			rec.Groups = append(rec.Groups, config.ExclusionGroupRecord{Group: g.Name, Entries: g.Entries})
		}
		sources.Exclusions = append(sources.Exclusions, rec)
	}
	return sources, diags
}

// translateGroup converts a group block and its function blocks.
func translateGroup(g *hclGroup) (*config.GroupRecord, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	group := &config.GroupRecord{
		Name:       g.Name,
		Deprecated: g.Deprecated,
		Source:     sourceOf(g.DefRange),
	}
	if g.Description != nil {
		group.Description = *g.Description
	}

	for _, fn := range g.Functions {
		rec := &config.FunctionRecord{
			Name:       fn.Name,
			ReturnType: fn.ReturnType,
			Deprecated: fn.Deprecated,
			Source:     sourceOf(fn.DefRange),
		}

		seen := make(map[string]struct{}, len(fn.Params))
		for _, p := range fn.Params {
			if _, dup := seen[p.Name]; dup {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate parameter",
					Detail:   fmt.Sprintf("Function %q declares parameter %q more than once.", fn.Name, p.Name),
					Subject:  p.DefRange.Ptr(),
				})
				continue
			}
			seen[p.Name] = struct{}{}
			rec.Params = append(rec.Params, config.ParamRecord{Type: p.Type, Name: p.Name})
		}

		if fn.Comment != nil {
			paramComments, commentDiags := decodeParamComments(fn.Comment.ParamComments)
			diags = append(diags, commentDiags...)
			rec.Comment = &config.CommentRecord{
				Description:   fn.Comment.Description,
				ParamComments: paramComments,
			}
			if fn.Comment.ReturnValue != nil {
				rec.Comment.ReturnValue = *fn.Comment.ReturnValue
			}
		}

		group.Entries = append(group.Entries, rec)
	}
	return group, diags
}

// decodeParamComments evaluates a param_comments attribute, which must be an
// object whose values are all strings.
func decodeParamComments(expr hcl.Expression) (map[string]string, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}

	converted, err := convert.Convert(val, cty.Map(cty.String))
	if err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid param_comments",
			Detail:   fmt.Sprintf("param_comments must be an object of strings: %s.", err),
			Subject:  expr.Range().Ptr(),
		})
	}

	out := make(map[string]string, converted.LengthInt())
	for name, text := range converted.AsValueMap() {
		if text.IsNull() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid param_comments",
				Detail:   fmt.Sprintf("The comment for parameter %q must not be null.", name),
				Subject:  expr.Range().Ptr(),
			})
			continue
		}
		out[name] = text.AsString()
	}
	return out, diags
}
