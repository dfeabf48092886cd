package render

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/capigen/internal/captable"
	"github.com/specialistvlad/capigen/internal/model"
)

// joinType places name after typ, without a space when typ ends in '*'.
func joinType(typ, name string) string {
	if strings.HasSuffix(typ, "*") {
		return typ + name
	}
	return typ + " " + name
}

func paramList(params []model.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, joinType(p.Type, p.Name))
	}
	return strings.Join(parts, ", ")
}

// declaration renders "<PREFIX>_API ret name(params);".
func declaration(prefix string, fn *model.FunctionDefinition) string {
	return fmt.Sprintf("%s(%s);\n", joinType(prefix+"_API "+fn.ReturnType, fn.Name), paramList(fn.Params))
}

// structMember renders the function pointer member of the API struct.
func structMember(fn *model.FunctionDefinition) string {
	return fmt.Sprintf("%s (*%s)(%s);", fn.ReturnType, fn.Name, paramList(fn.Params))
}

// docComment renders the "/*! ... */" block, or nothing for an undocumented
// function. Only parameters that have a description get an @param line.
func docComment(fn *model.FunctionDefinition) string {
	if fn.Comment == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("/*!\n")
	b.WriteString(fn.Comment.Description)
	if !strings.HasSuffix(fn.Comment.Description, "\n") {
		b.WriteString("\n")
	}
	for _, p := range fn.Params {
		if text, ok := fn.Comment.ParamComment(p.Name); ok {
			fmt.Fprintf(&b, "* @param %s %s\n", p.Name, text)
		}
	}
	if fn.Comment.ReturnValue != "" {
		fmt.Fprintf(&b, "* @return %s\n", fn.Comment.ReturnValue)
	}
	b.WriteString("*/\n")
	return b.String()
}

// groupSections renders the declarations of every group for the public
// header.
func (r *Renderer) groupSections(groups []*model.FunctionGroup) string {
	guard := fmt.Sprintf("#ifndef %s_API_NO_DEPRECATED\n", r.prefix)

	var b strings.Builder
	for _, g := range groups {
		b.WriteString("//===--------------------------------------------------------------------===//\n")
		fmt.Fprintf(&b, "// %s\n", r.title(g.Name))
		b.WriteString("//===--------------------------------------------------------------------===//\n\n")
		if g.Description != "" {
			b.WriteString(g.Description + "\n")
		}
		if g.Deprecated {
			b.WriteString(guard)
		}
		for _, fn := range g.Functions {
			if fn.Deprecated {
				b.WriteString(guard)
			}
			b.WriteString(docComment(fn))
			b.WriteString(declaration(r.prefix, fn))
			if fn.Deprecated {
				b.WriteString("#endif\n")
			}
			b.WriteString("\n")
		}
		if g.Deprecated {
			b.WriteString("#endif\n")
		}
	}
	return b.String()
}

// apiStruct renders the function table as a C struct of function pointers,
// one "// Version" comment per version that introduces functions.
func apiStruct(t *captable.Table, name string) string {
	var b strings.Builder
	b.WriteString("typedef struct {\n")
	var current model.Version
	for i, slot := range t.Slots() {
		if i == 0 || slot.Version != current {
			current = slot.Version
			fmt.Fprintf(&b, "    // Version %s\n", current)
		}
		fmt.Fprintf(&b, "    %s\n", structMember(slot.Function))
	}
	fmt.Fprintf(&b, "} %s;\n\n", name)
	return b.String()
}

func (r *Renderer) versionDefines(latest model.Version) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#define %s_EXTENSION_API_VERSION_MAJOR %d\n", r.prefix, latest.Major)
	fmt.Fprintf(&b, "#define %s_EXTENSION_API_VERSION_MINOR %d\n", r.prefix, latest.Minor)
	fmt.Fprintf(&b, "#define %s_EXTENSION_API_VERSION_PATCH %d\n", r.prefix, latest.Patch)
	return b.String()
}

// pointerDefines maps every table function of each group onto the API
// pointer. Groups without table functions are skipped.
func (r *Renderer) pointerDefines(groups []*model.FunctionGroup, t *captable.Table, pointer string) string {
	var b strings.Builder
	for _, g := range groups {
		var names []string
		for _, fn := range g.Functions {
			if t.Contains(fn.Name) {
				names = append(names, fn.Name)
			}
		}
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(&b, "//! %s\n", g.Name)
		for _, name := range names {
			fmt.Fprintf(&b, "#define %s %s->%s\n", name, pointer, name)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// createAPI renders the inline C++ function that fills the API struct for a
// requested version, one conditional block per table rule.
func (r *Renderer) createAPI(t *captable.Table, structName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "inline %s CreateApi(%s minor_version, %s patch_version) {\n", structName, r.opts.IndexType, r.opts.IndexType)
	fmt.Fprintf(&b, "    %s result;\n", structName)
	for _, rule := range t.Rules() {
		if rule.HasMinorGate() {
			fmt.Fprintf(&b, "    if (minor_version >= %d && patch_version >= %d) {\n", rule.MinorGate, rule.PatchGate)
		} else {
			fmt.Fprintf(&b, "    if (patch_version >= %d) {\n", rule.PatchGate)
		}
		for _, fn := range rule.Entries {
			fmt.Fprintf(&b, "        result.%s = %s;\n", fn.Name, fn.Name)
		}
		b.WriteString("    } else {\n")
		for _, fn := range rule.Entries {
			fmt.Fprintf(&b, "        result.%s = nullptr;\n", fn.Name)
		}
		b.WriteString("    }\n")
	}
	b.WriteString("    return result;\n")
	b.WriteString("}\n\n")
	return b.String()
}
