package records

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/capigen/internal/config"
	"github.com/specialistvlad/capigen/internal/ctxlog"
	"github.com/specialistvlad/capigen/internal/model"
	"gopkg.in/yaml.v3"
)

// Loader reads JSON and YAML definition records.
type Loader struct{}

// NewLoader creates a new record loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// Load implements config.Loader. Problems from every file are gathered into a
// single malformed-input error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Sources, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Record loader started.", "file_count", len(paths))

	sources := &config.Sources{}
	var problems []string

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		f := &file{path: path, data: data}
		fileSources := f.decode()
		if len(f.problems) > 0 {
			problems = append(problems, f.problems...)
			continue
		}
		sources.Merge(fileSources)
		logger.Debug("Loaded definition record.", "file", path)
	}

	if len(problems) > 0 {
		return nil, model.NewError(model.ErrMalformedInput, "invalid definition records", problems...)
	}
	return sources, nil
}

// file is the decoding state of a single input file.
type file struct {
	path     string
	data     []byte
	root     *yaml.Node
	problems []string
}

func (f *file) problemf(line int, format string, args ...any) {
	loc := model.NewSource(f.path, line).String()
	f.problems = append(f.problems, loc+": "+fmt.Sprintf(format, args...))
}

func (f *file) missing(line int, field string) {
	f.problemf(line, "missing required field %q", field)
}

// decode identifies the record kind from its top-level keys and decodes it.
func (f *file) decode() *config.Sources {
	var doc yaml.Node
	if err := yaml.Unmarshal(f.data, &doc); err != nil {
		f.problemf(0, "invalid syntax: %v", err)
		return nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		f.problemf(0, "expected an object at the top level")
		return nil
	}
	f.root = doc.Content[0]

	switch {
	case lookup(f.root, "group") != nil:
		if g := f.decodeGroup(); g != nil {
			return &config.Sources{Groups: []*config.GroupRecord{g}}
		}
	case lookup(f.root, "version") != nil:
		if v := f.decodeVersion(); v != nil {
			return &config.Sources{Versions: []*config.VersionRecord{v}}
		}
	case lookup(f.root, "exclusion_list") != nil:
		if x := f.decodeExclusion(); x != nil {
			return &config.Sources{Exclusions: []*config.ExclusionRecord{x}}
		}
	default:
		f.problemf(f.root.Line, "unknown record kind: expected one of the keys \"group\", \"version\" or \"exclusion_list\"")
	}
	return nil
}

// strictDecode decodes the whole file into out, rejecting unknown keys.
func (f *file) strictDecode(out any) bool {
	dec := yaml.NewDecoder(bytes.NewReader(f.data))
	dec.KnownFields(true)
	err := dec.Decode(out)
	if err == nil {
		return true
	}
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		for _, msg := range typeErr.Errors {
			f.problemf(0, "%s", msg)
		}
		return false
	}
	f.problemf(0, "%v", err)
	return false
}

func (f *file) decodeGroup() *config.GroupRecord {
	var g jsonGroup
	if !f.strictDecode(&g) {
		return nil
	}
	if g.Group == nil || *g.Group == "" {
		f.missing(f.root.Line, "group")
	}
	if g.Entries == nil {
		f.missing(f.root.Line, "entries")
	}
	if len(f.problems) > 0 {
		return nil
	}

	rec := &config.GroupRecord{
		Name:        *g.Group,
		Description: g.Description,
		Deprecated:  g.Deprecated,
		Source:      model.NewSource(f.path, f.root.Line),
	}
	entriesNode := lookup(f.root, "entries")
	for i, fn := range *g.Entries {
		line := itemLine(entriesNode, i)
		at := fmt.Sprintf("entries[%d]", i)
		if fn == nil {
			f.problemf(line, "%s: expected an object", at)
			continue
		}
		if fnRec := f.translateFunction(fn, at, line); fnRec != nil {
			rec.Entries = append(rec.Entries, fnRec)
		}
	}
	if len(f.problems) > 0 {
		return nil
	}
	return rec
}

func (f *file) translateFunction(fn *jsonFunction, at string, line int) *config.FunctionRecord {
	before := len(f.problems)
	if fn.Name == nil || *fn.Name == "" {
		f.missing(line, at+".name")
	}
	if fn.ReturnType == nil || *fn.ReturnType == "" {
		f.missing(line, at+".return_type")
	}
	if fn.Comment != nil && fn.Comment.Description == nil {
		f.missing(line, at+".comment.description")
	}

	rec := &config.FunctionRecord{Deprecated: fn.Deprecated, Source: model.NewSource(f.path, line)}
	seen := make(map[string]struct{}, len(fn.Params))
	for j, p := range fn.Params {
		pAt := fmt.Sprintf("%s.params[%d]", at, j)
		switch {
		case p == nil:
			f.problemf(line, "%s: expected an object", pAt)
			continue
		case p.Type == nil || *p.Type == "":
			f.missing(line, pAt+".type")
			continue
		case p.Name == nil || *p.Name == "":
			f.missing(line, pAt+".name")
			continue
		}
		if _, dup := seen[*p.Name]; dup {
			f.problemf(line, "%s: duplicate parameter %q", pAt, *p.Name)
			continue
		}
		seen[*p.Name] = struct{}{}
		rec.Params = append(rec.Params, config.ParamRecord{Type: *p.Type, Name: *p.Name})
	}
	if len(f.problems) > before {
		return nil
	}

	rec.Name = *fn.Name
	rec.ReturnType = *fn.ReturnType
	if fn.Comment != nil {
		rec.Comment = &config.CommentRecord{
			Description:   *fn.Comment.Description,
			ParamComments: fn.Comment.ParamComments,
			ReturnValue:   fn.Comment.ReturnValue,
		}
	}
	return rec
}

func (f *file) decodeVersion() *config.VersionRecord {
	var v jsonVersion
	if !f.strictDecode(&v) {
		return nil
	}
	if v.Version == nil || *v.Version == "" {
		f.missing(f.root.Line, "version")
	}
	if v.Entries == nil {
		f.missing(f.root.Line, "entries")
	}
	if len(f.problems) > 0 {
		return nil
	}

	stem := strings.TrimSuffix(filepath.Base(f.path), filepath.Ext(f.path))
	if stem != *v.Version {
		f.problemf(f.root.Line, "file name %q does not match version %q", stem, *v.Version)
		return nil
	}
	return &config.VersionRecord{
		Version: *v.Version,
		Entries: *v.Entries,
		Source:  model.NewSource(f.path, f.root.Line),
	}
}

func (f *file) decodeExclusion() *config.ExclusionRecord {
	var x jsonExclusion
	if !f.strictDecode(&x) {
		return nil
	}
	if x.ExclusionList == nil {
		f.missing(f.root.Line, "exclusion_list")
		return nil
	}

	rec := &config.ExclusionRecord{Source: model.NewSource(f.path, f.root.Line)}
	listNode := lookup(f.root, "exclusion_list")
	for i, g := range *x.ExclusionList {
		line := itemLine(listNode, i)
		at := fmt.Sprintf("exclusion_list[%d]", i)
		if g == nil {
			f.problemf(line, "%s: expected an object", at)
			continue
		}
		if g.Entries == nil {
			f.missing(line, at+".entries")
			continue
		}
		rec.Groups = append(rec.Groups, config.ExclusionGroupRecord{Group: g.Group, Entries: *g.Entries})
	}
	if len(f.problems) > 0 {
		return nil
	}
	return rec
}

// lookup returns the value node for key in a mapping node.
func lookup(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// itemLine returns the line of the i-th element of a sequence node, or 0.
func itemLine(seq *yaml.Node, i int) int {
	if seq == nil || seq.Kind != yaml.SequenceNode || i >= len(seq.Content) {
		return 0
	}
	return seq.Content[i].Line
}
