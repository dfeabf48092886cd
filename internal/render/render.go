package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/specialistvlad/capigen/internal/captable"
	"github.com/specialistvlad/capigen/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ErrUnvalidatedTable is returned when the public header is requested for a
// table whose exclusions were never checked.
var ErrUnvalidatedTable = errors.New("the public header requires a function table with validated exclusions")

// Options configures the generated text.
type Options struct {
	// Project is the lower-case C identifier prefix, e.g. "duckdb".
	Project string
	// DisplayName appears in the file banners. Defaults to Project.
	DisplayName string
	// ErrorPrefix names the C error enumerator the entrypoint macros compare
	// against, "<prefix>Error". Defaults to DisplayName.
	ErrorPrefix string
	// APIStruct names the function table struct. Defaults to
	// "<project>_ext_api_v<major>".
	APIStruct string
	// APIPointer names the global pointer to the struct. Defaults to
	// "<project>_ext_api".
	APIPointer string
	// IndexType is the integer type of the CreateApi arguments.
	IndexType string
	// BaseHeader is the template the public header is built from. Empty
	// selects a minimal built-in one.
	BaseHeader string

	// File names shown in the banners. The extension headers include
	// PublicHeaderName.
	PublicHeaderName    string
	ExtensionHeaderName string
	InternalHeaderName  string
}

// Headers holds the three generated files.
type Headers struct {
	Public    []byte
	Extension []byte
	Internal  []byte
}

// Renderer turns a validated model and its function table into header text.
type Renderer struct {
	opts      Options
	prefix    string
	templates *template.Template
}

// New creates a Renderer. Options left empty get their defaults.
func New(opts Options) (*Renderer, error) {
	if opts.Project == "" {
		return nil, errors.New("render: project name is required")
	}
	if opts.DisplayName == "" {
		opts.DisplayName = opts.Project
	}
	if opts.ErrorPrefix == "" {
		opts.ErrorPrefix = opts.DisplayName
	}
	if opts.APIPointer == "" {
		opts.APIPointer = opts.Project + "_ext_api"
	}
	if opts.IndexType == "" {
		opts.IndexType = "idx_t"
	}
	if opts.PublicHeaderName == "" {
		opts.PublicHeaderName = opts.Project + ".h"
	}
	if opts.ExtensionHeaderName == "" {
		opts.ExtensionHeaderName = opts.Project + "_extension.h"
	}
	if opts.InternalHeaderName == "" {
		opts.InternalHeaderName = "extension_api.hpp"
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse templates: %w", err)
	}
	return &Renderer{
		opts:      opts,
		prefix:    strings.ToUpper(opts.Project),
		templates: tmpl,
	}, nil
}

// title turns a snake_case group name into "Title Case Words". A Caser keeps
// state, so each call gets its own.
func (r *Renderer) title(name string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(strings.ToLower(name), "_", " "))
}

func (r *Renderer) structName(latest model.Version) string {
	if r.opts.APIStruct != "" {
		return r.opts.APIStruct
	}
	return fmt.Sprintf("%s_ext_api_v%d", r.opts.Project, latest.Major)
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render: template %s: %w", name, err)
	}
	return buf.String(), nil
}

func (r *Renderer) banner(file string) (string, error) {
	return r.execute("banner.tmpl", struct{ DisplayName, File string }{r.opts.DisplayName, file})
}

func (r *Renderer) baseHeader() (string, error) {
	if r.opts.BaseHeader != "" {
		return r.opts.BaseHeader, nil
	}
	return r.execute("base_header.tmpl", struct{ Prefix string }{r.prefix})
}

// All renders the three headers.
func (r *Renderer) All(m *model.Model, t *captable.Table) (*Headers, error) {
	public, err := r.Public(m, t)
	if err != nil {
		return nil, err
	}
	extension, err := r.Extension(m, t)
	if err != nil {
		return nil, err
	}
	internal, err := r.Internal(t)
	if err != nil {
		return nil, err
	}
	return &Headers{Public: public, Extension: extension, Internal: internal}, nil
}

// Public renders the public header: the base header with its generation mark
// replaced by one section per function group.
func (r *Renderer) Public(m *model.Model, t *captable.Table) ([]byte, error) {
	if !t.ExclusionsValidated() {
		return nil, ErrUnvalidatedTable
	}

	base, err := r.baseHeader()
	if err != nil {
		return nil, err
	}
	startMark := fmt.Sprintf("// %s_START_OF_HEADER\n", r.prefix)
	contentMark := fmt.Sprintf("// %s_FUNCTIONS_ARE_GENERATED_HERE\n", r.prefix)

	start := strings.Index(base, startMark)
	if start < 0 {
		return nil, model.NewError(model.ErrMalformedInput, "base header has no start mark", strings.TrimSpace(startMark))
	}
	base = base[start+len(startMark):]
	if !strings.Contains(base, contentMark) {
		return nil, model.NewError(model.ErrMalformedInput, "base header has no generation mark", strings.TrimSpace(contentMark))
	}

	banner, err := r.banner(r.opts.PublicHeaderName)
	if err != nil {
		return nil, err
	}
	body := strings.Replace(base, contentMark, r.groupSections(m.Groups), 1)
	return []byte(banner + body), nil
}

// Extension renders the header extensions compile against: the API struct,
// the version defines, one pointer define per table function and the
// entrypoint macros.
func (r *Renderer) Extension(m *model.Model, t *captable.Table) ([]byte, error) {
	structName := r.structName(t.Latest())

	macros, err := r.execute("entrypoint.tmpl", struct {
		Prefix, Project, ErrorPrefix, Struct, Pointer string
	}{r.prefix, r.opts.Project, r.opts.ErrorPrefix, structName, r.opts.APIPointer})
	if err != nil {
		return nil, err
	}

	body := apiStruct(t, structName) +
		r.versionDefines(t.Latest()) + "\n\n" +
		r.pointerDefines(m.Groups, t, r.opts.APIPointer) +
		macros
	return r.extensionFile(r.opts.ExtensionHeaderName, body)
}

// Internal renders the host-side header: the API struct, the CreateApi
// function that performs negotiation, and the version defines.
func (r *Renderer) Internal(t *captable.Table) ([]byte, error) {
	structName := r.structName(t.Latest())
	body := apiStruct(t, structName) +
		r.createAPI(t, structName) +
		r.versionDefines(t.Latest())
	return r.extensionFile(r.opts.InternalHeaderName, body)
}

func (r *Renderer) extensionFile(file, body string) ([]byte, error) {
	banner, err := r.banner(file)
	if err != nil {
		return nil, err
	}
	content, err := r.execute("extension.tmpl", struct{ Include, Body string }{r.opts.PublicHeaderName, body})
	if err != nil {
		return nil, err
	}
	return []byte(banner + content), nil
}
