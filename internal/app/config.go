package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no config path
// is given.
const DefaultConfigFile = "capigen.yaml"

var identifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Outputs names the three generated files.
type Outputs struct {
	PublicHeader    string `yaml:"public_header"`
	ExtensionHeader string `yaml:"extension_header"`
	InternalHeader  string `yaml:"internal_header"`
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Project     string `yaml:"project"`
	DisplayName string `yaml:"display_name"`
	ErrorPrefix string `yaml:"error_prefix"`

	// Definitions, APIVersions and ExclusionList are files or directories.
	// Every file found is loaded; the order of APIVersions is significant.
	Definitions   []string `yaml:"definitions"`
	APIVersions   []string `yaml:"api_versions"`
	ExclusionList []string `yaml:"exclusion_list"`

	GroupOrder             []string `yaml:"group_order"`
	BaseHeader             string   `yaml:"base_header"`
	Outputs                Outputs  `yaml:"outputs"`
	FormatCommand          []string `yaml:"format_command"`
	AllowUncommentedParams bool     `yaml:"allow_uncommented_params"`
	APIStruct              string   `yaml:"api_struct"`
	APIPointer             string   `yaml:"api_pointer"`
	IndexType              string   `yaml:"index_type"`

	// Dir is the directory relative paths are resolved against.
	Dir string `yaml:"-"`

	LogFormat string `yaml:"-"`
	LogLevel  string `yaml:"-"`
}

// DefaultConfig returns the configuration used for every field the project
// file leaves out.
func DefaultConfig() Config {
	return Config{
		AllowUncommentedParams: true,
		IndexType:              "idx_t",
		LogFormat:              "text",
		LogLevel:               "info",
	}
}

// NewConfig validates cfg and returns a copy with relative paths resolved
// against cfg.Dir.
func NewConfig(cfg Config) (*Config, error) {
	var errs []error
	if cfg.Project == "" {
		errs = append(errs, errors.New("project is a required configuration field and cannot be empty"))
	} else if !identifier.MatchString(cfg.Project) {
		errs = append(errs, fmt.Errorf("project %q must be a lower-case C identifier", cfg.Project))
	}
	if len(cfg.Definitions) == 0 {
		errs = append(errs, errors.New("definitions must list at least one file or directory"))
	}
	if cfg.Outputs.PublicHeader == "" || cfg.Outputs.ExtensionHeader == "" || cfg.Outputs.InternalHeader == "" {
		errs = append(errs, errors.New("outputs.public_header, outputs.extension_header and outputs.internal_header are required"))
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel))
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	out := cfg
	out.Definitions = resolveAll(cfg.Dir, cfg.Definitions)
	out.APIVersions = resolveAll(cfg.Dir, cfg.APIVersions)
	out.ExclusionList = resolveAll(cfg.Dir, cfg.ExclusionList)
	out.BaseHeader = resolve(cfg.Dir, cfg.BaseHeader)
	out.Outputs = Outputs{
		PublicHeader:    resolve(cfg.Dir, cfg.Outputs.PublicHeader),
		ExtensionHeader: resolve(cfg.Dir, cfg.Outputs.ExtensionHeader),
		InternalHeader:  resolve(cfg.Dir, cfg.Outputs.InternalHeader),
	}
	return &out, nil
}

// ReadConfig decodes a project file on top of DefaultConfig. Unknown keys are
// rejected. Dir is set to the directory holding path.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to resolve config path: %w", err)
	}
	cfg.Dir = filepath.Dir(abs)
	return cfg, nil
}

// Roots returns every input root in load order: definitions, then API
// versions, then exclusion lists.
func (c *Config) Roots() []string {
	roots := make([]string, 0, len(c.Definitions)+len(c.APIVersions)+len(c.ExclusionList))
	roots = append(roots, c.Definitions...)
	roots = append(roots, c.APIVersions...)
	roots = append(roots, c.ExclusionList...)
	return roots
}

// OutputFiles returns the three output paths.
func (c *Config) OutputFiles() []string {
	return []string{c.Outputs.PublicHeader, c.Outputs.ExtensionHeader, c.Outputs.InternalHeader}
}

func resolve(dir, path string) string {
	if path == "" || dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func resolveAll(dir string, paths []string) []string {
	if paths == nil {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = resolve(dir, p)
	}
	return out
}
