package versions

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/capigen/internal/config"
	"github.com/specialistvlad/capigen/internal/ctxlog"
	"github.com/specialistvlad/capigen/internal/model"
	"golang.org/x/mod/semver"
)

// Registry is the validated sequence of API versions.
type Registry struct {
	// Versions in ascending order.
	Versions []*model.ApiVersion
	// Latest is the highest declared version.
	Latest model.Version
}

// Build validates the manifests, given in declared order, against the set of
// defined functions.
func Build(ctx context.Context, records []*config.VersionRecord, functions map[string]*model.FunctionDefinition) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Validating API version manifests.", "manifests", len(records))

	if len(records) == 0 {
		return nil, model.NewError(model.ErrMalformedInput, "no api version manifests were declared")
	}

	versions, err := parseAll(records)
	if err != nil {
		return nil, err
	}
	if err := checkOrder(records); err != nil {
		return nil, err
	}
	if err := checkEntries(versions, functions); err != nil {
		return nil, err
	}

	reg := &Registry{Versions: versions, Latest: versions[len(versions)-1].Version}
	logger.Debug("API version manifests are valid.", "latest", reg.Latest.String())
	return reg, nil
}

// parseAll parses every manifest version, reporting all malformed strings.
func parseAll(records []*config.VersionRecord) ([]*model.ApiVersion, error) {
	var items []string
	versions := make([]*model.ApiVersion, 0, len(records))
	for _, rec := range records {
		v, err := Parse(rec.Version)
		if err != nil {
			items = append(items, fmt.Sprintf("%v (%s)", err, rec.Source))
			continue
		}
		versions = append(versions, &model.ApiVersion{Version: v, Entries: rec.Entries, Source: rec.Source})
	}
	if len(items) > 0 {
		return nil, model.NewError(model.ErrVersionFormat, "", items...)
	}
	return versions, nil
}

// Directory roots are walked in file name order, so v0.10.0.json sorts
// before v0.2.0.json.
const listExplicitlyHint = "files in a directory are read in name order, list the manifest files explicitly in api_versions"

// siblingFiles reports whether a and b are different files in one directory.
func siblingFiles(a, b model.Source) bool {
	return a.FilePath != b.FilePath && filepath.Dir(a.FilePath) == filepath.Dir(b.FilePath)
}

// checkOrder requires the declared order to be strictly ascending.
func checkOrder(records []*config.VersionRecord) error {
	var items []string
	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]
		switch c := semver.Compare(prev.Version, cur.Version); {
		case c == 0:
			items = append(items, fmt.Sprintf("%s declared twice (%s and %s)", cur.Version, prev.Source, cur.Source))
		case c > 0:
			item := fmt.Sprintf("%s (%s) is declared after %s (%s)", cur.Version, cur.Source, prev.Version, prev.Source)
			if siblingFiles(prev.Source, cur.Source) {
				item += "; " + listExplicitlyHint
			}
			items = append(items, item)
		}
	}
	if len(items) > 0 {
		return model.NewError(model.ErrVersionOrder, "manifests must be declared in ascending order", items...)
	}
	return nil
}

// checkEntries requires each entry to name a defined function that no other
// manifest introduces.
func checkEntries(versions []*model.ApiVersion, functions map[string]*model.FunctionDefinition) error {
	candidates := make([]string, 0, len(functions))
	for name := range functions {
		candidates = append(candidates, name)
	}

	introducedBy := make(map[string]*model.ApiVersion)
	var duplicates, unknown []string
	for _, v := range versions {
		for _, name := range v.Entries {
			if first, seen := introducedBy[name]; seen {
				duplicates = append(duplicates, fmt.Sprintf("%s (%s at %s and %s at %s)",
					name, first.Version, first.Source, v.Version, v.Source))
				continue
			}
			introducedBy[name] = v
			if _, ok := functions[name]; !ok {
				unknown = append(unknown, model.UnknownSymbolItem(name, v.Source, candidates))
			}
		}
	}

	var errs []error
	if len(duplicates) > 0 {
		errs = append(errs, model.NewError(model.ErrDuplicateSymbol, "functions introduced by more than one api version", duplicates...))
	}
	if len(unknown) > 0 {
		errs = append(errs, model.NewError(model.ErrUnknownSymbol, "api version entries name undefined functions", unknown...))
	}
	return errors.Join(errs...)
}
