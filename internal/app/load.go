package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/capigen/internal/config"
	"github.com/specialistvlad/capigen/internal/ctxlog"
	"github.com/specialistvlad/capigen/internal/fsutil"
)

// LoadSources finds every input file and hands it to the loader that owns its
// extension. Consecutive files of the same loader are loaded together, so the
// records keep the global file order and each loader reports all problems in
// its batch at once.
func (a *App) LoadSources(ctx context.Context) (*config.Sources, error) {
	logger := ctxlog.FromContext(ctx)

	byExt := make(map[string]config.Loader)
	var extensions []string
	for _, l := range a.loaders {
		for _, ext := range l.Extensions() {
			byExt[ext] = l
			extensions = append(extensions, ext)
		}
	}

	paths, err := fsutil.FindFiles(a.config.Roots(), extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to find definition files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no definition files found (looked for %s)", strings.Join(extensions, ", "))
	}
	logger.Debug("Found definition files.", "count", len(paths))

	sources := &config.Sources{}
	var errs []error
	for start := 0; start < len(paths); {
		loader := byExt[strings.ToLower(filepath.Ext(paths[start]))]
		end := start + 1
		for end < len(paths) && byExt[strings.ToLower(filepath.Ext(paths[end]))] == loader {
			end++
		}

		batch, err := loader.Load(ctx, paths[start:end]...)
		if err != nil {
			errs = append(errs, err)
		} else {
			sources.Merge(batch)
		}
		start = end
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	logger.Info("Definitions loaded.",
		"files", len(paths), "groups", len(sources.Groups),
		"api_versions", len(sources.Versions), "exclusion_lists", len(sources.Exclusions))
	return sources, nil
}
