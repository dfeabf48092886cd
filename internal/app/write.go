package app

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/specialistvlad/capigen/internal/ctxlog"
)

type outputFile struct {
	path    string
	content []byte
}

// writeOutputs writes every rendered header, creating parent directories.
func writeOutputs(ctx context.Context, files []outputFile) error {
	logger := ctxlog.FromContext(ctx)
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory for %s: %w", f.path, err)
		}
		if err := os.WriteFile(f.path, f.content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.path, err)
		}
		logger.Debug("Header written.", "path", f.path, "bytes", len(f.content))
	}
	return nil
}

// runFormatter runs the configured format command once per written file.
// A failing formatter leaves the unformatted file in place.
func (a *App) runFormatter(ctx context.Context, paths []string) {
	if len(a.config.FormatCommand) == 0 {
		return
	}
	logger := ctxlog.FromContext(ctx)
	for _, path := range paths {
		args := append(append([]string{}, a.config.FormatCommand[1:]...), path)
		cmd := exec.CommandContext(ctx, a.config.FormatCommand[0], args...)
		cmd.Dir = a.config.Dir
		if out, err := cmd.CombinedOutput(); err != nil {
			logger.Warn("Formatter failed; leaving the file unformatted.",
				"command", a.config.FormatCommand[0], "path", path, "error", err, "output", string(out))
			continue
		}
		logger.Debug("Header formatted.", "path", path)
	}
}
