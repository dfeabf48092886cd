// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFiles expands each root into the files below it whose name ends with
// one of the given extensions. A root that is itself a file is kept as long
// as its extension matches. Directories are walked in lexical order and a file
// reachable from several roots is reported once, at its first position, so
// the result order is fully determined by the roots.
func FindFiles(roots []string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	var files []string
	seen := make(map[string]struct{})
	add := func(path string) {
		clean := filepath.Clean(path)
		if _, dup := seen[clean]; dup {
			return
		}
		seen[clean] = struct{}{}
		files = append(files, clean)
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", root, err)
		}
		if !info.IsDir() {
			if !hasExtension(root, extensions) {
				return nil, fmt.Errorf("unsupported file type %s: expected one of %s", root, strings.Join(extensions, ", "))
			}
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && hasExtension(d.Name(), extensions) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
