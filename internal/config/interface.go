package config

import "context"

// Loader is the interface for a format-specific definition loader.
type Loader interface {
	// Load reads every given file and translates its contents into records.
	// Records are returned in file order, then declaration order.
	Load(ctx context.Context, paths ...string) (*Sources, error)

	// Extensions lists the file extensions (with leading dot) this loader
	// understands.
	Extensions() []string
}
