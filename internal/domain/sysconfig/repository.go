package sysconfig

import "context"

// ConfigRepository persists system_configs rows
type ConfigRepository interface {
	// ReadAll returns every configuration row
	ReadAll(ctx context.Context) ([]Entry, error)

	// Upsert inserts or overwrites key. A nil description leaves an existing description untouched.
	Upsert(ctx context.Context, key, value string, description *string) error

	// InsertIfMissing inserts entry only when its key does not exist yet, reporting whether it did
	InsertIfMissing(ctx context.Context, entry Entry) (bool, error)
}
