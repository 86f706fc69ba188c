package store

import (
	"context"
	"fmt"
)

// DriverMemory selects the in-memory KV.
const DriverMemory = "memory"

// Open returns a KV for the configured driver: "memory", "sqlite3" or "sqlite".
func Open(ctx context.Context, driver, path string) (KV, error) {
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case "", DriverCGO, DriverPureGo:
		s, err := OpenSQLite(ctx, driver, path)
		if err != nil {
			return nil, fmt.Errorf("open store %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
