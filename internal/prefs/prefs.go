// Package prefs persists the global display toggles shared by every mode.
package prefs

import (
	"context"
	"strconv"

	"github.com/robalobadob/wordle/apps/go-term/internal/store"
)

// Storage keys. They are global, not per mode.
const (
	KeyDarkMode     = "darkMode"
	KeyHighContrast = "highContrast"
)

// Prefs holds the display toggles.
type Prefs struct {
	DarkMode     bool `json:"darkMode"`
	HighContrast bool `json:"highContrast"`
}

// Load reads the toggles; anything but a parseable true reads as false.
func Load(ctx context.Context, kv store.KV) (Prefs, error) {
	dark, err := readBool(ctx, kv, KeyDarkMode)
	if err != nil {
		return Prefs{}, err
	}
	contrast, err := readBool(ctx, kv, KeyHighContrast)
	if err != nil {
		return Prefs{}, err
	}
	return Prefs{DarkMode: dark, HighContrast: contrast}, nil
}

// Save writes both toggles together.
func Save(ctx context.Context, kv store.KV, p Prefs) error {
	return kv.SetMany(ctx, map[string]string{
		KeyDarkMode:     strconv.FormatBool(p.DarkMode),
		KeyHighContrast: strconv.FormatBool(p.HighContrast),
	})
}

func readBool(ctx context.Context, kv store.KV, key string) (bool, error) {
	v, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	b, _ := strconv.ParseBool(v)
	return b, nil
}
