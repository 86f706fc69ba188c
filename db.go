// apps/go-term/db.go
//
// Wiring helpers shared by the commands: open the configured key/value store
// and load the dictionary.

package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/store"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// openStore opens the KV named by the resolved config.
func openStore(ctx context.Context) (store.KV, error) {
	kv, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("driver", cfg.Store.Driver).Str("path", cfg.Store.Path).Msg("store opened")
	return kv, nil
}

// loadDictionary loads the word lists, honouring configured overrides.
func loadDictionary() (*words.Dictionary, error) {
	dict, err := words.Load(cfg.Words.Files)
	if err != nil {
		return nil, err
	}
	for _, n := range dict.Lengths() {
		log.Debug().Int("length", n).Int("words", dict.Count(n)).Msg("word list loaded")
	}
	return dict, nil
}
