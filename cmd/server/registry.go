package main

import (
	"github.com/KirkDiggler/monster-battle/internal/battle"
	"github.com/KirkDiggler/monster-battle/internal/data"
	"github.com/KirkDiggler/monster-battle/internal/errors"
)

// loadRegistry builds the rules registry over the catalog in dir, or the
// built-in catalog when dir is empty
func loadRegistry(dir string) (*battle.Registry, error) {
	var (
		catalog *data.Catalog
		err     error
	)
	if dir == "" {
		catalog, err = data.LoadDefault()
	} else {
		catalog, err = data.LoadDir(dir)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	registry, err := battle.NewDefaultRegistry(catalog)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build registry")
	}
	return registry, nil
}
