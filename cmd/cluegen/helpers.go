package main

import (
	"github.com/at-ishikawa/cluegen/internal/config"
)

func loadConfig() (*config.Config, error) {
	return config.Load(configFile, config.WithAPI(api.String()))
}
