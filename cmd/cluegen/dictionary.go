package main

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/cluegen/internal/config"
	"github.com/at-ishikawa/cluegen/internal/dictionary"
	"github.com/at-ishikawa/cluegen/internal/dictionary/freedictionary"
	"github.com/at-ishikawa/cluegen/internal/dictionary/rapidapi"
	"github.com/spf13/pflag"
)

type API string

func (a *API) Set(val string) error {
	for _, api := range allAPIs {
		if val == string(api) {
			*a = api
			return nil
		}
	}
	return fmt.Errorf("invalid API: %s", val)
}

func (a API) String() string {
	return string(a)
}

func (a *API) Type() string {
	return "API"
}

const (
	APIFreeDictionary     API = config.APIFreeDictionary
	APIWordsAPIInRapidAPI API = config.APIWordsAPI
)

var (
	_       pflag.Value = (*API)(nil)
	allAPIs             = []API{APIFreeDictionary, APIWordsAPIInRapidAPI}
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newDefinitionLookup returns the lookup for the configured API and a closer releasing it.
func newDefinitionLookup(cfg *config.Config) (dictionary.DefinitionLookup, io.Closer, error) {
	switch API(cfg.Dictionaries.API) {
	case APIWordsAPIInRapidAPI:
		client := rapidapi.NewClient(cfg.Dictionaries.RapidAPI.Host, cfg.Dictionaries.RapidAPI.Key)
		return client, client, nil
	case APIFreeDictionary:
		return freedictionary.NewClient(
			cfg.Dictionaries.FreeDictionary.BaseURL,
			cfg.Dictionaries.FreeDictionary.Timeout,
		), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("invalid API: %s", cfg.Dictionaries.API)
	}
}
