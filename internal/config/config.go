package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	APIFreeDictionary = "free_dictionary"
	APIWordsAPI       = "words_api"
)

type Config struct {
	Words        WordsConfig        `mapstructure:"words"`
	Enricher     EnricherConfig     `mapstructure:"enricher"`
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
}

type WordsConfig struct {
	InputFile  string `mapstructure:"input_file" validate:"required"`
	OutputFile string `mapstructure:"output_file" validate:"required"`
}

type EnricherConfig struct {
	Delay time.Duration `mapstructure:"delay" validate:"gte=0"`
}

type DictionariesConfig struct {
	API            string               `mapstructure:"api" validate:"oneof=free_dictionary words_api"`
	FreeDictionary FreeDictionaryConfig `mapstructure:"free_dictionary"`
	RapidAPI       RapidAPIConfig       `mapstructure:"rapidapi"`
}

type FreeDictionaryConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type RapidAPIConfig struct {
	Host string `mapstructure:"host"`
	Key  string `mapstructure:"key"`
}

// Option overrides a configuration value after the file and environment are read.
type Option func(v *viper.Viper)

// WithAPI selects the dictionary API, ignoring the configured one. An empty api is a no-op.
func WithAPI(api string) Option {
	return func(v *viper.Viper) {
		if api != "" {
			v.Set("dictionaries.api", api)
		}
	}
}

func Load(configFile string, opts ...Option) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/cluegen")
	}

	v.SetDefault("words.input_file", "wordsList.json")
	v.SetDefault("words.output_file", "crosswordData.json")
	v.SetDefault("enricher.delay", time.Second)
	v.SetDefault("dictionaries.api", APIFreeDictionary)
	v.SetDefault("dictionaries.free_dictionary.base_url", "https://api.dictionaryapi.dev/api/v2/entries/en")
	v.SetDefault("dictionaries.free_dictionary.timeout", time.Duration(0))

	// Bind RapidAPI config to environment variables only (not from config file)
	if err := v.BindEnv("dictionaries.rapidapi.host", "RAPID_API_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_HOST environment variable: %w", err)
	}
	if err := v.BindEnv("dictionaries.rapidapi.key", "RAPID_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_KEY environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	for _, opt := range opts {
		opt(v)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg and returns an error listing every invalid field.
func (cfg *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator > %w", err)
	}

	err = validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate.Struct > %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fieldErr.Translate(trans))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
