package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	CorpusPath string `envconfig:"E2E_CORPUS_PATH" default:"../data/corpus.json"`
	Language   string `envconfig:"E2E_LANGUAGE" default:"en"`
	// E2E_DEBUG_JSON dumps every reply as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
