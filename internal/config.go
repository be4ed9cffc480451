package internal

import (
	"fmt"
	"nlu-lab/errors"
	"nlu-lab/neural"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

type Config struct {
	CorpusPath        string `env:"CORPUS_PATH,required=true"`
	Language          string `env:"LANGUAGE,default=en"`
	SnapshotBackend   string `env:"SNAPSHOT_BACKEND,default=file"`
	SnapshotPath      string `env:"SNAPSHOT_PATH,default=training.net"`
	SnapshotName      string `env:"SNAPSHOT_NAME,default=training"`
	BadgerFilepath    string `env:"BADGER_FILEPATH,default=data/badger"`
	OverwriteSnapshot bool   `env:"OVERWRITE_SNAPSHOT,default=false"`
	LogLevel          string `env:"LOG_LEVEL,default=INFO"`

	// Unset values fall back to the network defaults. An explicit 0 is kept.
	MaxIterations    *int     `env:"MAX_ITERATIONS"`
	ErrorThresh      *float64 `env:"ERROR_THRESH"`
	DeltaErrorThresh *float64 `env:"DELTA_ERROR_THRESH"`
	LearningRate     *float64 `env:"LEARNING_RATE"`
	Momentum         *float64 `env:"MOMENTUM"`
	Alpha            *float64 `env:"ALPHA"`
}

// LoadConfig reads an optional .env file then decodes the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.SnapshotBackend != BackendFile && config.SnapshotBackend != BackendBadger {
		return Config{}, fmt.Errorf("%w: %q", errors.ErrUnknownBackend, config.SnapshotBackend)
	}
	return config, nil
}

// Network returns the validated hyperparameters of the network.
func (c Config) Network() (neural.Config, error) {
	d := neural.DefaultConfig()
	config := neural.Config{
		MaxIterations:    lo.FromPtrOr(c.MaxIterations, d.MaxIterations),
		ErrorThresh:      lo.FromPtrOr(c.ErrorThresh, d.ErrorThresh),
		DeltaErrorThresh: lo.FromPtrOr(c.DeltaErrorThresh, d.DeltaErrorThresh),
		LearningRate:     lo.FromPtrOr(c.LearningRate, d.LearningRate),
		Momentum:         lo.FromPtrOr(c.Momentum, d.Momentum),
		Alpha:            lo.FromPtrOr(c.Alpha, d.Alpha),
	}
	return config, config.Validate()
}
