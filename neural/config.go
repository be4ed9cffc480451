package neural

import (
	"fmt"
	"nlu-lab/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds the hyperparameters shared by every unit of the network.
type Config struct {
	// MaxIterations caps the number of training epochs.
	MaxIterations int `json:"maxIterations" validate:"gt=0"`
	// ErrorThresh stops training once the mean epoch error falls to it.
	ErrorThresh float64 `json:"errorThresh" validate:"gte=0"`
	// DeltaErrorThresh stops training once the error moves less than it between two epochs.
	DeltaErrorThresh float64 `json:"deltaErrorThresh" validate:"gte=0"`
	LearningRate     float64 `json:"learningRate" validate:"gt=0"`
	// Momentum is the share of the previous update carried into the next one.
	Momentum float64 `json:"momentum" validate:"gte=0,lt=1"`
	// Alpha scales the output of positive sums. Negative sums give 0.
	Alpha float64 `json:"alpha" validate:"gt=0,lte=1"`
}

func DefaultConfig() Config {
	return Config{
		MaxIterations:    20000,
		ErrorThresh:      0.000005,
		DeltaErrorThresh: 0.00000000001,
		LearningRate:     0.7,
		Momentum:         0.5,
		Alpha:            0.08,
	}
}

// WithDefaults fills the fields that cannot be zero: MaxIterations,
// LearningRate and Alpha. Momentum and both thresholds may legitimately be 0
// and are left untouched, so start from DefaultConfig to override a subset.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.MaxIterations == 0 {
		c.MaxIterations = d.MaxIterations
	}
	if c.LearningRate == 0 {
		c.LearningRate = d.LearningRate
	}
	if c.Alpha == 0 {
		c.Alpha = d.Alpha
	}
	return c
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	return nil
}
