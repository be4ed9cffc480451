package neural

import (
	"fmt"
	"nlu-lab/errors"
)

// PerceptronSnapshot is the persisted state of one unit. Momentum is not kept.
type PerceptronSnapshot struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// Snapshot is the persisted state of a network: hyperparameters, shape,
// training status and the weights of every unit.
type Snapshot struct {
	ID string `json:"id,omitempty"`
	Config
	OutputSize  int                  `json:"outputSize"`
	Status      *Status              `json:"status,omitempty"`
	Perceptrons []PerceptronSnapshot `json:"perceptrons"`
}

// Snapshot copies the current state of a trained network.
func (n *Network) Snapshot() (Snapshot, error) {
	if !n.Trained() {
		return Snapshot{}, errors.ErrNotTrained
	}
	s := Snapshot{
		Config:      n.config,
		OutputSize:  n.outputSize,
		Perceptrons: make([]PerceptronSnapshot, len(n.perceptrons)),
	}
	if n.status != nil && n.status.finite() {
		status := *n.status
		s.Status = &status
	}
	for i, p := range n.perceptrons {
		weights := make([]float64, len(p.Weights))
		copy(weights, p.Weights)
		s.Perceptrons[i] = PerceptronSnapshot{Weights: weights, Bias: p.Bias}
	}
	return s, nil
}

// Restore replaces the hyperparameters, weights and status of the network.
// Momentum buffers restart at zero.
func (n *Network) Restore(s Snapshot) error {
	if s.OutputSize == 0 || s.OutputSize != len(s.Perceptrons) {
		return fmt.Errorf("%w: %d perceptrons for an output size of %d",
			errors.ErrInvalidSnapshot, len(s.Perceptrons), s.OutputSize)
	}
	inputSize := len(s.Perceptrons[0].Weights)
	for i, p := range s.Perceptrons {
		if len(p.Weights) != inputSize {
			return fmt.Errorf("%w: perceptron %d has %d weights, expected %d",
				errors.ErrInvalidSnapshot, i, len(p.Weights), inputSize)
		}
	}
	config := s.Config.WithDefaults()
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidSnapshot, err)
	}

	n.config = config
	n.initialize(inputSize, s.OutputSize)
	for i, p := range s.Perceptrons {
		copy(n.perceptrons[i].Weights, p.Weights)
		n.perceptrons[i].Bias = p.Bias
	}
	n.status = nil
	if s.Status != nil {
		status := *s.Status
		n.status = &status
	}
	return nil
}
