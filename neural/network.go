// Package neural implements a single layer of independent linear units with a
// rectified activation scaled by alpha, trained example by example with the
// delta rule and momentum.
package neural

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"nlu-lab/errors"
	"time"
)

// Sample is one encoded training example.
type Sample struct {
	Input  []float64
	Output []float64
}

type Network struct {
	config      Config
	log         *slog.Logger
	inputSize   int
	outputSize  int
	perceptrons []*Perceptron
	status      *Status
}

// New builds an untrained network. Zero momentum and thresholds are kept as
// given, see Config.WithDefaults.
func New(config Config, log *slog.Logger) (*Network, error) {
	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Network{config: config, log: log}, nil
}

func (n *Network) Config() Config {
	return n.config
}

// Status returns the status of the last training run, if any.
func (n *Network) Status() (Status, bool) {
	if n.status == nil {
		return Status{}, false
	}
	return *n.status, true
}

// InputSize and OutputSize are zero until the network is trained or restored.
func (n *Network) InputSize() int {
	return n.inputSize
}

func (n *Network) OutputSize() int {
	return n.outputSize
}

func (n *Network) Trained() bool {
	return len(n.perceptrons) > 0
}

// Run computes the activation of every unit for the input vector.
func (n *Network) Run(input []float64) ([]float64, error) {
	if !n.Trained() {
		return nil, errors.ErrNotTrained
	}
	if len(input) != n.inputSize {
		return nil, fmt.Errorf("%w: input of %d, network expects %d",
			errors.ErrDimensionMismatch, len(input), n.inputSize)
	}
	outputs := make([]float64, n.outputSize)
	n.run(input, outputs)
	return outputs, nil
}

func (n *Network) run(input, outputs []float64) {
	for i, p := range n.perceptrons {
		outputs[i] = activate(p.sum(input), n.config.Alpha)
	}
}

// Train returns immediately when the current status already meets a stop
// condition for a network of the same shape. Otherwise every weight, bias and
// momentum is reset to zero before training.
func (n *Network) Train(ctx context.Context, data []Sample) (Status, error) {
	inputSize, outputSize, err := dimensions(data)
	if err != nil {
		return Status{}, err
	}
	if n.status != nil && n.status.Converged(n.config) {
		if n.inputSize == inputSize && n.outputSize == outputSize {
			return *n.status, nil
		}
		n.log.Warn("Converged network does not fit the training set, rebuilding it",
			"inputs", n.inputSize, "outputs", n.outputSize,
			"expected_inputs", inputSize, "expected_outputs", outputSize)
	}
	n.initialize(inputSize, outputSize)
	return n.loop(ctx, data)
}

// Retrain always starts from zeroed weights, whatever the current status.
func (n *Network) Retrain(ctx context.Context, data []Sample) (Status, error) {
	n.status = nil
	return n.Train(ctx, data)
}

// Resume keeps the current weights and momentum and runs a new series of epochs.
func (n *Network) Resume(ctx context.Context, data []Sample) (Status, error) {
	inputSize, outputSize, err := dimensions(data)
	if err != nil {
		return Status{}, err
	}
	if !n.Trained() {
		return Status{}, errors.ErrNotTrained
	}
	if n.inputSize != inputSize || n.outputSize != outputSize {
		return Status{}, fmt.Errorf("%w: network is %dx%d, training set is %dx%d",
			errors.ErrDimensionMismatch, n.inputSize, n.outputSize, inputSize, outputSize)
	}
	n.status = newStatus()
	return n.loop(ctx, data)
}

// Clone returns a deep copy sharing nothing with n but the logger.
func (n *Network) Clone() *Network {
	clone := &Network{
		config:     n.config,
		log:        n.log,
		inputSize:  n.inputSize,
		outputSize: n.outputSize,
	}
	if n.status != nil {
		status := *n.status
		clone.status = &status
	}
	clone.perceptrons = make([]*Perceptron, len(n.perceptrons))
	for i, p := range n.perceptrons {
		clone.perceptrons[i] = &Perceptron{
			Weights: append([]float64(nil), p.Weights...),
			Changes: append([]float64(nil), p.Changes...),
			Bias:    p.Bias,
		}
	}
	return clone
}

func (n *Network) initialize(inputSize, outputSize int) {
	n.inputSize = inputSize
	n.outputSize = outputSize
	n.perceptrons = make([]*Perceptron, outputSize)
	for i := range n.perceptrons {
		n.perceptrons[i] = newPerceptron(inputSize)
	}
	n.status = newStatus()
}

// loop runs epochs until a stop condition holds. Updates are applied in place
// after each example, in order. Cancellation is only observed between epochs.
func (n *Network) loop(ctx context.Context, data []Sample) (Status, error) {
	status := n.status
	outputs := make([]float64, n.outputSize)
	for !status.Converged(n.config) {
		if err := ctx.Err(); err != nil {
			return *status, err
		}
		start := time.Now()
		status.Iterations++
		lastError := status.Error
		total := 0.0
		for _, sample := range data {
			n.run(sample.Input, outputs)
			total += n.calculateDeltas(sample.Input, sample.Output, outputs)
		}
		status.Error = total / float64(len(data))
		status.DeltaError = math.Abs(status.Error - lastError)
		n.log.Debug("Epoch",
			"iteration", status.Iterations,
			"loss", status.Error,
			"delta", status.DeltaError,
			"elapsed", time.Since(start))
	}
	return *status, nil
}

// calculateDeltas updates every unit for one example and returns the mean squared error.
func (n *Network) calculateDeltas(input, target, outputs []float64) float64 {
	c := n.config
	errSum := 0.0
	for i, p := range n.perceptrons {
		output := outputs[i]
		currentError := target[i] - output
		if currentError == 0 {
			p.update(input, 0, c.Momentum, false)
			continue
		}
		errSum += currentError * currentError
		slope := 1.0
		if output < 0 {
			slope = c.Alpha
		}
		p.update(input, slope*currentError*c.LearningRate, c.Momentum, true)
	}
	return errSum / float64(n.outputSize)
}

func dimensions(data []Sample) (int, int, error) {
	if len(data) == 0 {
		return 0, 0, errors.ErrEmptyTrainingSet
	}
	inputSize, outputSize := len(data[0].Input), len(data[0].Output)
	if inputSize == 0 || outputSize == 0 {
		return 0, 0, errors.ErrEmptyTrainingSet
	}
	for i, sample := range data {
		if len(sample.Input) != inputSize || len(sample.Output) != outputSize {
			return 0, 0, fmt.Errorf("%w: sample %d is %dx%d, expected %dx%d",
				errors.ErrDimensionMismatch, i, len(sample.Input), len(sample.Output), inputSize, outputSize)
		}
	}
	return inputSize, outputSize, nil
}
