package neural

// Perceptron is one linear output unit.
type Perceptron struct {
	Weights []float64
	// Changes holds the previous update of every weight, used as momentum.
	Changes []float64
	Bias    float64
}

func newPerceptron(inputSize int) *Perceptron {
	return &Perceptron{
		Weights: make([]float64, inputSize),
		Changes: make([]float64, inputSize),
	}
}

// sum only visits the non-zero inputs.
func (p *Perceptron) sum(input []float64) float64 {
	s := p.Bias
	for k, x := range input {
		if x != 0 {
			s += p.Weights[k] * x
		}
	}
	return s
}

// update applies one delta-rule step with momentum. A zero error still lets
// the momentum of the previous step move the weights.
func (p *Perceptron) update(input []float64, delta, momentum float64, hasError bool) {
	for k := range input {
		change := momentum * p.Changes[k]
		if hasError {
			change += delta * input[k]
		}
		p.Changes[k] = change
		p.Weights[k] += change
	}
	if hasError {
		p.Bias += delta
	}
}

// activate cuts negative sums to zero and scales the others by alpha.
func activate(s, alpha float64) float64 {
	if s < 0 {
		return 0
	}
	return alpha * s
}
