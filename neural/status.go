package neural

import "math"

// Status tracks the progress of a training run.
type Status struct {
	Iterations int     `json:"iterations"`
	Error      float64 `json:"error"`
	DeltaError float64 `json:"deltaError"`
}

func newStatus() *Status {
	return &Status{Error: math.Inf(1), DeltaError: math.Inf(1)}
}

// Converged reports whether any stop condition holds.
func (s Status) Converged(c Config) bool {
	return s.Iterations >= c.MaxIterations ||
		s.Error <= c.ErrorThresh ||
		s.DeltaError <= c.DeltaErrorThresh
}

func (s Status) finite() bool {
	return !math.IsInf(s.Error, 0) && !math.IsNaN(s.Error) &&
		!math.IsInf(s.DeltaError, 0) && !math.IsNaN(s.DeltaError)
}
