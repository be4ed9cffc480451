// Package domain contains the core concepts of the intent classification engine.
// Feature and label sets keep their insertion order so that vocabulary indices
// are assigned deterministically.
package domain

const (
	// FallbackFeature absorbs the mass of every feature unknown to the vocabulary.
	FallbackFeature = "nonefeature"
	// NoneLabel is the catch-all "no intent matched" label.
	NoneLabel = "None"
)

// WeightedSet is an insertion-ordered mapping from name to a non-negative weight.
type WeightedSet struct {
	names   []string
	weights map[string]float64
}

// FeatureSet maps feature names produced by the normalizer to their weight.
type FeatureSet = WeightedSet

// LabelSet maps label names to their weight, normally a single one-hot entry.
type LabelSet = WeightedSet

// NewSet builds a set where every name has weight 1. Duplicates collapse.
func NewSet(names ...string) WeightedSet {
	s := WeightedSet{weights: make(map[string]float64, len(names))}
	for _, name := range names {
		s.Set(name, 1)
	}
	return s
}

// Set assigns a weight, keeping the position of an existing name.
func (s *WeightedSet) Set(name string, weight float64) {
	if s.weights == nil {
		s.weights = make(map[string]float64)
	}
	if _, ok := s.weights[name]; !ok {
		s.names = append(s.names, name)
	}
	s.weights[name] = weight
}

func (s WeightedSet) Weight(name string) (float64, bool) {
	w, ok := s.weights[name]
	return w, ok
}

func (s WeightedSet) Has(name string) bool {
	_, ok := s.weights[name]
	return ok
}

// Names returns the names in insertion order.
func (s WeightedSet) Names() []string {
	return s.names
}

func (s WeightedSet) Len() int {
	return len(s.names)
}

// TrainingExample pairs the features of an utterance with its expected labels.
type TrainingExample struct {
	Input  FeatureSet
	Output LabelSet
}

// Label returns the first label of the example, the true intent for one-hot outputs.
func (e TrainingExample) Label() string {
	if e.Output.Len() == 0 {
		return ""
	}
	return e.Output.Names()[0]
}

// FallbackExample guarantees a reachable None class and a trained path for the fallback feature.
func FallbackExample() TrainingExample {
	return TrainingExample{
		Input:  NewSet(FallbackFeature),
		Output: NewSet(NoneLabel),
	}
}
