// Package vocabulary assigns stable indices to features and labels and
// converts sparse named sets to dense vectors and back.
package vocabulary

import (
	"nlu-lab/domain"
)

// Vocabulary maps feature and label names to indices assigned in first-seen order.
// It is frozen once built.
type Vocabulary struct {
	features  map[string]int
	labels    map[string]int
	labelList []string
}

// Whitelist records, for every label, the features seen together with it in training.
type Whitelist struct {
	features map[string][]string
	seen     map[string]map[string]struct{}
}

// Build scans the training set once.
func Build(examples []domain.TrainingExample) (*Vocabulary, *Whitelist) {
	v := &Vocabulary{
		features: make(map[string]int),
		labels:   make(map[string]int),
	}
	w := &Whitelist{
		features: make(map[string][]string),
		seen:     make(map[string]map[string]struct{}),
	}
	for _, example := range examples {
		for _, feature := range example.Input.Names() {
			if _, ok := v.features[feature]; !ok {
				v.features[feature] = len(v.features)
			}
		}
		for _, label := range example.Output.Names() {
			if _, ok := v.labels[label]; !ok {
				v.labels[label] = len(v.labelList)
				v.labelList = append(v.labelList, label)
			}
			w.add(label, example.Input.Names())
		}
	}
	return v, w
}

func (v *Vocabulary) NumFeatures() int {
	return len(v.features)
}

func (v *Vocabulary) NumLabels() int {
	return len(v.labelList)
}

func (v *Vocabulary) FeatureIndex(name string) (int, bool) {
	i, ok := v.features[name]
	return i, ok
}

func (v *Vocabulary) LabelIndex(name string) (int, bool) {
	i, ok := v.labels[name]
	return i, ok
}

// Labels returns label names ordered by index.
func (v *Vocabulary) Labels() []string {
	res := make([]string, len(v.labelList))
	copy(res, v.labelList)
	return res
}

func (w *Whitelist) add(label string, features []string) {
	seen, ok := w.seen[label]
	if !ok {
		seen = make(map[string]struct{})
		w.seen[label] = seen
		w.features[label] = []string{}
	}
	for _, f := range features {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		w.features[label] = append(w.features[label], f)
	}
}

// Features returns the features observed with label, in first-seen order.
func (w *Whitelist) Features(label string) []string {
	return w.features[label]
}

// Allows reports whether the query shares at least one feature with label.
// The None label is always allowed.
func (w *Whitelist) Allows(label string, query domain.FeatureSet) bool {
	if label == domain.NoneLabel {
		return true
	}
	for _, f := range w.features[label] {
		if query.Has(f) {
			return true
		}
	}
	return false
}
