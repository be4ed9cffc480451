package vocabulary

import (
	"nlu-lab/domain"
)

// EncodeFeatures builds a vector of NumFeatures entries. Unknown features add
// 1/(4*n) each to the fallback index, n being the size of the set.
func (v *Vocabulary) EncodeFeatures(input domain.FeatureSet) []float64 {
	vector := make([]float64, v.NumFeatures())
	if input.Len() == 0 {
		return vector
	}
	fallback, hasFallback := v.features[domain.FallbackFeature]
	unknownDelta := 1 / (4 * float64(input.Len()))
	for _, name := range input.Names() {
		if index, ok := v.features[name]; ok {
			vector[index], _ = input.Weight(name)
			continue
		}
		if hasFallback {
			vector[fallback] += unknownDelta
		}
	}
	return vector
}

// EncodeLabels builds a vector of NumLabels entries, ignoring unknown labels.
func (v *Vocabulary) EncodeLabels(output domain.LabelSet) []float64 {
	vector := make([]float64, v.NumLabels())
	for _, name := range output.Names() {
		if index, ok := v.labels[name]; ok {
			vector[index], _ = output.Weight(name)
		}
	}
	return vector
}

// Decode pairs every score with its label name, in label index order.
func (v *Vocabulary) Decode(vector []float64) []domain.Classification {
	res := make([]domain.Classification, 0, len(v.labelList))
	for i, label := range v.labelList {
		if i >= len(vector) {
			break
		}
		res = append(res, domain.Classification{Intent: label, Score: vector[i]})
	}
	return res
}
