package domain

// Classification is the score of one intent for a query.
type Classification struct {
	Intent string
	Score  float64
}

// Evaluation tallies how many training examples are classified back to their own label.
type Evaluation struct {
	Good int
	Bad  int
}

func (e Evaluation) Total() int {
	return e.Good + e.Bad
}

// Accuracy is expressed as a percentage.
func (e Evaluation) Accuracy() float64 {
	if e.Total() == 0 {
		return 0
	}
	return float64(e.Good) * 100 / float64(e.Total())
}

// Reply is what the conversational front-end reports for one line of input.
type Reply struct {
	Intent   string
	Score    float64
	Gap      float64
	Answer   string
	Language string
}
