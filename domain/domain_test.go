package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightedSet(t *testing.T) {
	req := require.New(t)

	// Given duplicated names
	set := NewSet("run", "fast", "run")

	// Then they collapse and keep their first position
	req.Equal([]string{"run", "fast"}, set.Names())
	req.Equal(2, set.Len())
	req.True(set.Has("fast"))
	req.False(set.Has("slow"))

	set.Set("run", 0.5)
	set.Set("slow", 2)
	weight, ok := set.Weight("run")
	req.True(ok)
	req.Equal(0.5, weight)
	req.Equal([]string{"run", "fast", "slow"}, set.Names())

	var empty WeightedSet
	empty.Set("a", 1)
	req.Equal(1, empty.Len())
}

func TestTrainingExample_Label(t *testing.T) {
	req := require.New(t)

	req.Equal("greet", TrainingExample{Input: NewSet("hello"), Output: NewSet("greet")}.Label())
	req.Equal("", TrainingExample{}.Label())

	fallback := FallbackExample()
	req.Equal(NoneLabel, fallback.Label())
	req.Equal([]string{FallbackFeature}, fallback.Input.Names())
}

func TestCorpus(t *testing.T) {
	req := require.New(t)
	corpus := Corpus{
		{Language: "en", Intent: "greet", Answers: []string{"Hello!", "Hi!"}},
		{Language: "es", Intent: "greet", Answers: []string{"¡Hola!"}},
		{Language: "en", Intent: "farewell"},
	}

	answer, ok := corpus.Answer("greet")
	req.True(ok)
	req.Equal("Hello!", answer)
	_, ok = corpus.Answer("farewell")
	req.False(ok)

	spanish := corpus.FilterLanguage("es")
	req.Len(spanish, 1)
	answer, _ = spanish.Answer("greet")
	req.Equal("¡Hola!", answer)
	req.Empty(corpus.FilterLanguage("fr"))
}

func TestEvaluation(t *testing.T) {
	req := require.New(t)

	req.Equal(0.0, Evaluation{}.Accuracy())
	evaluation := Evaluation{Good: 3, Bad: 1}
	req.Equal(4, evaluation.Total())
	req.Equal(75.0, evaluation.Accuracy())
}
