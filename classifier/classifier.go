// Package classifier assembles the normalizer, the vocabulary and the network
// into an intent classifier trained from a corpus.
package classifier

import (
	"context"
	"log/slog"
	"nlu-lab/domain"
	"nlu-lab/errors"
	"nlu-lab/neural"
	"nlu-lab/normalizer"
	"nlu-lab/vocabulary"
	"sort"
	"time"

	"github.com/samber/lo"
)

// Normalizer extracts the feature set of an utterance.
type Normalizer interface {
	Normalize(text string) domain.FeatureSet
}

var _ Normalizer = (*normalizer.Normalizer)(nil)

type Classifier struct {
	log        *slog.Logger
	normalizer Normalizer
	network    *neural.Network
	examples   []domain.TrainingExample
	vocabulary *vocabulary.Vocabulary
	whitelist  *vocabulary.Whitelist
}

func New(config neural.Config, normalizer Normalizer, log *slog.Logger) (*Classifier, error) {
	network, err := neural.New(config, log)
	if err != nil {
		return nil, err
	}
	return &Classifier{log: log, normalizer: normalizer, network: network}, nil
}

// Network exposes the underlying network, mostly for inspection.
func (c *Classifier) Network() *neural.Network {
	return c.network
}

// Examples returns the training examples of the last training run, fallback example included.
func (c *Classifier) Examples() []domain.TrainingExample {
	return c.examples
}

// Train builds the training set from the corpus and trains the network. A
// network already converged for the same shape, such as an imported one, is
// kept as is.
func (c *Classifier) Train(ctx context.Context, corpus domain.Corpus) (neural.Status, error) {
	return c.train(ctx, corpus, (*neural.Network).Train)
}

// Retrain always starts from zeroed weights.
func (c *Classifier) Retrain(ctx context.Context, corpus domain.Corpus) (neural.Status, error) {
	return c.train(ctx, corpus, (*neural.Network).Retrain)
}

// Resume continues training from the current weights. The corpus must yield
// the same number of features and labels as the one the network was built for.
func (c *Classifier) Resume(ctx context.Context, corpus domain.Corpus) (neural.Status, error) {
	return c.train(ctx, corpus, (*neural.Network).Resume)
}

type trainFunc func(n *neural.Network, ctx context.Context, data []neural.Sample) (neural.Status, error)

// train works on a copy of the network. The network, the vocabulary and the
// whitelist are only replaced together once training succeeds.
func (c *Classifier) train(ctx context.Context, corpus domain.Corpus, fn trainFunc) (neural.Status, error) {
	examples := c.buildExamples(corpus)
	v, w := vocabulary.Build(examples)
	samples := lo.Map(examples, func(e domain.TrainingExample, _ int) neural.Sample {
		return neural.Sample{Input: v.EncodeFeatures(e.Input), Output: v.EncodeLabels(e.Output)}
	})

	start := time.Now()
	network := c.network.Clone()
	status, err := fn(network, ctx, samples)
	if err != nil {
		return status, err
	}
	c.network, c.examples, c.vocabulary, c.whitelist = network, examples, v, w
	c.log.Info("Classifier trained",
		"examples", len(examples),
		"features", v.NumFeatures(),
		"labels", v.NumLabels(),
		"iterations", status.Iterations,
		"error", status.Error,
		"duration", time.Since(start))
	return status, nil
}

func (c *Classifier) buildExamples(corpus domain.Corpus) []domain.TrainingExample {
	var examples []domain.TrainingExample
	for _, intent := range corpus {
		for _, utterance := range intent.Utterances {
			examples = append(examples, domain.TrainingExample{
				Input:  c.normalizer.Normalize(utterance),
				Output: domain.NewSet(intent.Intent),
			})
		}
	}
	return append(examples, domain.FallbackExample())
}

// Classify returns every label with its score, best first.
func (c *Classifier) Classify(text string) ([]domain.Classification, error) {
	return c.ClassifyFeatures(c.normalizer.Normalize(text))
}

// ClassifyFeatures scores an already normalized query. A label only keeps its
// score when the query shares a feature with it in training, None excepted.
// Scores are then squared and rescaled to sum to 1.
func (c *Classifier) ClassifyFeatures(query domain.FeatureSet) ([]domain.Classification, error) {
	if c.vocabulary == nil {
		return nil, errors.ErrNotTrained
	}
	outputs, err := c.network.Run(c.vocabulary.EncodeFeatures(query))
	if err != nil {
		return nil, err
	}
	classifications := c.vocabulary.Decode(outputs)
	for i, classification := range classifications {
		if !c.whitelist.Allows(classification.Intent, query) {
			classifications[i].Score = 0
		}
	}
	normalize(classifications)
	sort.SliceStable(classifications, func(i, j int) bool {
		return classifications[i].Score > classifications[j].Score
	})
	return classifications, nil
}

// normalize leaves the scores untouched when they are all zero.
func normalize(classifications []domain.Classification) {
	total := 0.0
	for _, classification := range classifications {
		total += classification.Score * classification.Score
	}
	if total == 0 {
		return
	}
	for i, classification := range classifications {
		classifications[i].Score = classification.Score * classification.Score / total
	}
}

func (c *Classifier) BestClassification(text string) (domain.Classification, error) {
	classifications, err := c.Classify(text)
	if err != nil {
		return domain.Classification{}, err
	}
	if len(classifications) == 0 {
		return domain.Classification{Intent: domain.NoneLabel}, nil
	}
	return classifications[0], nil
}

func (c *Classifier) BestIntent(text string) (string, error) {
	best, err := c.BestClassification(text)
	return best.Intent, err
}

// Evaluate classifies every training example back and counts how many get their own label first.
func (c *Classifier) Evaluate() (domain.Evaluation, error) {
	var evaluation domain.Evaluation
	for _, example := range c.examples {
		classifications, err := c.ClassifyFeatures(example.Input)
		if err != nil {
			return evaluation, err
		}
		expected := example.Label()
		if len(classifications) > 0 && classifications[0].Intent == expected {
			evaluation.Good++
			continue
		}
		evaluation.Bad++
		c.log.Debug("Misclassified example",
			"expected", expected,
			"received", lo.FirstOr(classifications, domain.Classification{}).Intent,
			"features", example.Input.Names())
	}
	return evaluation, nil
}
