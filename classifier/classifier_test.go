package classifier

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"nlu-lab/domain"
	"nlu-lab/errors"
	"nlu-lab/mocks"
	"nlu-lab/neural"
	"nlu-lab/normalizer"
	"nlu-lab/repositories"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCorpus() domain.Corpus {
	return domain.Corpus{
		{
			Language:   "en",
			Intent:     "greet",
			Utterances: []string{"hello", "hi there", "good morning"},
			Answers:    []string{"Hello!"},
		},
		{
			Language:   "en",
			Intent:     "farewell",
			Utterances: []string{"goodbye", "see you later", "bye bye"},
			Answers:    []string{"Bye!"},
		},
	}
}

func newTestClassifier(t *testing.T) *Classifier {
	n, err := normalizer.NewEnglish(nil)
	require.NoError(t, err)
	c, err := New(neural.DefaultConfig(), n, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return c
}

func trainedClassifier(t *testing.T) *Classifier {
	c := newTestClassifier(t)
	_, err := c.Train(context.Background(), testCorpus())
	require.NoError(t, err)
	return c
}

func TestClassifier_Classify_Before_Training(t *testing.T) {
	req := require.New(t)
	c := newTestClassifier(t)

	_, err := c.Classify("hello")
	req.ErrorIs(err, errors.ErrNotTrained)
	_, err = c.Evaluate()
	req.NoError(err)
}

func TestClassifier_Train_Appends_Fallback_Example(t *testing.T) {
	req := require.New(t)
	c := trainedClassifier(t)

	examples := c.Examples()
	req.Len(examples, 7)
	req.Equal(domain.NoneLabel, examples[6].Label())
	req.Equal([]string{"greet", "farewell", domain.NoneLabel}, c.vocabulary.Labels())
	_, ok := c.vocabulary.FeatureIndex(domain.FallbackFeature)
	req.True(ok)
}

func TestClassifier_BestIntent(t *testing.T) {
	req := require.New(t)
	c := trainedClassifier(t)

	intent, err := c.BestIntent("Hello!")
	req.NoError(err)
	req.Equal("greet", intent)

	intent, err = c.BestIntent("bye")
	req.NoError(err)
	req.Equal("farewell", intent)

	// Nothing known, only the fallback feature carries mass
	best, err := c.BestClassification("what is the weather")
	req.NoError(err)
	req.Equal(domain.NoneLabel, best.Intent)
	req.InDelta(1.0, best.Score, 1e-9)
}

func TestClassifier_Gate_Only_Keeps_Labels_Sharing_A_Feature(t *testing.T) {
	req := require.New(t)
	c := trainedClassifier(t)
	queries := []string{"hello", "see you", "good bye", "morning there", "unknown words only", "hi bye"}

	for _, text := range queries {
		query := c.normalizer.Normalize(text)
		classifications, err := c.ClassifyFeatures(query)
		req.NoError(err)
		for _, classification := range classifications {
			if classification.Score > 0 {
				req.True(classification.Intent == domain.NoneLabel || c.whitelist.Allows(classification.Intent, query),
					"%s scored for %q", classification.Intent, text)
			}
		}
	}

	classifications, err := c.Classify("hello")
	req.NoError(err)
	for _, classification := range classifications {
		if classification.Intent == "farewell" {
			req.Equal(0.0, classification.Score)
		}
	}
}

func TestClassifier_Scores_Sum_To_One_And_Are_Sorted(t *testing.T) {
	req := require.New(t)
	c := trainedClassifier(t)

	for _, text := range []string{"hello", "hi bye", "see you later", "something else"} {
		classifications, err := c.Classify(text)
		req.NoError(err)
		req.Len(classifications, 3)
		sum := 0.0
		for i, classification := range classifications {
			sum += classification.Score
			if i > 0 {
				req.GreaterOrEqual(classifications[i-1].Score, classification.Score)
			}
		}
		req.InDelta(1.0, sum, 1e-9)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		expected []float64
	}{
		{name: "all zero passthrough", scores: []float64{0, 0, 0}, expected: []float64{0, 0, 0}},
		{name: "quadratic", scores: []float64{3, 4, 0}, expected: []float64{0.36, 0.64, 0}},
		{name: "negative scores are squared", scores: []float64{-1, 1}, expected: []float64{0.5, 0.5}},
		{name: "single", scores: []float64{0.2}, expected: []float64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			classifications := make([]domain.Classification, len(tt.scores))
			for i, score := range tt.scores {
				classifications[i] = domain.Classification{Intent: string(rune('a' + i)), Score: score}
			}

			normalize(classifications)

			for i, classification := range classifications {
				req.InDelta(tt.expected[i], classification.Score, 1e-12)
			}
		})
	}
}

func TestClassifier_Evaluate_Counts_Every_Example(t *testing.T) {
	req := require.New(t)
	c := trainedClassifier(t)

	evaluation, err := c.Evaluate()

	req.NoError(err)
	req.Equal(len(c.Examples()), evaluation.Total())
	req.Equal(7, evaluation.Total())
}

func TestClassifier_Train_Keeps_Previous_Model_On_Cancel(t *testing.T) {
	req := require.New(t)
	c := newTestClassifier(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Train(ctx, testCorpus())

	req.ErrorIs(err, context.Canceled)
	_, err = c.Classify("hello")
	req.ErrorIs(err, errors.ErrNotTrained)
}

func TestClassifier_Failed_Retrain_Keeps_Model_Consistent(t *testing.T) {
	req := require.New(t)
	c := trainedClassifier(t)
	before, err := c.Classify("hello")
	req.NoError(err)
	inputs := c.Network().InputSize()

	// Given a wider corpus and a context cancelled before the first epoch
	corpus := append(testCorpus(), domain.Intent{Intent: "thanks", Utterances: []string{"thank you"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When retraining fails
	_, err = c.Retrain(ctx, corpus)
	req.ErrorIs(err, context.Canceled)

	// Then the network, the vocabulary and the whitelist still match
	req.Equal(inputs, c.Network().InputSize())
	req.Len(c.Examples(), 7)
	after, err := c.Classify("hello")
	req.NoError(err)
	req.Equal(before, after)
}

func TestClassifier_Train_Converges_And_Recognises_Its_Corpus(t *testing.T) {
	n, err := normalizer.NewEnglish(nil)
	require.NoError(t, err)
	shipped, err := repositories.NewCorpusRepository("../data/corpus.json", slog.New(slog.DiscardHandler)).Load("en")
	require.NoError(t, err)

	tests := []struct {
		name   string
		corpus domain.Corpus
	}{
		{name: "small corpus", corpus: testCorpus()},
		{name: "shipped corpus", corpus: shipped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			c, err := New(neural.DefaultConfig(), n, slog.New(slog.DiscardHandler))
			req.NoError(err)

			status, err := c.Train(context.Background(), tt.corpus)
			req.NoError(err)
			req.LessOrEqual(status.Error, neural.DefaultConfig().ErrorThresh)
			req.Less(status.Iterations, neural.DefaultConfig().MaxIterations)

			evaluation, err := c.Evaluate()
			req.NoError(err)
			req.Zero(evaluation.Bad)
			req.Equal(len(c.Examples()), evaluation.Good)
		})
	}
}

func TestClassifier_Resume(t *testing.T) {
	req := require.New(t)
	c := trainedClassifier(t)

	status, err := c.Resume(context.Background(), testCorpus())
	req.NoError(err)
	req.GreaterOrEqual(status.Iterations, 1)

	// A corpus with another shape cannot continue the same network
	corpus := append(testCorpus(), domain.Intent{Intent: "thanks", Utterances: []string{"thank you"}})
	_, err = c.Resume(context.Background(), corpus)
	req.ErrorIs(err, errors.ErrDimensionMismatch)
}

func TestClassifier_Export_Then_Import_Reproduces_Scores(t *testing.T) {
	req := require.New(t)
	log := slog.New(slog.DiscardHandler)
	repository := repositories.NewFileSnapshotRepository(filepath.Join(t.TempDir(), "training.net"), log)
	c := trainedClassifier(t)

	written, err := c.Export(repository, false)
	req.NoError(err)
	req.True(written)

	// Given a fresh classifier restored from the snapshot
	restored := newTestClassifier(t)
	req.NoError(restored.Import(repository))
	expectedStatus, _ := c.Network().Status()

	// When training on the same corpus, the converged network is kept
	status, err := restored.Train(context.Background(), testCorpus())
	req.NoError(err)
	req.Equal(expectedStatus, status)

	for _, text := range []string{"hello", "see you", "nothing"} {
		expected, err := c.Classify(text)
		req.NoError(err)
		actual, err := restored.Classify(text)
		req.NoError(err)
		req.Equal(expected, actual)
	}
}

func TestClassifier_Export_Does_Not_Overwrite(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockISnapshotRepository(ctrl)
	c := trainedClassifier(t)

	// Given an existing snapshot
	repository.EXPECT().Exists().Return(true, nil)

	written, err := c.Export(repository, false)
	req.NoError(err)
	req.False(written)

	// When overwrite is requested, the existence check is skipped
	repository.EXPECT().Save(gomock.Any()).DoAndReturn(func(snapshot neural.Snapshot) error {
		req.NotEmpty(snapshot.ID)
		req.Equal(3, snapshot.OutputSize)
		return nil
	})
	written, err = c.Export(repository, true)
	req.NoError(err)
	req.True(written)
}

func TestClassifier_Import_Missing_Snapshot(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockISnapshotRepository(ctrl)
	repository.EXPECT().Load().Return(neural.Snapshot{}, errors.ErrSnapshotNotFound)
	c := newTestClassifier(t)

	err := c.Import(repository)

	req.ErrorIs(err, errors.ErrSnapshotNotFound)
	req.False(c.Network().Trained())
}
