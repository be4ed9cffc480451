package repositories

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"nlu-lab/errors"
	"nlu-lab/neural"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func testSnapshot() neural.Snapshot {
	return neural.Snapshot{
		ID:         "3f0c8a3e-7a59-4d8e-9a3e-2f1b8e6c9d10",
		Config:     neural.DefaultConfig(),
		OutputSize: 2,
		Status:     &neural.Status{Iterations: 263, Error: 4.929969392241852e-06, DeltaError: 1.1261537672003335e-07},
		Perceptrons: []neural.PerceptronSnapshot{
			{Weights: []float64{0.1, -0.30000000000000004, 1e-300}, Bias: 0.7},
			{Weights: []float64{0, 2.5, -1.0000000000000002}, Bias: -0.08},
		},
	}
}

func openBadger(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSnapshotRepositories(t *testing.T) {
	log := slog.New(slog.DiscardHandler)
	repositories := map[string]func(t *testing.T) ISnapshotRepository{
		"file": func(t *testing.T) ISnapshotRepository {
			return NewFileSnapshotRepository(filepath.Join(t.TempDir(), "training.net"), log)
		},
		"badger": func(t *testing.T) ISnapshotRepository {
			return NewBadgerSnapshotRepository(openBadger(t), "training", log)
		},
	}
	for name, build := range repositories {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			repository := build(t)

			// Given an empty store
			exists, err := repository.Exists()
			req.NoError(err)
			req.False(exists)
			_, err = repository.Load()
			req.ErrorIs(err, errors.ErrSnapshotNotFound)

			// When saving twice, the last save wins
			first := testSnapshot()
			first.OutputSize = 1
			first.Perceptrons = first.Perceptrons[:1]
			req.NoError(repository.Save(first))
			req.NoError(repository.Save(testSnapshot()))

			// Then the snapshot comes back bit for bit
			exists, err = repository.Exists()
			req.NoError(err)
			req.True(exists)
			loaded, err := repository.Load()
			req.NoError(err)
			req.Equal(testSnapshot(), loaded)
		})
	}
}

func TestFileSnapshotRepository_Format(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "training.net")
	repository := NewFileSnapshotRepository(path, slog.New(slog.DiscardHandler))
	snapshot := testSnapshot()
	snapshot.Status = nil

	req.NoError(repository.Save(snapshot))

	data, err := os.ReadFile(path)
	req.NoError(err)
	req.Contains(string(data), `"outputSize":2`)
	req.Contains(string(data), `"learningRate":0.7`)
	req.Contains(string(data), `"perceptrons":[{"weights":[0.1,`)
	req.NotContains(string(data), `"status"`)
}

func TestFileSnapshotRepository_Load_Invalid(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "training.net")
	req.NoError(os.WriteFile(path, []byte("not json"), 0o644))
	repository := NewFileSnapshotRepository(path, slog.New(slog.DiscardHandler))

	_, err := repository.Load()

	req.ErrorIs(err, errors.ErrInvalidSnapshot)
}
