//go:generate go run go.uber.org/mock/mockgen -source=snapshot.go -destination=../mocks/mock_snapshot_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"nlu-lab/errors"
	"nlu-lab/neural"
	"os"
)

// ISnapshotRepository persists a single network snapshot.
type ISnapshotRepository interface {
	Exists() (bool, error)
	Load() (neural.Snapshot, error)
	Save(snapshot neural.Snapshot) error
}

// FileSnapshotRepository keeps the snapshot as one JSON document, rewritten as a whole on every save.
type FileSnapshotRepository struct {
	path string
	log  *slog.Logger
}

func NewFileSnapshotRepository(path string, log *slog.Logger) *FileSnapshotRepository {
	return &FileSnapshotRepository{path: path, log: log}
}

func (r FileSnapshotRepository) Exists() (bool, error) {
	_, err := os.Stat(r.path)
	switch {
	case err == nil:
		return true, nil
	case goerrors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

func (r FileSnapshotRepository) Load() (neural.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if goerrors.Is(err, fs.ErrNotExist) {
			return neural.Snapshot{}, fmt.Errorf("%w: %s", errors.ErrSnapshotNotFound, r.path)
		}
		return neural.Snapshot{}, err
	}
	snapshot, err := decodeSnapshot(data)
	if err != nil {
		return neural.Snapshot{}, err
	}
	r.log.Debug("Snapshot loaded", "path", r.path, "outputs", snapshot.OutputSize)
	return snapshot, nil
}

func (r FileSnapshotRepository) Save(snapshot neural.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return err
	}
	r.log.Debug("Snapshot saved", "path", r.path, "bytes", len(data))
	return nil
}

func decodeSnapshot(data []byte) (neural.Snapshot, error) {
	var snapshot neural.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return neural.Snapshot{}, fmt.Errorf("%w: %v", errors.ErrInvalidSnapshot, err)
	}
	return snapshot, nil
}
