package repositories

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"log/slog"
	"nlu-lab/errors"
	"nlu-lab/neural"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// BadgerSnapshotRepository stores a named snapshot as a protobuf Struct under snapshot:<name>.
type BadgerSnapshotRepository struct {
	db   *badger.DB
	name string
	log  *slog.Logger
}

func NewBadgerSnapshotRepository(db *badger.DB, name string, log *slog.Logger) *BadgerSnapshotRepository {
	return &BadgerSnapshotRepository{db: db, name: name, log: log}
}

func (r BadgerSnapshotRepository) key() []byte {
	return []byte(fmt.Sprintf("snapshot:%s", r.name))
}

func (r BadgerSnapshotRepository) Exists() (bool, error) {
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(r.key())
		return err
	})
	switch {
	case err == nil:
		return true, nil
	case goerrors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (r BadgerSnapshotRepository) Load() (neural.Snapshot, error) {
	var st structpb.Struct
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(r.key())
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &st)
		})
	})
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return neural.Snapshot{}, fmt.Errorf("%w: %s", errors.ErrSnapshotNotFound, r.key())
	}
	if err != nil {
		return neural.Snapshot{}, err
	}
	data, err := json.Marshal(st.AsMap())
	if err != nil {
		return neural.Snapshot{}, err
	}
	return decodeSnapshot(data)
}

func (r BadgerSnapshotRepository) Save(snapshot neural.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	var st structpb.Struct
	if err := protojson.Unmarshal(data, &st); err != nil {
		return err
	}
	bytes, err := proto.Marshal(&st)
	if err != nil {
		return err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(r.key(), bytes)
	})
	if err != nil {
		return err
	}
	r.log.Debug("Snapshot saved", "key", string(r.key()), "bytes", len(bytes))
	return nil
}
