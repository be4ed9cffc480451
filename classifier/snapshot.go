package classifier

import (
	"nlu-lab/repositories"

	"github.com/google/uuid"
)

// Export saves the network unless a snapshot already exists and overwrite is false.
// It reports whether something was written.
func (c *Classifier) Export(repository repositories.ISnapshotRepository, overwrite bool) (bool, error) {
	if !overwrite {
		exists, err := repository.Exists()
		if err != nil {
			return false, err
		}
		if exists {
			c.log.Debug("Snapshot already exists, export skipped")
			return false, nil
		}
	}
	snapshot, err := c.network.Snapshot()
	if err != nil {
		return false, err
	}
	snapshot.ID = uuid.NewString()
	if err := repository.Save(snapshot); err != nil {
		return false, err
	}
	c.log.Info("Snapshot exported", "id", snapshot.ID, "outputs", snapshot.OutputSize)
	return true, nil
}

// Import restores the network from a snapshot. The vocabulary is rebuilt by the
// next call to Train, which keeps the imported weights when they had converged.
// Until then Classify reports ErrNotTrained.
func (c *Classifier) Import(repository repositories.ISnapshotRepository) error {
	snapshot, err := repository.Load()
	if err != nil {
		return err
	}
	network := c.network.Clone()
	if err := network.Restore(snapshot); err != nil {
		return err
	}
	c.network, c.examples, c.vocabulary, c.whitelist = network, nil, nil, nil
	c.log.Info("Snapshot imported", "id", snapshot.ID, "outputs", snapshot.OutputSize)
	return nil
}
