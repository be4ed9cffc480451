package main

import (
	"fmt"
	"log"
	"log/slog"
	"math"
	"nlu-lab/neural"
	"nlu-lab/repositories"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	Backend string `envconfig:"INSPECT_BACKEND" default:"file"`
	// INSPECT_PATH is the snapshot file, or the badger directory
	Path string `envconfig:"INSPECT_PATH" default:"training.net"`
	// INSPECT_NAME selects one badger snapshot, all of them are listed when empty
	Name string `envconfig:"INSPECT_NAME"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := slog.New(slog.DiscardHandler)

	switch cfg.Backend {
	case "file":
		snapshot, err := repositories.NewFileSnapshotRepository(cfg.Path, logger).Load()
		if err != nil {
			log.Fatal(err)
		}
		printSnapshot(snapshot)
	case "badger":
		db, err := openDB(cfg.Path)
		if err != nil {
			log.Fatal("Error while opening Badger: ", err)
		}
		defer db.Close()
		if cfg.Name == "" {
			if err := listSnapshots(db); err != nil {
				log.Fatal(err)
			}
			return
		}
		snapshot, err := repositories.NewBadgerSnapshotRepository(db, cfg.Name, logger).Load()
		if err != nil {
			log.Fatal(err)
		}
		printSnapshot(snapshot)
	default:
		log.Fatalf("Unknown backend %q", cfg.Backend)
	}
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func printSnapshot(snapshot neural.Snapshot) {
	fmt.Printf("Snapshot %s\n", snapshot.ID)
	fmt.Printf("learningRate=%g momentum=%g alpha=%g maxIterations=%d errorThresh=%g deltaErrorThresh=%g\n",
		snapshot.LearningRate, snapshot.Momentum, snapshot.Alpha,
		snapshot.MaxIterations, snapshot.ErrorThresh, snapshot.DeltaErrorThresh)
	if snapshot.Status != nil {
		fmt.Printf("iterations=%d error=%g deltaError=%g\n",
			snapshot.Status.Iterations, snapshot.Status.Error, snapshot.Status.DeltaError)
	}

	table := newTable([]string{"Unit", "Bias", "Weights", "Non zero", "Min", "Max"})
	for i, p := range snapshot.Perceptrons {
		nonZero := 0
		low, high := math.Inf(1), math.Inf(-1)
		for _, w := range p.Weights {
			if w != 0 {
				nonZero++
			}
			low = math.Min(low, w)
			high = math.Max(high, w)
		}
		table.Append([]string{
			fmt.Sprint(i),
			fmt.Sprintf("%.4f", p.Bias),
			fmt.Sprint(len(p.Weights)),
			fmt.Sprint(nonZero),
			fmt.Sprintf("%.4f", low),
			fmt.Sprintf("%.4f", high),
		})
	}
	table.Render()
}

func listSnapshots(db *badger.DB) error {
	table := newTable([]string{"Key", "Size"})
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("snapshot:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			table.Append([]string{string(item.Key()), fmt.Sprint(item.ValueSize())})
		}
		return nil
	})
	if err != nil {
		return err
	}
	table.Render()
	return nil
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		// A crashed writer leaves a log to truncate, which needs a write open first
		repaired, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
		if err != nil {
			return nil, fmt.Errorf("repair failed: %w", err)
		}
		_ = repaired.Close()
		return badger.Open(opts)
	}
	return db, err
}
