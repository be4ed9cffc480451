package main

import (
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"nlu-lab/classifier"
	"nlu-lab/emoji"
	"nlu-lab/errors"
	"nlu-lab/internal"
	"nlu-lab/normalizer"
	"nlu-lab/observability"
	"nlu-lab/repositories"
	"nlu-lab/services"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component, trains the classifier and hands over to the conversation.
// Returning errors instead of exiting lets the deferred cleanups run.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	networkConfig, err := config.Network()
	if err != nil {
		return err
	}

	// 2. Corpus
	corpus, err := repositories.NewCorpusRepository(config.CorpusPath, log).Load(config.Language)
	if err != nil {
		return fmt.Errorf("corpus loading failed: %w", err)
	}

	// 3. Classifier
	rewriter, err := emoji.NewDefaultRewriter(log)
	if err != nil {
		return err
	}
	textNormalizer, err := normalizer.NewEnglish(rewriter)
	if err != nil {
		return err
	}
	nlu, err := classifier.New(networkConfig, textNormalizer, log)
	if err != nil {
		return err
	}

	// 4. Snapshot storage
	snapshots, closeStorage, err := snapshotRepository(config, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	if err := nlu.Import(snapshots); err != nil {
		if !goerrors.Is(err, errors.ErrSnapshotNotFound) {
			log.Warn("Snapshot could not be imported, training from scratch", "err", err)
		} else {
			log.Info("No snapshot found, training from scratch")
		}
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Training
	start := time.Now()
	status, err := nlu.Train(ctx, corpus)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	stats := observability.NewTrainingMonitor(log).Record(status, len(nlu.Examples()), time.Since(start))

	evaluation, err := nlu.Evaluate()
	if err != nil {
		return err
	}
	printReport(os.Stdout, evaluation, stats)

	if _, err := nlu.Export(snapshots, config.OverwriteSnapshot); err != nil {
		return fmt.Errorf("snapshot export failed: %w", err)
	}

	// 7. Conversation
	service := services.NewNluService(log, nlu, corpus, config.Language)
	return converse(ctx, os.Stdin, os.Stdout, service)
}

func snapshotRepository(config internal.Config, log *slog.Logger) (repositories.ISnapshotRepository, func(), error) {
	switch config.SnapshotBackend {
	case internal.BackendBadger:
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		closeDB := func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}
		return repositories.NewBadgerSnapshotRepository(db, config.SnapshotName, log), closeDB, nil
	case internal.BackendFile:
		return repositories.NewFileSnapshotRepository(config.SnapshotPath, log), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errors.ErrUnknownBackend, config.SnapshotBackend)
	}
}
