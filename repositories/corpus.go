package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"nlu-lab/domain"
	"nlu-lab/errors"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// CorpusRepository reads the training corpus from a JSON file.
type CorpusRepository struct {
	path string
	log  *slog.Logger
}

func NewCorpusRepository(path string, log *slog.Logger) *CorpusRepository {
	return &CorpusRepository{path: path, log: log}
}

// Load returns the records written in the given language, all of them when language is empty.
func (r CorpusRepository) Load(language string) (domain.Corpus, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}
	if !isJSON(mimetype.Detect(data)) {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedCorpus, r.path)
	}
	var corpus domain.Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrUnsupportedCorpus, err)
	}
	total := len(corpus)
	if language != "" {
		corpus = corpus.FilterLanguage(language)
	}
	if len(corpus) == 0 {
		return nil, fmt.Errorf("%w: no record for language %q in %s", errors.ErrEmptyCorpus, language, r.path)
	}
	r.log.Info("Corpus loaded", "path", r.path, "language", language, "intents", len(corpus), "skipped", total-len(corpus))
	return corpus, nil
}

func isJSON(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("application/json") {
			return true
		}
	}
	return false
}
