//go:generate go run go.uber.org/mock/mockgen -source=nlu_service.go -destination=../mocks/mock_intent_classifier.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"nlu-lab/domain"
	"strings"

	"github.com/abadojack/whatlanggo"
)

const DefaultAnswer = "I don't know the answer"

type IIntentClassifier interface {
	Classify(text string) ([]domain.Classification, error)
}

// NluService answers one line of user input with the canned answer of the best intent.
type NluService struct {
	log        *slog.Logger
	classifier IIntentClassifier
	corpus     domain.Corpus
	language   string
}

func NewNluService(log *slog.Logger, classifier IIntentClassifier, corpus domain.Corpus, language string) *NluService {
	return &NluService{log: log, classifier: classifier, corpus: corpus, language: language}
}

// Reply classifies the line and reports the winning intent, its score and its lead over the runner-up.
func (s *NluService) Reply(line string) (domain.Reply, error) {
	classifications, err := s.classifier.Classify(line)
	if err != nil {
		return domain.Reply{}, err
	}
	reply := domain.Reply{Intent: domain.NoneLabel, Language: s.detectLanguage(line)}
	if len(classifications) > 0 {
		reply.Intent = classifications[0].Intent
		reply.Score = classifications[0].Score
	}
	if len(classifications) > 1 {
		reply.Gap = classifications[0].Score - classifications[1].Score
	}
	answer, ok := s.corpus.Answer(reply.Intent)
	if !ok {
		answer = DefaultAnswer
	}
	reply.Answer = answer
	return reply, nil
}

// detectLanguage only flags reliable detections that disagree with the corpus.
func (s *NluService) detectLanguage(line string) string {
	info := whatlanggo.Detect(line)
	lang := info.Lang.Iso6391()
	if info.IsReliable() && s.language != "" && lang != s.language {
		s.log.Debug("Input language differs from the corpus", "detected", lang, "corpus", s.language)
	}
	return lang
}

// IsQuit reports whether the line asks to leave the conversation.
func IsQuit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "quit")
}

// Format renders a reply the way the conversation prints it.
func Format(reply domain.Reply) string {
	return fmt.Sprintf("(%s - %g gap: %.2f) %s", reply.Intent, reply.Score, reply.Gap, reply.Answer)
}
