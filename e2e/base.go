package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"nlu-lab/classifier"
	"nlu-lab/domain"
	"nlu-lab/emoji"
	"nlu-lab/neural"
	"nlu-lab/normalizer"
	"nlu-lab/repositories"
	"nlu-lab/services"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BaseSuite loads the corpus once and builds classifiers the way the binary does.
type BaseSuite struct {
	suite.Suite
	Config Config
	Log    *slog.Logger
	Corpus domain.Corpus
}

// SetupSuite loads the environment configuration and the corpus before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.Log = logs.GetLoggerFromLevel(slog.LevelInfo)
	s.Corpus, err = repositories.NewCorpusRepository(s.Config.CorpusPath, s.Log).Load(s.Config.Language)
	s.Require().NoError(err)
}

// Step prints a colorized header before running fn
func (s *BaseSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	start := time.Now()
	fn()
	s.T().Logf("%s done in %v", name, time.Since(start))
}

// NewClassifier builds an untrained classifier with the emoji rewriter and the English normalizer
func (s *BaseSuite) NewClassifier() *classifier.Classifier {
	rewriter, err := emoji.NewDefaultRewriter(s.Log)
	s.Require().NoError(err)
	textNormalizer, err := normalizer.NewEnglish(rewriter)
	s.Require().NoError(err)
	c, err := classifier.New(neural.DefaultConfig(), textNormalizer, s.Log)
	s.Require().NoError(err)
	return c
}

// Ask sends one line to the service and logs the reply
func (s *BaseSuite) Ask(ctx context.Context, service *services.NluService, line string) domain.Reply {
	s.Require().NoError(ctx.Err())
	reply, err := service.Reply(line)
	s.Require().NoError(err)
	msg := fmt.Sprintf("> %s\nbot> %s", line, services.Format(reply))
	if s.Config.DebugJSON {
		body, _ := json.MarshalIndent(reply, "", "  ")
		msg += "\n" + string(body)
	}
	s.T().Log(msg)
	return reply
}
