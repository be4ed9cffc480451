// Package normalizer turns a raw utterance into the set of stemmed features
// the classifier works with.
package normalizer

import (
	"nlu-lab/domain"
	"regexp"
)

var nonWord = regexp.MustCompile(`\W+`)

// Rewriter transforms raw text before it is tokenized.
type Rewriter interface {
	Rewrite(text string) string
}

type Normalizer struct {
	stemmer  *Stemmer
	rewriter Rewriter
}

// New builds a normalizer. The rewriter is optional.
func New(stemmer *Stemmer, rewriter Rewriter) *Normalizer {
	return &Normalizer{stemmer: stemmer, rewriter: rewriter}
}

// NewEnglish builds a normalizer backed by the embedded English tables.
func NewEnglish(rewriter Rewriter) (*Normalizer, error) {
	tables, err := EnglishTables()
	if err != nil {
		return nil, err
	}
	return New(NewStemmer(tables), rewriter), nil
}

// Tokenize expands contractions and splits the text on runs of non-word characters.
func (n *Normalizer) Tokenize(text string) []string {
	parts := nonWord.Split(ExpandContractions(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Normalize returns one feature of weight 1 per distinct stemmed token.
func (n *Normalizer) Normalize(text string) domain.FeatureSet {
	if n.rewriter != nil {
		text = n.rewriter.Rewrite(text)
	}
	return domain.NewSet(n.stemmer.StemAll(n.Tokenize(text))...)
}
