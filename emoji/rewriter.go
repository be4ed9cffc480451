// Package emoji rewrites emoji symbols into textual :name: tokens so that the
// normalizer can turn them into features.
package emoji

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"nlu-lab/errors"
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFolder embed.FS

// variationSelector turns a preceding character into its emoji presentation.
const variationSelector = '\uFE0F'

type Rewriter struct {
	matcher *goahocorasick.Machine
	names   map[string]string
	log     *slog.Logger
}

// NewRewriter builds the Aho-Corasick automaton over every symbol of the name to symbol dictionary.
func NewRewriter(dictionary map[string]string, log *slog.Logger) (*Rewriter, error) {
	names := make([]string, 0, len(dictionary))
	for name := range dictionary {
		names = append(names, name)
	}
	// When two names share a symbol the first one in alphabetical order wins.
	sort.Strings(names)

	bySymbol := make(map[string]string, len(names))
	var patterns [][]rune
	for _, name := range names {
		symbol := stripVariation([]rune(dictionary[name]))
		if len(symbol) == 0 {
			continue
		}
		if _, ok := bySymbol[string(symbol)]; ok {
			continue
		}
		bySymbol[string(symbol)] = name
		patterns = append(patterns, symbol)
	}
	if len(patterns) == 0 {
		return nil, errors.ErrEmptyWords
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	log.Debug("Emoji automaton built", "symbols", len(patterns))
	return &Rewriter{matcher: m, names: bySymbol, log: log}, nil
}

// NewDefaultRewriter uses the embedded dictionary.
func NewDefaultRewriter(log *slog.Logger) (*Rewriter, error) {
	dictionary, err := LoadDictionary(dataFolder, "data/emoji.yaml")
	if err != nil {
		return nil, err
	}
	return NewRewriter(dictionary, log)
}

// LoadDictionary reads a YAML mapping of emoji name to symbol.
func LoadDictionary(fsys fs.FS, path string) (map[string]string, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	dictionary := make(map[string]string)
	if err := yaml.Unmarshal(data, &dictionary); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return dictionary, nil
}

// Rewrite replaces each known emoji with :name:, keeping every other character.
// Overlapping matches resolve to the leftmost, then longest, symbol.
func (r *Rewriter) Rewrite(text string) string {
	runes := stripVariation([]rune(text))
	if len(runes) == 0 {
		return text
	}
	terms := r.matcher.MultiPatternSearch(runes, false)
	if len(terms) == 0 {
		return text
	}
	sort.SliceStable(terms, func(i, j int) bool {
		if terms[i].Pos != terms[j].Pos {
			return terms[i].Pos < terms[j].Pos
		}
		return len(terms[i].Word) > len(terms[j].Word)
	})

	var b strings.Builder
	next := 0
	for _, term := range terms {
		if term.Pos < next || term.Pos+len(term.Word) > len(runes) {
			continue
		}
		b.WriteString(string(runes[next:term.Pos]))
		b.WriteString(":" + r.names[string(term.Word)] + ":")
		next = term.Pos + len(term.Word)
	}
	b.WriteString(string(runes[next:]))
	return b.String()
}

func stripVariation(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if r != variationSelector {
			out = append(out, r)
		}
	}
	return out
}
