package normalizer

import (
	"embed"
	"fmt"
	"io/fs"
	"nlu-lab/errors"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tablesFolder embed.FS

// SuffixRule replaces a word ending with another one.
type SuffixRule struct {
	Suffix      string `yaml:"suffix"`
	Replacement string `yaml:"replacement"`
}

// SuffixTable is an ordered list of rules, longest suffix first.
type SuffixTable []SuffixRule

// Tables carries the fixed datasets the stemmer is parameterized with.
type Tables struct {
	Language    string            `yaml:"language"`
	Step2       SuffixTable       `yaml:"step2"`
	Step3       SuffixTable       `yaml:"step3"`
	Step4       SuffixTable       `yaml:"step4"`
	Conflations map[string]string `yaml:"conflations"`
}

// TableLoader reads suffix tables from a filesystem, the embedded one by default.
type TableLoader struct {
	fs fs.FS
}

func NewTableLoader(f fs.FS) *TableLoader {
	return &TableLoader{fs: f}
}

// Load parses the YAML file at path and orders every table longest suffix first.
func (l *TableLoader) Load(path string) (Tables, error) {
	data, err := fs.ReadFile(l.fs, path)
	if err != nil {
		return Tables{}, err
	}
	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return Tables{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(tables.Step2) == 0 || len(tables.Step3) == 0 || len(tables.Step4) == 0 {
		return Tables{}, fmt.Errorf("%s: %w", path, errors.ErrEmptyWords)
	}
	tables.Step2.sortLongestFirst()
	tables.Step3.sortLongestFirst()
	tables.Step4.sortLongestFirst()
	return tables, nil
}

// EnglishTables returns the embedded English tables.
func EnglishTables() (Tables, error) {
	return NewTableLoader(tablesFolder).Load("tables/english.yaml")
}

func (t SuffixTable) sortLongestFirst() {
	sort.SliceStable(t, func(i, j int) bool {
		return len(t[i].Suffix) > len(t[j].Suffix)
	})
}

// match returns the longest rule whose suffix ends word while leaving a non-empty stem.
func (t SuffixTable) match(word string) (string, SuffixRule, bool) {
	for _, rule := range t {
		if stem, ok := trimSuffix(word, rule.Suffix); ok {
			return stem, rule, true
		}
	}
	return "", SuffixRule{}, false
}
