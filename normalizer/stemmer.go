package normalizer

import (
	"strings"
)

// Stemmer reduces English word forms to a comparable root with a Porter-style
// suffix stripping algorithm followed by a small conflation table.
type Stemmer struct {
	tables Tables
}

func NewStemmer(tables Tables) *Stemmer {
	return &Stemmer{tables: tables}
}

// Stem returns the lowercased root of a single token.
func (s *Stemmer) Stem(token string) string {
	value := strings.ToLower(strings.TrimSpace(token))
	if conflated, ok := s.tables.Conflations[value]; ok {
		return conflated
	}
	if len(value) < 3 {
		return value
	}
	// A leading y must never act as a vowel.
	if value[0] == 'y' {
		value = "Y" + value[1:]
	}
	value = s.step1(value)
	value = s.replaceSuffix(value, s.tables.Step2)
	value = s.replaceSuffix(value, s.tables.Step3)
	value = s.step4(value)
	value = s.step5(value)
	value = strings.ToLower(value)
	if conflated, ok := s.tables.Conflations[value]; ok {
		return conflated
	}
	return value
}

// StemAll stems every token, keeping their order.
func (s *Stemmer) StemAll(tokens []string) []string {
	res := make([]string, len(tokens))
	for i, token := range tokens {
		res[i] = s.Stem(token)
	}
	return res
}

func (s *Stemmer) step1(value string) string {
	if strings.HasSuffix(value, "sses") && len(value) > 4 || strings.HasSuffix(value, "ies") && len(value) > 3 {
		value = value[:len(value)-2]
	} else if n := len(value); n >= 3 && value[n-1] == 's' && value[n-2] != 's' {
		value = value[:n-1]
	}

	value = step1b(value, true)
	// Second pass without cleanup, only fires when the first one produced another suffix.
	value = step1b(value, false)

	if stem, ok := trimSuffix(value, "y"); ok && hasVowel(stem) {
		value = stem + "i"
	}
	return value
}

func step1b(value string, cleanup bool) string {
	if stem, ok := trimSuffix(value, "eed"); ok {
		if measureOf(stem) > 0 {
			return value[:len(value)-1]
		}
		return value
	}
	stem, ok := trimSuffix(value, "ed")
	if !ok {
		stem, ok = trimSuffix(value, "ing")
	}
	if !ok || !hasVowel(stem) {
		return value
	}
	if !cleanup {
		return stem
	}
	n := len(stem)
	switch {
	case strings.HasSuffix(stem, "at"), strings.HasSuffix(stem, "bl"), strings.HasSuffix(stem, "iz"):
		return stem + "e"
	case n >= 2 && stem[n-1] == stem[n-2] && !strings.ContainsRune("aeiouylsz", rune(stem[n-1])):
		return stem[:n-1]
	case endsCVC(stem):
		return stem + "e"
	}
	return stem
}

// replaceSuffix applies the longest matching rule of a table when the stem has m > 0.
func (s *Stemmer) replaceSuffix(value string, table SuffixTable) string {
	stem, rule, ok := table.match(value)
	if ok && measureOf(stem) > 0 {
		return stem + rule.Replacement
	}
	return value
}

func (s *Stemmer) step4(value string) string {
	if stem, _, ok := s.tables.Step4.match(value); ok {
		if measureOf(stem) > 1 {
			return stem
		}
		return value
	}
	if stem, ok := trimSuffix(value, "ion"); ok && len(stem) >= 2 {
		last := stem[len(stem)-1]
		if (last == 's' || last == 't') && measureOf(stem) > 1 {
			return stem
		}
	}
	return value
}

func (s *Stemmer) step5(value string) string {
	if stem, ok := trimSuffix(value, "e"); ok {
		m := measureOf(stem)
		if m > 1 || m == 1 && !endsCVC(stem) {
			value = stem
		}
	}
	if strings.HasSuffix(value, "ll") && measureOf(value) > 1 {
		value = value[:len(value)-1]
	}
	return value
}
