package normalizer

import "regexp"

type contraction struct {
	pattern  *regexp.Regexp
	expanded string
}

// Particles are only expanded when followed by whitespace, punctuation or the end of the text.
var contractions = []contraction{
	{regexp.MustCompile(`(?i)n't([\s,:;.!?]|$)`), " not "},
	{regexp.MustCompile(`(?i)'s([\s,:;.!?]|$)`), " is "},
	{regexp.MustCompile(`(?i)'re([\s,:;.!?]|$)`), " are "},
	{regexp.MustCompile(`(?i)'ve([\s,:;.!?]|$)`), " have "},
	{regexp.MustCompile(`(?i)'m([\s,:;.!?]|$)`), " am "},
	{regexp.MustCompile(`(?i)'d([\s,:;.!?]|$)`), " had "},
}

// ExpandContractions replaces trailing English contraction particles with their full form.
func ExpandContractions(text string) string {
	for _, c := range contractions {
		text = c.pattern.ReplaceAllString(text, c.expanded+"${1}")
	}
	return text
}
