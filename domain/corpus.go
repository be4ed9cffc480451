package domain

// Intent is one record of the training corpus.
type Intent struct {
	Language   string   `json:"language"`
	Intent     string   `json:"intent"`
	Utterances []string `json:"utterances"`
	Answers    []string `json:"answers"`
}

type Corpus []Intent

// Answer returns the first answer of the given intent.
func (c Corpus) Answer(intent string) (string, bool) {
	for _, item := range c {
		if item.Intent == intent && len(item.Answers) > 0 {
			return item.Answers[0], true
		}
	}
	return "", false
}

// FilterLanguage keeps only the records written in the given language.
func (c Corpus) FilterLanguage(language string) Corpus {
	var res Corpus
	for _, item := range c {
		if item.Language == language {
			res = append(res, item)
		}
	}
	return res
}
