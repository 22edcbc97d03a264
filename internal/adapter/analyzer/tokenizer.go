package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"brstemmer/internal/port"
)

// Tokenizer splits text into words with optional stopword removal and stemming.
type Tokenizer struct {
	stemmer   port.Stemmer
	stopwords map[string]struct{}
	minLength int
}

// NewTokenizer creates a new Tokenizer. A nil stemmer leaves words unstemmed.
// Words shorter than minLength runes are dropped.
func NewTokenizer(stemmer port.Stemmer, minLength int, useStopwords bool) *Tokenizer {
	var stops map[string]struct{}
	if useStopwords {
		stops = defaultStopwords()
	}
	if minLength < 1 {
		minLength = 1
	}
	return &Tokenizer{
		stemmer:   stemmer,
		stopwords: stops,
		minLength: minLength,
	}
}

// Words splits text into lowercased words, dropping short words and stopwords.
func (t *Tokenizer) Words(text string) []string {
	raw := splitWords(text)
	words := make([]string, 0, len(raw))

	for _, word := range raw {
		word = strings.ToLower(word)
		if utf8.RuneCountInString(word) < t.minLength {
			continue
		}
		if _, isStop := t.stopwords[word]; isStop {
			continue
		}
		words = append(words, word)
	}

	return words
}

// Tokenize splits text into stems.
func (t *Tokenizer) Tokenize(text string) []string {
	words := t.Words(text)
	if t.stemmer == nil {
		return words
	}
	for i, w := range words {
		words[i] = t.stemmer.Stem(w)
	}
	return words
}

// splitWords splits text into runs of letters. Digits, hyphens and
// apostrophes end a word.
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// defaultStopwords returns a set of common Portuguese stopwords.
func defaultStopwords() map[string]struct{} {
	stops := []string{
		"a", "à", "ao", "aos", "as", "às", "até", "com", "como", "da", "das",
		"de", "dela", "dele", "do", "dos", "e", "é", "ela", "ele", "eles",
		"em", "entre", "era", "essa", "esse", "esta", "está", "este", "eu",
		"foi", "há", "isso", "isto", "já", "lhe", "mais", "mas", "me", "mesmo",
		"meu", "minha", "na", "nas", "não", "nem", "no", "nos", "nós", "num",
		"numa", "o", "os", "ou", "para", "pela", "pelo", "por", "quando",
		"que", "quem", "se", "sem", "ser", "seu", "sua", "são", "também",
		"te", "tem", "um", "uma", "você", "vos",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}
