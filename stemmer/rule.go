package stemmer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// WordSet is a set of whole words a rule must leave untouched.
type WordSet map[string]struct{}

func words(list ...string) WordSet {
	set := make(WordSet, len(list))
	for _, w := range list {
		set[w] = struct{}{}
	}
	return set
}

// NewWordSet builds a WordSet from list.
func NewWordSet(list ...string) WordSet {
	return words(list...)
}

// Has reports whether word is in the set. A nil set contains nothing.
func (s WordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Sorted returns the members in lexical order.
func (s WordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Rule is a single suffix rewrite.
type Rule struct {
	Suffix        string
	MinStemLength int
	Replacement   string
	Exceptions    WordSet
}

// Apply returns word rewritten by the rule, or word itself when the rule
// does not apply.
func (r Rule) Apply(word string) string {
	out, _ := r.apply(word)
	return out
}

// Matches reports whether word ends with the rule suffix.
func (r Rule) Matches(word string) bool {
	return strings.HasSuffix(word, r.Suffix)
}

// apply also reports whether the rule rewrote the word. The suffix is valid
// UTF-8, so a byte suffix match always starts on a rune boundary; only the
// length guard has to count runes.
func (r Rule) apply(word string) (string, bool) {
	if !strings.HasSuffix(word, r.Suffix) {
		return word, false
	}
	if r.Exceptions.Has(word) {
		return word, false
	}
	stemLength := utf8.RuneCountInString(word) - utf8.RuneCountInString(r.Suffix)
	if stemLength < r.MinStemLength {
		return word, false
	}
	return word[:len(word)-len(r.Suffix)] + r.Replacement, true
}
