// Package stemmer implements the RSLP stemmer for Portuguese.
//
// A word is lowercased and then passed through eight suffix-stripping steps.
// Plural and feminine reduction only run for words ending in s and a/ã. Verb
// reduction only runs when none of the nominal steps removed anything, and
// vowel removal only when verb reduction did not either. Accent removal
// always runs last.
package stemmer

import (
	"strings"
	"unicode/utf8"
)

// Stemmer applies a rule table. It holds no per-call state and is safe for
// concurrent use.
type Stemmer struct {
	table *Table

	plural       *Step
	adverb       *Step
	feminine     *Step
	augmentative *Step
	noun         *Step
	verb         *Step
	vowel        *Step
	accent       *Step
}

var defaultStemmer = New(DefaultTable())

// Default returns the stemmer over the built-in table.
func Default() *Stemmer {
	return defaultStemmer
}

// New returns a stemmer over table. A nil table selects the built-in one.
func New(table *Table) *Stemmer {
	if table == nil {
		table = DefaultTable()
	}
	return &Stemmer{
		table:        table,
		plural:       table.mustLookup(PluralReduction),
		adverb:       table.mustLookup(AdverbReduction),
		feminine:     table.mustLookup(FeminineReduction),
		augmentative: table.mustLookup(AugmentativeReduction),
		noun:         table.mustLookup(NounReduction),
		verb:         table.mustLookup(VerbReduction),
		vowel:        table.mustLookup(VowelReduction),
		accent:       table.mustLookup(AccentReduction),
	}
}

// Stem reduces word using the built-in table.
func Stem(word string) string {
	return defaultStemmer.Stem(word)
}

// Table returns the rule table the stemmer applies.
func (s *Stemmer) Table() *Table {
	return s.table
}

// Stem returns the lowercased stem of word.
func (s *Stemmer) Stem(word string) string {
	return s.run(word, nil)
}

// Explain stems word and records what every step did.
func (s *Stemmer) Explain(word string) Trace {
	tr := Trace{Input: word}
	tr.Stem = s.run(word, &tr)
	return tr
}

func (s *Stemmer) run(word string, tr *Trace) string {
	word = strings.ToLower(word)
	if tr != nil {
		tr.Normalized = word
	}

	var removed, changed bool

	word, changed = s.step(tr, s.plural, word, endsWith(word, 's'))
	removed = removed || changed
	word, changed = s.step(tr, s.adverb, word, true)
	removed = removed || changed
	word, changed = s.step(tr, s.feminine, word, endsWith(word, 'a', 'ã'))
	removed = removed || changed
	word, changed = s.step(tr, s.augmentative, word, true)
	removed = removed || changed
	word, changed = s.step(tr, s.noun, word, true)
	removed = removed || changed

	word, changed = s.step(tr, s.verb, word, !removed)
	removed = removed || changed

	// Checked again: verb reduction may have just set the flag.
	word, _ = s.step(tr, s.vowel, word, !removed)
	word, _ = s.step(tr, s.accent, word, true)

	if tr != nil {
		tr.SuffixRemoved = removed
	}
	return word
}

func (s *Stemmer) step(tr *Trace, st *Step, word string, enabled bool) (string, bool) {
	if tr == nil {
		if !enabled {
			return word, false
		}
		return st.run(word, nil)
	}

	entry := StepTrace{Step: st.Name, Ran: enabled, Input: word, Output: word}
	var changed bool
	if enabled {
		entry.Output, changed = st.run(word, &entry)
		entry.Changed = changed
	}
	tr.Steps = append(tr.Steps, entry)
	return entry.Output, changed
}

func endsWith(word string, last ...rune) bool {
	r, size := utf8.DecodeLastRuneInString(word)
	if size == 0 {
		return false
	}
	for _, l := range last {
		if r == l {
			return true
		}
	}
	return false
}

func (t *Table) mustLookup(name StepName) *Step {
	st, ok := t.Lookup(name)
	if !ok {
		panic("stemmer: table has no step " + string(name))
	}
	return st
}
