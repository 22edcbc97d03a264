package stemmer

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
)

// StepName identifies one of the eight RSLP steps.
type StepName string

const (
	PluralReduction       StepName = "plural_reduction"
	AdverbReduction       StepName = "adverb_reduction"
	FeminineReduction     StepName = "feminine_reduction"
	AugmentativeReduction StepName = "augmentative_reduction"
	NounReduction         StepName = "noun_reduction"
	VerbReduction         StepName = "verb_reduction"
	VowelReduction        StepName = "vowel_reduction"
	AccentReduction       StepName = "accent_reduction"
)

// StepOrder is the fixed order of the steps in every table.
var StepOrder = []StepName{
	PluralReduction,
	AdverbReduction,
	FeminineReduction,
	AugmentativeReduction,
	NounReduction,
	VerbReduction,
	VowelReduction,
	AccentReduction,
}

// ErrInvalidTable is returned when a rule table fails validation.
var ErrInvalidTable = errors.New("invalid rule table")

// Step is a named, ordered group of rules.
//
// Size and ExceptionCount are descriptive metadata carried over from the RSLP
// rule files. The stemmer never reads them.
type Step struct {
	Name           StepName
	Size           int
	ExceptionCount int
	Rules          []Rule
}

// Run applies every rule in order, each one seeing the word as left by the
// previous rule. changed reports whether the result differs from word.
func (s *Step) Run(word string) (string, bool) {
	return s.run(word, nil)
}

func (s *Step) run(word string, trace *StepTrace) (string, bool) {
	out := word
	for _, rule := range s.Rules {
		next, applied := rule.apply(out)
		if applied && trace != nil {
			trace.Applied = append(trace.Applied, AppliedRule{
				Suffix:      rule.Suffix,
				Replacement: rule.Replacement,
				Before:      out,
				After:       next,
			})
		}
		out = next
	}
	return out, out != word
}

// Table is an immutable, validated sequence of the eight steps.
type Table struct {
	steps []Step
}

var defaultTable = mustTable(rslpSteps)

// DefaultTable returns the built-in RSLP table.
func DefaultTable() *Table {
	return defaultTable
}

// NewTable validates steps and returns a table over a private copy of them.
func NewTable(steps []Step) (*Table, error) {
	if len(steps) != len(StepOrder) {
		return nil, fmt.Errorf("%w: expected %d steps, got %d", ErrInvalidTable, len(StepOrder), len(steps))
	}
	copied := make([]Step, len(steps))
	for i, st := range steps {
		if st.Name != StepOrder[i] {
			return nil, fmt.Errorf("%w: step %d is %q, expected %q", ErrInvalidTable, i+1, st.Name, StepOrder[i])
		}
		rules := make([]Rule, len(st.Rules))
		for j, r := range st.Rules {
			if r.Suffix == "" {
				return nil, fmt.Errorf("%w: %s rule %d has an empty suffix", ErrInvalidTable, st.Name, j+1)
			}
			if r.MinStemLength < 0 {
				return nil, fmt.Errorf("%w: %s rule %q has negative min stem length %d",
					ErrInvalidTable, st.Name, r.Suffix, r.MinStemLength)
			}
			if len(r.Exceptions) > 0 {
				r.Exceptions = words(r.Exceptions.Sorted()...)
			} else {
				r.Exceptions = nil
			}
			rules[j] = r
		}
		st.Rules = rules
		copied[i] = st
	}
	return &Table{steps: copied}, nil
}

func mustTable(steps []Step) *Table {
	t, err := NewTable(steps)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the step with the given name.
func (t *Table) Lookup(name StepName) (*Step, bool) {
	for i := range t.steps {
		if t.steps[i].Name == name {
			return &t.steps[i], true
		}
	}
	return nil, false
}

// Steps returns a copy of the steps in table order. Rule slices are shared and
// must not be modified.
func (t *Table) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// RuleCount returns the total number of rules across all steps.
func (t *Table) RuleCount() int {
	n := 0
	for _, st := range t.steps {
		n += len(st.Rules)
	}
	return n
}

// Fingerprint returns a short stable hash of the rule content. Step metadata
// is not part of it.
func (t *Table) Fingerprint() string {
	h := sha256.New()
	for _, st := range t.steps {
		h.Write([]byte(st.Name))
		h.Write([]byte{0})
		for _, r := range st.Rules {
			h.Write([]byte(r.Suffix))
			h.Write([]byte{0})
			h.Write([]byte(strconv.Itoa(r.MinStemLength)))
			h.Write([]byte{0})
			h.Write([]byte(r.Replacement))
			h.Write([]byte{0})
			for _, e := range r.Exceptions.Sorted() {
				h.Write([]byte(e))
				h.Write([]byte{1})
			}
			h.Write([]byte{2})
		}
		h.Write([]byte{3})
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
