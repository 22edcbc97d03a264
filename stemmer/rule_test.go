package stemmer

import (
	"testing"
	"unicode/utf8"
)

func TestRule_Apply(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		word string
		want string
	}{
		{"no match", Rule{Suffix: "ns", MinStemLength: 1, Replacement: "m"}, "casa", "casa"},
		{"replace", Rule{Suffix: "ns", MinStemLength: 1, Replacement: "m"}, "bons", "bom"},
		{"strip", Rule{Suffix: "mente", MinStemLength: 4}, "felizmente", "feliz"},
		{"multibyte suffix", Rule{Suffix: "ões", MinStemLength: 3, Replacement: "ão"}, "balões", "balão"},
		{"multibyte stem counted in runes", Rule{Suffix: "s", MinStemLength: 2}, "ãés", "ãé"},
		{"multibyte stem not counted in bytes", Rule{Suffix: "s", MinStemLength: 3}, "ãés", "ãés"},
		{"stem too short", Rule{Suffix: "ões", MinStemLength: 3, Replacement: "ão"}, "aões", "aões"},
		{"stem exactly min", Rule{Suffix: "ona", MinStemLength: 4, Replacement: "ão"}, "chefona", "chefão"},
		{"whole word equals suffix", Rule{Suffix: "ns", MinStemLength: 1}, "ns", "ns"},
		{"zero min stem", Rule{Suffix: "á", MinStemLength: 0, Replacement: "a"}, "á", "a"},
		{"empty word", Rule{Suffix: "s", MinStemLength: 0}, "", ""},
		{"exception", Rule{Suffix: "s", MinStemLength: 2, Exceptions: NewWordSet("lápis")}, "lápis", "lápis"},
		{"exception is whole word", Rule{Suffix: "s", MinStemLength: 2, Exceptions: NewWordSet("pis")}, "lápis", "lápi"},
		{"díssimo", Rule{Suffix: "díssimo", MinStemLength: 5}, "cansadíssimo", "cansa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Apply(tt.word); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestRule_ExceptionsPreserved(t *testing.T) {
	for _, st := range DefaultTable().Steps() {
		for _, r := range st.Rules {
			for _, e := range r.Exceptions.Sorted() {
				if got := r.Apply(e); got != e {
					t.Errorf("%s rule %q rewrote exception %q to %q", st.Name, r.Suffix, e, got)
				}
			}
		}
	}
}

func TestRule_MinStemInvariant(t *testing.T) {
	for _, st := range DefaultTable().Steps() {
		for _, r := range st.Rules {
			for _, w := range sampleWords {
				out, applied := r.apply(w)
				if !applied {
					continue
				}
				stem := utf8.RuneCountInString(out) - utf8.RuneCountInString(r.Replacement)
				if stem < r.MinStemLength {
					t.Errorf("%s rule %q left stem of %d runes from %q, min %d",
						st.Name, r.Suffix, stem, w, r.MinStemLength)
				}
			}
		}
	}
}

func TestRule_Matches(t *testing.T) {
	r := Rule{Suffix: "ão"}
	if !r.Matches("coração") {
		t.Error("expected coração to match ão")
	}
	if r.Matches("cora") {
		t.Error("expected cora not to match ão")
	}
}

func TestWordSet_NilHas(t *testing.T) {
	var s WordSet
	if s.Has("") || s.Has("casa") {
		t.Error("nil set should contain nothing")
	}
	if len(s.Sorted()) != 0 {
		t.Error("nil set should sort to nothing")
	}
}
