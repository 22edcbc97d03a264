package stemmer

import "testing"

func TestExplain_MatchesStem(t *testing.T) {
	for _, w := range sampleWords {
		tr := Default().Explain(w)
		if tr.Stem != Stem(w) {
			t.Errorf("Explain(%q).Stem = %q, Stem = %q", w, tr.Stem, Stem(w))
		}
		if len(tr.Steps) != len(StepOrder) {
			t.Errorf("Explain(%q): expected %d step entries, got %d", w, len(StepOrder), len(tr.Steps))
		}
	}
}

func TestExplain_Normais(t *testing.T) {
	tr := Default().Explain("Normais")

	if tr.Normalized != "normais" {
		t.Errorf("expected normalized normais, got %q", tr.Normalized)
	}
	if !tr.SuffixRemoved {
		t.Error("expected suffix removed")
	}

	want := map[StepName]struct {
		ran    bool
		output string
	}{
		PluralReduction:       {true, "normal"},
		AdverbReduction:       {true, "normal"},
		FeminineReduction:     {false, "normal"},
		AugmentativeReduction: {true, "normal"},
		NounReduction:         {true, "norm"},
		VerbReduction:         {false, "norm"},
		VowelReduction:        {false, "norm"},
		AccentReduction:       {true, "norm"},
	}
	for _, st := range tr.Steps {
		w := want[st.Step]
		if st.Ran != w.ran || st.Output != w.output {
			t.Errorf("%s: expected (ran=%v, %q), got (ran=%v, %q)", st.Step, w.ran, w.output, st.Ran, st.Output)
		}
	}

	plural := tr.Steps[0]
	if len(plural.Applied) != 1 || plural.Applied[0].Suffix != "ais" || plural.Applied[0].After != "normal" {
		t.Errorf("unexpected plural rules: %+v", plural.Applied)
	}
}

func TestExplain_VowelSkippedAfterNominalStep(t *testing.T) {
	for _, w := range []string{"casas", "felizmente", "carrinho", "beleza", "menina"} {
		tr := Default().Explain(w)
		nominal := false
		for _, st := range tr.Steps[:5] {
			nominal = nominal || st.Changed
		}
		if !nominal {
			t.Fatalf("%q: expected a nominal step to change the word", w)
		}
		if tr.Ran(VerbReduction) || tr.Ran(VowelReduction) {
			t.Errorf("%q: verb or vowel reduction ran after a nominal suffix was removed", w)
		}
	}
}

func TestExplain_VowelSkippedAfterVerbStep(t *testing.T) {
	tr := Default().Explain("cantando")
	if !tr.Ran(VerbReduction) {
		t.Fatal("expected verb reduction to run")
	}
	if tr.Ran(VowelReduction) {
		t.Error("expected vowel reduction to be skipped after verb reduction changed the word")
	}
	if !tr.Ran(AccentReduction) {
		t.Error("expected accent reduction to always run")
	}
}

func TestExplain_VowelRunsWhenNothingRemoved(t *testing.T) {
	tr := Default().Explain("menino")
	if !tr.Ran(VerbReduction) || !tr.Ran(VowelReduction) {
		t.Error("expected verb and vowel reduction to run")
	}
	if tr.Stem != "menin" {
		t.Errorf("expected menin, got %q", tr.Stem)
	}
}

func TestExplain_Empty(t *testing.T) {
	tr := Default().Explain("")
	if tr.Stem != "" {
		t.Errorf("expected empty stem, got %q", tr.Stem)
	}
	if tr.Ran(PluralReduction) || tr.Ran(FeminineReduction) {
		t.Error("expected trailing-character gates to be closed for empty input")
	}
}
