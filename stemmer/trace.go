package stemmer

// Trace records a single stemming call.
type Trace struct {
	Input         string      `json:"input"`
	Normalized    string      `json:"normalized"`
	Stem          string      `json:"stem"`
	SuffixRemoved bool        `json:"suffix_removed"`
	Steps         []StepTrace `json:"steps"`
}

// StepTrace is what one step did. Steps skipped by the pipeline have Ran
// set to false and Output equal to Input.
type StepTrace struct {
	Step    StepName      `json:"step"`
	Ran     bool          `json:"ran"`
	Changed bool          `json:"changed"`
	Input   string        `json:"input"`
	Output  string        `json:"output"`
	Applied []AppliedRule `json:"applied,omitempty"`
}

// AppliedRule is a rule that rewrote the word.
type AppliedRule struct {
	Suffix      string `json:"suffix"`
	Replacement string `json:"replacement,omitempty"`
	Before      string `json:"before"`
	After       string `json:"after"`
}

// Ran reports whether the named step ran.
func (t Trace) Ran(name StepName) bool {
	for _, st := range t.Steps {
		if st.Step == name {
			return st.Ran
		}
	}
	return false
}
