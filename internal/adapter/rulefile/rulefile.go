package rulefile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"brstemmer/stemmer"
)

type document struct {
	Steps []stepDoc `yaml:"steps"`
}

type stepDoc struct {
	Name       string    `yaml:"name"`
	Size       int       `yaml:"size"`
	Exceptions int       `yaml:"exceptions"`
	Rules      []ruleDoc `yaml:"rules"`
}

type ruleDoc struct {
	Suffix      string   `yaml:"suffix"`
	MinStem     int      `yaml:"min_stem"`
	Replacement string   `yaml:"replacement,omitempty"`
	Exceptions  []string `yaml:"exceptions,omitempty,flow"`
}

// Load reads and validates a rule table from a YAML file.
func Load(path string) (*stemmer.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule file: %w", err)
	}
	defer f.Close()

	table, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Decode reads a YAML rule table. Unknown keys are rejected.
func Decode(r io.Reader) (*stemmer.Table, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty rule file", stemmer.ErrInvalidTable)
		}
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}

	steps := make([]stemmer.Step, len(doc.Steps))
	for i, sd := range doc.Steps {
		rules := make([]stemmer.Rule, len(sd.Rules))
		for j, rd := range sd.Rules {
			rule := stemmer.Rule{
				Suffix:        rd.Suffix,
				MinStemLength: rd.MinStem,
				Replacement:   rd.Replacement,
			}
			if len(rd.Exceptions) > 0 {
				rule.Exceptions = stemmer.NewWordSet(rd.Exceptions...)
			}
			rules[j] = rule
		}
		steps[i] = stemmer.Step{
			Name:           stemmer.StepName(sd.Name),
			Size:           sd.Size,
			ExceptionCount: sd.Exceptions,
			Rules:          rules,
		}
	}
	return stemmer.NewTable(steps)
}

// Encode writes table as YAML. When only is non-empty, just those steps are
// written; the output is then not loadable as a table.
func Encode(w io.Writer, table *stemmer.Table, only ...stemmer.StepName) error {
	keep := make(map[stemmer.StepName]bool, len(only))
	for _, name := range only {
		keep[name] = true
	}

	var doc document
	for _, st := range table.Steps() {
		if len(keep) > 0 && !keep[st.Name] {
			continue
		}
		sd := stepDoc{
			Name:       string(st.Name),
			Size:       st.Size,
			Exceptions: st.ExceptionCount,
			Rules:      make([]ruleDoc, len(st.Rules)),
		}
		for j, r := range st.Rules {
			sd.Rules[j] = ruleDoc{
				Suffix:      r.Suffix,
				MinStem:     r.MinStemLength,
				Replacement: r.Replacement,
			}
			if len(r.Exceptions) > 0 {
				sd.Rules[j].Exceptions = r.Exceptions.Sorted()
			}
		}
		doc.Steps = append(doc.Steps, sd)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode rules: %w", err)
	}
	return enc.Close()
}
