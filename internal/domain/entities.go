package domain

import "time"

// Pair is a word and the stem it reduces to.
type Pair struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

// StemCount aggregates the occurrences of all words sharing a stem.
type StemCount struct {
	Stem  string   `json:"stem"`
	Count int      `json:"count"`
	Words []string `json:"words"`
}

// FileReport is the per-file outcome of a corpus run.
type FileReport struct {
	Path  string `json:"path"`
	Words int    `json:"words"`
	Error string `json:"error,omitempty"`
}

// StoreStats describes the stem dictionary.
type StoreStats struct {
	Words       int       `json:"words"`
	Stems       int       `json:"stems"`
	Fingerprint string    `json:"rules_fingerprint"`
	UpdatedAt   time.Time `json:"updated_at"`
}
