package port

// Stemmer reduces a single word to its stem.
type Stemmer interface {
	Stem(word string) string
}
