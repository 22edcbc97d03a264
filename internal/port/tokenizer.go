package port

type Tokenizer interface {
	// Words splits text into lowercased words, before stemming.
	Words(text string) []string

	// Tokenize splits text into stems.
	Tokenize(text string) []string
}
