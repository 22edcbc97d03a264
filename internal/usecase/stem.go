package usecase

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"brstemmer/internal/domain"
	"brstemmer/internal/port"
)

// StemUseCase stems words given directly or read line by line.
type StemUseCase struct {
	tokenizer port.Tokenizer
	stemmer   port.Stemmer
}

// NewStemUseCase creates a stem use case.
func NewStemUseCase(tokenizer port.Tokenizer, stemmer port.Stemmer) *StemUseCase {
	return &StemUseCase{
		tokenizer: tokenizer,
		stemmer:   stemmer,
	}
}

// StemWords stems each word as given, without splitting or filtering.
func (u *StemUseCase) StemWords(words []string) []domain.Pair {
	pairs := make([]domain.Pair, len(words))
	for i, w := range words {
		pairs[i] = domain.Pair{Word: w, Stem: u.stemmer.Stem(w)}
	}
	return pairs
}

// StemReader splits every line of r into words and calls emit with each
// word and its stem, in input order.
func (u *StemUseCase) StemReader(ctx context.Context, r io.Reader, emit func(domain.Pair) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, word := range u.tokenizer.Words(scanner.Text()) {
			if err := emit(domain.Pair{Word: word, Stem: u.stemmer.Stem(word)}); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
