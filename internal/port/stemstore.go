package port

import "brstemmer/internal/domain"

type StemStore interface {
	// PutPairs records word -> stem pairs, replacing earlier stems of the same words.
	PutPairs(pairs []domain.Pair) error

	// Lookup returns the stored stem of word.
	Lookup(word string) (string, bool, error)

	// Family returns every stored word that stems to stem, sorted.
	Family(stem string) ([]string, error)

	Stats() (domain.StoreStats, error)

	Clear() error

	Close() error
}
