package memstore

import (
	"sort"
	"sync"
	"time"

	"brstemmer/internal/domain"
	"brstemmer/internal/port"
)

var _ port.StemStore = (*MemoryStore)(nil)

// MemoryStore is a StemStore that keeps everything in process memory.
type MemoryStore struct {
	mu          sync.RWMutex
	stems       map[string]string
	families    map[string]map[string]struct{}
	fingerprint string
	updatedAt   time.Time
}

func NewMemoryStore(fingerprint string) *MemoryStore {
	return &MemoryStore{
		stems:       make(map[string]string),
		families:    make(map[string]map[string]struct{}),
		fingerprint: fingerprint,
	}
}

func (s *MemoryStore) PutPairs(pairs []domain.Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range pairs {
		if p.Word == "" {
			continue
		}
		if old, ok := s.stems[p.Word]; ok {
			if old == p.Stem {
				continue
			}
			delete(s.families[old], p.Word)
			if len(s.families[old]) == 0 {
				delete(s.families, old)
			}
		}
		s.stems[p.Word] = p.Stem
		family, ok := s.families[p.Stem]
		if !ok {
			family = make(map[string]struct{})
			s.families[p.Stem] = family
		}
		family[p.Word] = struct{}{}
	}
	s.updatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryStore) Lookup(word string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stem, ok := s.stems[word]
	return stem, ok, nil
}

func (s *MemoryStore) Family(stem string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	family := s.families[stem]
	if len(family) == 0 {
		return nil, nil
	}
	words := make([]string, 0, len(family))
	for w := range family {
		words = append(words, w)
	}
	sort.Strings(words)
	return words, nil
}

func (s *MemoryStore) Stats() (domain.StoreStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.StoreStats{
		Words:       len(s.stems),
		Stems:       len(s.families),
		Fingerprint: s.fingerprint,
		UpdatedAt:   s.updatedAt,
	}, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stems = make(map[string]string)
	s.families = make(map[string]map[string]struct{})
	s.updatedAt = time.Time{}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
