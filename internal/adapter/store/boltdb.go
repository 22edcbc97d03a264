package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"brstemmer/internal/domain"
)

var (
	bucketStems    = []byte("stems")
	bucketFamilies = []byte("families")
	bucketMeta     = []byte("meta")
	keyUpdatedAt   = []byte("updated_at")
)

// BoltStore is a persistent stem dictionary. It maps words to stems and
// stems back to the words that reduce to them.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketStems, bucketFamilies, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) DB() *bbolt.DB {
	return s.db
}

func (s *BoltStore) PutPairs(pairs []domain.Pair) error {
	if len(pairs) == 0 {
		return nil
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		stems := tx.Bucket(bucketStems)
		families := tx.Bucket(bucketFamilies)

		for _, p := range pairs {
			if p.Word == "" {
				continue
			}
			if old := stems.Get([]byte(p.Word)); old != nil {
				if string(old) == p.Stem {
					continue
				}
				if err := removeFromFamily(families, string(old), p.Word); err != nil {
					return err
				}
			}
			if err := stems.Put([]byte(p.Word), []byte(p.Stem)); err != nil {
				return err
			}
			if err := addToFamily(families, p.Stem, p.Word); err != nil {
				return err
			}
		}

		stamp, err := time.Now().UTC().MarshalText()
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keyUpdatedAt, stamp)
	})
}

func (s *BoltStore) Lookup(word string) (string, bool, error) {
	var (
		stem  string
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStems).Get([]byte(word))
		if data != nil {
			stem, found = string(data), true
		}
		return nil
	})
	return stem, found, err
}

func (s *BoltStore) Family(stem string) ([]string, error) {
	var words []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		words, err = getFamily(tx.Bucket(bucketFamilies), stem)
		return err
	})
	return words, err
}

func (s *BoltStore) Stats() (domain.StoreStats, error) {
	var stats domain.StoreStats
	err := s.db.View(func(tx *bbolt.Tx) error {
		stats.Words = tx.Bucket(bucketStems).Stats().KeyN
		stats.Stems = tx.Bucket(bucketFamilies).Stats().KeyN

		meta := tx.Bucket(bucketMeta)
		stats.Fingerprint = string(meta.Get(keyRulesFingerprint))
		if data := meta.Get(keyUpdatedAt); data != nil {
			if err := stats.UpdatedAt.UnmarshalText(data); err != nil {
				return fmt.Errorf("corrupt updated_at: %w", err)
			}
		}
		return nil
	})
	return stats, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func getFamily(b *bbolt.Bucket, stem string) ([]string, error) {
	data := b.Get([]byte(stem))
	if data == nil {
		return nil, nil
	}
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("corrupt family for %q: %w", stem, err)
	}
	return words, nil
}

func addToFamily(b *bbolt.Bucket, stem, word string) error {
	words, err := getFamily(b, stem)
	if err != nil {
		return err
	}
	i := sort.SearchStrings(words, word)
	if i < len(words) && words[i] == word {
		return nil
	}
	words = append(words, "")
	copy(words[i+1:], words[i:])
	words[i] = word
	return putFamily(b, stem, words)
}

func removeFromFamily(b *bbolt.Bucket, stem, word string) error {
	words, err := getFamily(b, stem)
	if err != nil {
		return err
	}
	i := sort.SearchStrings(words, word)
	if i == len(words) || words[i] != word {
		return nil
	}
	words = append(words[:i], words[i+1:]...)
	if len(words) == 0 {
		return b.Delete([]byte(stem))
	}
	return putFamily(b, stem, words)
}

func putFamily(b *bbolt.Bucket, stem string, words []string) error {
	data, err := json.Marshal(words)
	if err != nil {
		return err
	}
	return b.Put([]byte(stem), data)
}
