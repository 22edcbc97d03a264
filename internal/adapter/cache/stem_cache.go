package cache

import (
	"container/list"
	"sync"

	"brstemmer/internal/port"
)

// StemCache is a bounded LRU of word -> stem results.
type StemCache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List
	maxSize int
	hits    uint64
	misses  uint64
}

type cacheEntry struct {
	word string
	stem string
}

// NewStemCache creates a cache holding at most maxSize words.
func NewStemCache(maxSize int) *StemCache {
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &StemCache{
		entries: make(map[string]*list.Element, maxSize),
		order:   list.New(),
		maxSize: maxSize,
	}
}

func (c *StemCache) Get(word string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[word]
	if !ok {
		c.misses++
		return "", false
	}
	c.hits++
	c.order.MoveToBack(el)
	return el.Value.(*cacheEntry).stem, true
}

func (c *StemCache) Put(word, stem string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[word]; ok {
		el.Value.(*cacheEntry).stem = stem
		c.order.MoveToBack(el)
		return
	}

	if c.order.Len() >= c.maxSize {
		c.evictOldest()
	}
	c.entries[word] = c.order.PushBack(&cacheEntry{word: word, stem: stem})
}

// Invalidate drops every entry.
func (c *StemCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element, c.maxSize)
	c.order.Init()
}

func (c *StemCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns the hit and miss counts since creation.
func (c *StemCache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *StemCache) evictOldest() {
	oldest := c.order.Front()
	if oldest == nil {
		return
	}
	c.order.Remove(oldest)
	delete(c.entries, oldest.Value.(*cacheEntry).word)
}

// CachedStemmer memoizes another stemmer.
type CachedStemmer struct {
	stemmer port.Stemmer
	cache   *StemCache
}

func NewCachedStemmer(stemmer port.Stemmer, cache *StemCache) *CachedStemmer {
	return &CachedStemmer{
		stemmer: stemmer,
		cache:   cache,
	}
}

func (s *CachedStemmer) Stem(word string) string {
	if stem, hit := s.cache.Get(word); hit {
		return stem
	}

	stem := s.stemmer.Stem(word)
	s.cache.Put(word, stem)
	return stem
}
