package asset

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds how many assets a CachedSource keeps.
const DefaultCacheSize = 64

// CachedSource memoizes the clips of another Source per asset name.
// Failed loads are not cached.
type CachedSource struct {
	next  Source
	cache *lru.Cache[string, []Clip]
}

// NewCachedSource wraps next with an LRU cache holding up to size assets.
func NewCachedSource(next Source, size int) (*CachedSource, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, []Clip](size)
	if err != nil {
		return nil, fmt.Errorf("creating clip cache: %w", err)
	}

	return &CachedSource{next: next, cache: cache}, nil
}

// Clips returns the cached clips for name, loading them on a miss.
func (s *CachedSource) Clips(name string) ([]Clip, error) {
	if clips, ok := s.cache.Get(name); ok {
		return append([]Clip(nil), clips...), nil
	}

	clips, err := s.next.Clips(name)
	if err != nil {
		return nil, err
	}

	s.cache.Add(name, append([]Clip(nil), clips...))

	return clips, nil
}

// Len returns the number of cached assets.
func (s *CachedSource) Len() int {
	return s.cache.Len()
}
