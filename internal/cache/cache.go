package cache

import (
	"context"
	"fmt"
	"sync"

	"buyer-service/pkg/config"
	"buyer-service/prometheus"

	"github.com/viccon/sturdyc"
)

// Cache tags grouping listing entries by resource class. Invalidating a tag
// evicts every entry ever stored under it, regardless of key.
const (
	TagBuyers   = "buyersCache"
	TagProducts = "productsCache"
)

const evictionPercentage = 10

// FetchFn produces the serialized payload for a cache miss.
type FetchFn func(ctx context.Context) ([]byte, error)

// Invalidator is the mutation hook the write path calls after a successful
// persist. Keeping it as a narrow interface lets repositories carry the
// invalidation responsibility without depending on the full store.
type Invalidator interface {
	InvalidateTags(ctx context.Context, tags ...string)
}

// Store is a tag-scoped read-through cache for pre-serialized JSON listings.
// Values expire after the configured TTL; a tag invalidation evicts all keys
// recorded under that tag. Each tag carries a generation counter so a fetch
// that races an invalidation cannot leave a pre-mutation payload cached.
type Store struct {
	client *sturdyc.Client[[]byte]

	mu          sync.Mutex
	tags        map[string]map[string]struct{}
	generations map[string]uint64
}

// New creates a Store sized and aged from configuration
func New(cfg config.CacheConfig) *Store {
	return &Store{
		client:      sturdyc.New[[]byte](cfg.Capacity, cfg.NumShards, cfg.TTL, evictionPercentage),
		tags:        make(map[string]map[string]struct{}),
		generations: make(map[string]uint64),
	}
}

// GetOrFetch returns the cached payload for key, invoking fetch on a miss.
// The key is recorded under tag before the fetch runs, so an invalidation
// landing mid-fetch is detected by the generation check and the just-stored
// value is dropped rather than left stale until its TTL.
func (s *Store) GetOrFetch(ctx context.Context, key, tag string, fetch FetchFn) ([]byte, error) {
	gen := s.register(tag, key)
	missed := false

	payload, err := s.client.GetOrFetch(ctx, key, func(ctx context.Context) ([]byte, error) {
		missed = true
		return fetch(ctx)
	})
	if err != nil {
		s.unregister(tag, key)
		return nil, err
	}

	if missed {
		prometheus.CacheMissCounter.WithLabelValues(tag).Inc()
		if s.generation(tag) != gen {
			// The tag was invalidated while the fetch was in flight; the
			// stored payload predates the mutation.
			s.client.Delete(key)
		}
	} else {
		prometheus.CacheHitCounter.WithLabelValues(tag).Inc()
	}

	return payload, nil
}

// InvalidateTags evicts every entry recorded under any of the given tags and
// advances each tag's generation so in-flight fetches discard their result.
func (s *Store) InvalidateTags(ctx context.Context, tags ...string) {
	s.mu.Lock()
	var keys []string
	for _, tag := range tags {
		for key := range s.tags[tag] {
			keys = append(keys, key)
		}
		delete(s.tags, tag)
		s.generations[tag]++
		prometheus.CacheInvalidationCounter.WithLabelValues(tag).Inc()
	}
	s.mu.Unlock()

	for _, key := range keys {
		s.client.Delete(key)
	}
}

func (s *Store) register(tag, key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tags[tag] == nil {
		s.tags[tag] = make(map[string]struct{})
	}
	s.tags[tag][key] = struct{}{}
	return s.generations[tag]
}

func (s *Store) unregister(tag, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tags[tag], key)
}

func (s *Store) generation(tag string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[tag]
}

// BuyerListKey builds the cache key for a company-scoped buyer listing. The
// key carries the company id so two tenants never share an entry.
func BuyerListKey(companyID uint, page, limit int) string {
	return fmt.Sprintf("getAllBuyers-%d-%d-%d", companyID, page, limit)
}

// ProductListKey builds the cache key for a product listing
func ProductListKey(page, limit int) string {
	return fmt.Sprintf("getAllProducts-%d-%d", page, limit)
}
