package apicache

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
)

type entry struct {
	body      []byte
	expiresAt time.Time
}

// InMemoryRepository implements Repository in process memory
type InMemoryRepository struct {
	clock clock.Clock

	mu    sync.RWMutex
	store map[string]entry
}

// NewInMemory creates an in-memory cache. A nil clock uses the wall clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]entry),
	}
}

// Get returns a copy of the cached body. Expired entries are dropped lazily.
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.URL == "" {
		return nil, errors.InvalidArgument(errURLEmpty)
	}

	r.mu.RLock()
	e, ok := r.store[input.URL]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NotFoundf("no cached response for %s", input.URL)
	}

	if !r.clock.Now().Before(e.expiresAt) {
		r.mu.Lock()
		if cur, still := r.store[input.URL]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(r.store, input.URL)
		}
		r.mu.Unlock()
		return nil, errors.NotFoundf("no cached response for %s", input.URL)
	}

	body := make([]byte, len(e.body))
	copy(body, e.body)
	return &GetOutput{Body: body}, nil
}

// Set stores a copy of the body
func (r *InMemoryRepository) Set(_ context.Context, input *SetInput) (*SetOutput, error) {
	if err := validateSet(input); err != nil {
		return nil, err
	}

	body := make([]byte, len(input.Body))
	copy(body, input.Body)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.URL] = entry{
		body:      body,
		expiresAt: r.clock.Now().Add(input.TTL),
	}

	return &SetOutput{}, nil
}

// Purge drops every entry
func (r *InMemoryRepository) Purge(_ context.Context, _ *PurgeInput) (*PurgeOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.store)
	r.store = make(map[string]entry)

	return &PurgeOutput{Removed: removed}, nil
}
