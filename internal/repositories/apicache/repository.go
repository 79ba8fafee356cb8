// Package apicache stores raw PokeAPI response bodies keyed by request URL
package apicache

//go:generate mockgen -destination=mock/mock_repository.go -package=apicachemock github.com/KirkDiggler/pokedex-api/internal/repositories/apicache Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

// Repository caches upstream payloads for a bounded time
type Repository interface {
	// Get returns the cached body for a URL
	// Returns errors.InvalidArgument for an empty URL
	// Returns errors.NotFound on a miss or an expired entry
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Set stores a body, replacing any previous entry for the URL
	// Returns errors.InvalidArgument for an empty URL or non-positive TTL
	// Returns errors.Internal for storage failures
	Set(ctx context.Context, input *SetInput) (*SetOutput, error)

	// Purge removes every cached entry
	// Returns errors.Internal for storage failures
	Purge(ctx context.Context, input *PurgeInput) (*PurgeOutput, error)
}

// GetInput defines the input for reading a cached response
type GetInput struct {
	URL string
}

// GetOutput defines the output for reading a cached response
type GetOutput struct {
	Body []byte
}

// SetInput defines the input for caching a response
type SetInput struct {
	URL  string
	Body []byte
	TTL  time.Duration
}

// SetOutput defines the output for caching a response
type SetOutput struct{}

// PurgeInput defines the input for clearing the cache
type PurgeInput struct{}

// PurgeOutput reports how many entries were removed
type PurgeOutput struct {
	Removed int
}

const (
	errURLEmpty   = "url cannot be empty"
	errTTLInvalid = "ttl must be positive"
)

func validateSet(input *SetInput) error {
	if input == nil || input.URL == "" {
		return errors.InvalidArgument(errURLEmpty)
	}
	if input.TTL <= 0 {
		return errors.InvalidArgument(errTTLInvalid)
	}
	return nil
}
