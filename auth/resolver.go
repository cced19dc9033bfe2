package auth

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// PrincipalResolver turns a verified token subject into a principal
type PrincipalResolver interface {
	Resolve(ctx context.Context, subject string) (Principal, error)
}

// LoaderResolver resolves principals straight from the account store
type LoaderResolver struct {
	loader DetailsLoader
}

// NewLoaderResolver creates a resolver backed by loader
func NewLoaderResolver(loader DetailsLoader) *LoaderResolver {
	return &LoaderResolver{loader: loader}
}

// Resolve loads the account for subject
func (r *LoaderResolver) Resolve(ctx context.Context, subject string) (Principal, error) {
	details, err := r.loader.LoadBySubject(ctx, subject)
	if err != nil {
		return Principal{}, err
	}
	return NewPrincipal(details), nil
}

// CachingResolver keeps resolved principals for a short ttl. Account
// mutations must call Invalidate for the subject.
type CachingResolver struct {
	next  PrincipalResolver
	cache *expirable.LRU[string, Principal]
	// generation moves on every Invalidate. A load that overlaps one is
	// returned but not stored.
	mu         sync.Mutex
	generation uint64
}

// NewCachingResolver wraps next with an LRU of the given size and ttl
func NewCachingResolver(next PrincipalResolver, size int, ttl time.Duration) *CachingResolver {
	return &CachingResolver{
		next:  next,
		cache: expirable.NewLRU[string, Principal](size, nil, ttl),
	}
}

// Resolve returns the cached principal or resolves and stores it. Failures are not cached.
func (r *CachingResolver) Resolve(ctx context.Context, subject string) (Principal, error) {
	if p, ok := r.cache.Get(subject); ok {
		return p, nil
	}
	r.mu.Lock()
	gen := r.generation
	r.mu.Unlock()

	p, err := r.next.Resolve(ctx, subject)
	if err != nil {
		return Principal{}, err
	}

	r.mu.Lock()
	if r.generation == gen {
		r.cache.Add(subject, p)
	}
	r.mu.Unlock()
	return p, nil
}

// Invalidate drops the cached principal for subject and keeps loads already
// in flight from storing what they read
func (r *CachingResolver) Invalidate(subject string) {
	r.mu.Lock()
	r.generation++
	r.cache.Remove(subject)
	r.mu.Unlock()
}
