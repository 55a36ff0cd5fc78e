// Package store keeps request snapshots in memory so callers can poll
// get_result after an async submit. There is no persistence; entries expire
// after the configured TTL.
package store

import (
	"errors"
	"time"

	"github.com/factyne/factyne/internal/model"
	gocache "github.com/patrickmn/go-cache"
)

// ErrNotFound is returned when no request with the given id is stored (or
// it has expired).
var ErrNotFound = errors.New("request not found")

// RequestStore holds snapshots of fact-check requests keyed by id. Snapshots
// are deep copies, so readers never observe a request mid-mutation.
type RequestStore struct {
	cache *gocache.Cache
}

// New creates a store whose entries expire after ttl.
func New(ttl time.Duration) *RequestStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RequestStore{cache: gocache.New(ttl, 10*time.Minute)}
}

// Put stores a snapshot of the request, refreshing its TTL.
func (s *RequestStore) Put(req *model.FactCheckRequest) {
	s.cache.SetDefault(req.ID, snapshot(req))
}

// Get returns a copy of the stored request.
func (s *RequestStore) Get(id string) (*model.FactCheckRequest, error) {
	val, found := s.cache.Get(id)
	if !found {
		return nil, ErrNotFound
	}
	stored := val.(*model.FactCheckRequest)
	return snapshot(stored), nil
}

// snapshot deep-copies the request so stored state and caller state never
// share slices.
func snapshot(req *model.FactCheckRequest) *model.FactCheckRequest {
	cp := *req
	if req.Claims != nil {
		cp.Claims = make([]model.Claim, len(req.Claims))
		copy(cp.Claims, req.Claims)
	}
	if req.Contradictions != nil {
		cp.Contradictions = make([]model.ContradictionPair, len(req.Contradictions))
		copy(cp.Contradictions, req.Contradictions)
	}
	return &cp
}
