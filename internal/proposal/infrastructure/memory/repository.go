package memory

import (
	"context"
	"sort"
	"sync"

	proposal "wattplan-cloud/internal/proposal/domain"
)

// Repository is an in-memory proposal repository for demo/testing.
type Repository struct {
	mu   sync.RWMutex
	data map[string]*proposal.Proposal
}

// NewRepository constructs a repository.
func NewRepository() *Repository {
	return &Repository{data: make(map[string]*proposal.Proposal)}
}

// Save persists a detached copy of the proposal.
func (r *Repository) Save(ctx context.Context, p *proposal.Proposal) error {
	_ = ctx
	if p == nil {
		return proposal.ErrNilProposal
	}
	if p.ID == "" {
		return proposal.ErrEmptyID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[p.ID] = p.Clone()
	return nil
}

// Get loads a proposal, deleted or not.
func (r *Repository) Get(ctx context.Context, id string) (*proposal.Proposal, error) {
	_ = ctx
	if id == "" {
		return nil, proposal.ErrEmptyID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[id]
	if !ok {
		return nil, proposal.ErrNotFound
	}
	return p.Clone(), nil
}

// List returns proposals newest first.
func (r *Repository) List(ctx context.Context, includeDeleted bool) ([]*proposal.Proposal, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*proposal.Proposal, 0, len(r.data))
	for _, p := range r.data {
		if p.IsDeleted() && !includeDeleted {
			continue
		}
		result = append(result, p.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
