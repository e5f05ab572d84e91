package proposal

import "context"

// Repository persists proposals. Get returns soft-deleted proposals too;
// visibility gating is the application layer's concern so restore can find
// what it needs.
type Repository interface {
	Save(ctx context.Context, p *Proposal) error
	Get(ctx context.Context, id string) (*Proposal, error)
	// List returns proposals ordered by creation time descending. Deleted
	// proposals are only returned when includeDeleted is set.
	List(ctx context.Context, includeDeleted bool) ([]*Proposal, error)
}
