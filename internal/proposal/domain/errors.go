package proposal

import "errors"

var (
	// ErrEmptyID is returned when a proposal id is empty.
	ErrEmptyID = errors.New("proposal: empty id")
	// ErrNotFound is returned when a proposal does not exist or is deleted.
	ErrNotFound = errors.New("proposal: not found")
	// ErrNilProposal is returned when saving a nil proposal.
	ErrNilProposal = errors.New("proposal: nil proposal")
	// ErrInvalidTransition is returned for an illegal lifecycle move.
	ErrInvalidTransition = errors.New("proposal: invalid status transition")
	// ErrDeleted is returned when mutating a soft-deleted proposal.
	ErrDeleted = errors.New("proposal: deleted")
	// ErrNotDeleted is returned when restoring a live proposal.
	ErrNotDeleted = errors.New("proposal: not deleted")
	// ErrNotCalculated is returned when slides or exports are requested
	// before a calculation run has completed.
	ErrNotCalculated = errors.New("proposal: not calculated")
)
