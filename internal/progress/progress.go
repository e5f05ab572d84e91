// Package progress tracks slide-by-slide generation for the polling UI.
// Generation itself is fire-and-forget; there is no cancellation primitive.
// Clearing a record discards the report card, not the outstanding work.
package progress

import (
	"errors"
	"time"

	"wattplan-cloud/internal/slides"
)

// Statuses of a generation run and of individual slides.
const (
	StatusPending    = "pending"
	StatusGenerating = "generating"
	StatusComplete   = "complete"
	StatusError      = "error"
)

var (
	// ErrNotFound is returned when no record exists for a proposal.
	ErrNotFound = errors.New("progress: not found")
	// ErrAlreadyTracking is returned when a proposal already has a record.
	ErrAlreadyTracking = errors.New("progress: already tracking proposal")
	// ErrSlideIndex is returned for an out-of-range slide index.
	ErrSlideIndex = errors.New("progress: slide index out of range")
)

// SlideProgress is the per-slide status visible to the polling boundary.
type SlideProgress struct {
	SlideIndex int              `json:"slideIndex"`
	SlideType  slides.SlideType `json:"slideType"`
	Title      string           `json:"title"`
	Status     string           `json:"status"`
	HTML       string           `json:"html,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// GenerationProgress is one proposal's generation report card.
type GenerationProgress struct {
	ProposalID        string          `json:"proposalId"`
	Status            string          `json:"status"`
	TotalSlides       int             `json:"totalSlides"`
	CompletedSlides   int             `json:"completedSlides"`
	CurrentSlideIndex int             `json:"currentSlideIndex"`
	Slides            []SlideProgress `json:"slides"`
	StartedAt         time.Time       `json:"startedAt"`
	CompletedAt       *time.Time      `json:"completedAt,omitempty"`
	Error             string          `json:"error,omitempty"`
}

// Terminal reports whether the run reached a sticky final status.
func (p GenerationProgress) Terminal() bool {
	return p.Status == StatusComplete || p.Status == StatusError
}

// Store tracks at most one progress record per proposal id. Implementations
// must keep per-slide updates independent, make terminal statuses sticky,
// and retain records until the caller explicitly clears them.
type Store interface {
	// Start registers a fresh record covering the given slides.
	Start(proposalID string, planned []slides.Slide, startedAt time.Time) error
	// UpdateSlide sets one slide's status and rendered output.
	UpdateSlide(proposalID string, slideIndex int, status, html, errMsg string) error
	// Complete marks the run complete and stamps the completion time.
	Complete(proposalID string, at time.Time) error
	// Fail marks the run failed and stamps the completion time.
	Fail(proposalID string, errMsg string, at time.Time) error
	// Get returns a detached copy of the record.
	Get(proposalID string) (*GenerationProgress, error)
	// Clear removes the record. It never stops outstanding work.
	Clear(proposalID string) error
}
