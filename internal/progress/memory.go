package progress

import (
	"sync"
	"time"

	"wattplan-cloud/internal/slides"
)

// MemoryStore is the in-process Store. Multi-instance deployments need an
// external implementation behind the same interface.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]*GenerationProgress
}

// NewMemoryStore constructs a store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]*GenerationProgress)}
}

// Start registers a fresh record covering the given slides.
func (s *MemoryStore) Start(proposalID string, planned []slides.Slide, startedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[proposalID]; exists {
		return ErrAlreadyTracking
	}

	slideStates := make([]SlideProgress, len(planned))
	for i, slide := range planned {
		slideStates[i] = SlideProgress{
			SlideIndex: i,
			SlideType:  slide.SlideType,
			Title:      slide.Title,
			Status:     StatusPending,
		}
	}
	s.data[proposalID] = &GenerationProgress{
		ProposalID:  proposalID,
		Status:      StatusGenerating,
		TotalSlides: len(planned),
		Slides:      slideStates,
		StartedAt:   startedAt,
	}
	return nil
}

// UpdateSlide sets one slide's status; other slides are untouched.
func (s *MemoryStore) UpdateSlide(proposalID string, slideIndex int, status, html, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.data[proposalID]
	if !ok {
		return ErrNotFound
	}
	if slideIndex < 0 || slideIndex >= len(record.Slides) {
		return ErrSlideIndex
	}

	slide := &record.Slides[slideIndex]
	slide.Status = status
	slide.HTML = html
	slide.Error = errMsg

	if !record.Terminal() {
		record.CurrentSlideIndex = slideIndex
		completed := 0
		for _, sp := range record.Slides {
			if sp.Status == StatusComplete {
				completed++
			}
		}
		record.CompletedSlides = completed
	}
	return nil
}

// Complete marks the run complete. Terminal statuses are sticky.
func (s *MemoryStore) Complete(proposalID string, at time.Time) error {
	return s.finish(proposalID, StatusComplete, "", at)
}

// Fail marks the run failed. Terminal statuses are sticky.
func (s *MemoryStore) Fail(proposalID string, errMsg string, at time.Time) error {
	return s.finish(proposalID, StatusError, errMsg, at)
}

func (s *MemoryStore) finish(proposalID, status, errMsg string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.data[proposalID]
	if !ok {
		return ErrNotFound
	}
	if record.Terminal() {
		return nil
	}
	record.Status = status
	record.Error = errMsg
	record.CompletedAt = &at
	return nil
}

// Get returns a detached copy so callers cannot mutate shared state.
func (s *MemoryStore) Get(proposalID string) (*GenerationProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.data[proposalID]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *record
	copied.Slides = make([]SlideProgress, len(record.Slides))
	copy(copied.Slides, record.Slides)
	if record.CompletedAt != nil {
		at := *record.CompletedAt
		copied.CompletedAt = &at
	}
	return &copied, nil
}

// Clear removes the record. Records never expire on their own.
func (s *MemoryStore) Clear(proposalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[proposalID]; !ok {
		return ErrNotFound
	}
	delete(s.data, proposalID)
	return nil
}

// Active returns the number of tracked records.
func (s *MemoryStore) Active() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
