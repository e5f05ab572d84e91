package application

import (
	"context"

	"wattplan-cloud/internal/progress"
	proposal "wattplan-cloud/internal/proposal/domain"
	"wattplan-cloud/internal/slides"
)

// Generate starts slide rendering for a calculated proposal and returns as
// soon as the progress record exists. Rendering runs in a detached
// goroutine: there is no way to abort it, only to clear its progress
// record afterwards, and clearing never stops the work.
func (s *Service) Generate(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.Calculations == nil || len(p.Slides) == 0 {
		return proposal.ErrNotCalculated
	}

	planned := slides.IncludedOnly(p.Slides)
	if err := s.progressStore.Start(p.ID, planned, s.clock.Now()); err != nil {
		return err
	}
	s.countGeneration(progress.StatusGenerating)

	go s.renderAll(p.ID, planned)
	return nil
}

// renderAll renders the included slides one by one, reporting each to the
// progress store. The first render failure fails the whole run.
func (s *Service) renderAll(proposalID string, planned []slides.Slide) {
	for i, slide := range planned {
		_ = s.progressStore.UpdateSlide(proposalID, i, progress.StatusGenerating, "", "")

		html, err := s.renderSlide(slide)
		if err != nil {
			_ = s.progressStore.UpdateSlide(proposalID, i, progress.StatusError, "", err.Error())
			_ = s.progressStore.Fail(proposalID, err.Error(), s.clock.Now())
			s.countGeneration(progress.StatusError)
			s.logf("generation failed: proposal=%s slide=%d type=%s err=%v", proposalID, i, slide.SlideType, err)
			return
		}

		_ = s.progressStore.UpdateSlide(proposalID, i, progress.StatusComplete, html, "")
		if s.metrics != nil {
			s.metrics.SlideRendersTotal.Inc()
		}
	}

	_ = s.progressStore.Complete(proposalID, s.clock.Now())
	s.countGeneration(progress.StatusComplete)
	s.logf("generation complete: proposal=%s slides=%d", proposalID, len(planned))
}

func (s *Service) countGeneration(status string) {
	if s.metrics != nil {
		s.metrics.GenerationsTotal.WithLabelValues(status).Inc()
	}
}
