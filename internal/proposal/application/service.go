package application

import (
	"context"
	"errors"
	"log"
	"time"

	"wattplan-cloud/internal/calc"
	"wattplan-cloud/internal/customer"
	"wattplan-cloud/internal/extraction"
	"wattplan-cloud/internal/observability/metrics"
	"wattplan-cloud/internal/progress"
	proposal "wattplan-cloud/internal/proposal/domain"
	"wattplan-cloud/internal/slides"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// SlideHTMLRenderer renders one slide to an HTML fragment. Injected so the
// generation runner can be tested without the real renderer.
type SlideHTMLRenderer func(slides.Slide) (string, error)

// Service handles the proposal use cases.
type Service struct {
	repo          proposal.Repository
	orchestrator  *calc.Orchestrator
	progressStore progress.Store
	renderSlide   SlideHTMLRenderer
	metrics       *metrics.Metrics
	logger        *log.Logger
	clock         calc.Clock
}

// NewService constructs the proposal service.
func NewService(
	repo proposal.Repository,
	orchestrator *calc.Orchestrator,
	progressStore progress.Store,
	renderSlide SlideHTMLRenderer,
	m *metrics.Metrics,
	logger *log.Logger,
	clock calc.Clock,
) (*Service, error) {
	if repo == nil {
		return nil, errors.New("proposal service: nil repository")
	}
	if orchestrator == nil {
		return nil, errors.New("proposal service: nil orchestrator")
	}
	if progressStore == nil {
		return nil, errors.New("proposal service: nil progress store")
	}
	if renderSlide == nil {
		return nil, errors.New("proposal service: nil slide renderer")
	}
	if clock == nil {
		clock = calc.SystemClock{}
	}
	return &Service{
		repo:          repo,
		orchestrator:  orchestrator,
		progressStore: progressStore,
		renderSlide:   renderSlide,
		metrics:       m,
		logger:        logger,
		clock:         clock,
	}, nil
}

// Create opens a draft proposal for a customer.
func (s *Service) Create(ctx context.Context, cust customer.Customer) (*proposal.Proposal, error) {
	p := proposal.NewProposal(cust, s.clock.Now())
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get loads a proposal. Soft-deleted proposals read as not found.
func (s *Service) Get(ctx context.Context, id string) (*proposal.Proposal, error) {
	p, err := s.getAny(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsDeleted() {
		return nil, proposal.ErrNotFound
	}
	return p, nil
}

func (s *Service) getAny(ctx context.Context, id string) (*proposal.Proposal, error) {
	if id == "" {
		return nil, proposal.ErrEmptyID
	}
	return s.repo.Get(ctx, id)
}

// List returns the live proposals.
func (s *Service) List(ctx context.Context) ([]*proposal.Proposal, error) {
	return s.repo.List(ctx, false)
}

// Calculate validates the extracted bills, runs the calculation engine and
// assembles the slide list. A missing or invalid electricity bill rejects
// the request; the gas bill is optional. Data-quality warnings are stored
// on the proposal and returned for the caller to act on.
func (s *Service) Calculate(ctx context.Context, id string, electricity extraction.ElectricityBillData, gas *extraction.GasBillData) (*proposal.Proposal, error) {
	warnings, err := extraction.ValidateElectricity(electricity)
	if err != nil {
		return nil, err
	}
	if gas != nil {
		gasWarnings, err := extraction.ValidateGas(*gas)
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, gasWarnings...)
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.BeginCalculation(&electricity, gas, warnings, s.clock.Now()); err != nil {
		return nil, err
	}

	started := time.Now()
	var gasBill *calc.GasBill
	if gas != nil {
		bill := gas.ToBill()
		gasBill = &bill
	}
	calculations, err := s.orchestrator.Run(p.Customer, electricity.ToBill(), gasBill)
	if err != nil {
		s.countCalculation(resultError, started)
		_ = p.FailCalculation(s.clock.Now())
		_ = s.repo.Save(ctx, p)
		return nil, err
	}

	slideList, err := slides.Assemble(p.Customer, calculations)
	if err != nil {
		s.countCalculation(resultError, started)
		_ = p.FailCalculation(s.clock.Now())
		_ = s.repo.Save(ctx, p)
		return nil, err
	}

	if err := p.CompleteCalculation(calculations, slideList, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	s.countCalculation(resultSuccess, started)
	s.logf("calculation complete: proposal=%s slides=%d", p.ID, len(slideList))
	return p, nil
}

func (s *Service) countCalculation(result string, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.CalculationsTotal.WithLabelValues(result).Inc()
	s.metrics.CalculationDuration.Observe(time.Since(started).Seconds())
}

// MarkExported records a successful export and counts it.
func (s *Service) MarkExported(ctx context.Context, id, format string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := p.MarkExported(s.clock.Now()); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.ExportsTotal.WithLabelValues(format).Inc()
	}
	return nil
}

// Archive retires a proposal.
func (s *Service) Archive(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := p.Archive(s.clock.Now()); err != nil {
		return err
	}
	return s.repo.Save(ctx, p)
}

// Delete soft-deletes a proposal. Reversible via Restore.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := p.SoftDelete(s.clock.Now()); err != nil {
		return err
	}
	return s.repo.Save(ctx, p)
}

// Restore undoes a soft delete.
func (s *Service) Restore(ctx context.Context, id string) error {
	p, err := s.getAny(ctx, id)
	if err != nil {
		return err
	}
	if err := p.Restore(s.clock.Now()); err != nil {
		return err
	}
	return s.repo.Save(ctx, p)
}

// Progress returns the generation progress record for a proposal.
func (s *Service) Progress(id string) (*progress.GenerationProgress, error) {
	return s.progressStore.Get(id)
}

// ClearProgress discards the progress record. It does not stop outstanding
// generation work.
func (s *Service) ClearProgress(id string) error {
	return s.progressStore.Clear(id)
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
