package proposal

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"wattplan-cloud/internal/calc"
	"wattplan-cloud/internal/customer"
	"wattplan-cloud/internal/extraction"
	"wattplan-cloud/internal/slides"
)

// Lifecycle statuses. Transitions only move forward; soft delete is an
// independent, reversible flag orthogonal to status.
const (
	StatusDraft       = "draft"
	StatusCalculating = "calculating"
	StatusGenerated   = "generated"
	StatusExported    = "exported"
	StatusArchived    = "archived"
)

// transitions lists the legal forward moves.
var transitions = map[string][]string{
	StatusDraft:       {StatusCalculating},
	StatusCalculating: {StatusGenerated, StatusDraft},
	StatusGenerated:   {StatusCalculating, StatusExported, StatusArchived},
	StatusExported:    {StatusCalculating, StatusExported, StatusArchived},
	StatusArchived:    {},
}

// Proposal ties one customer to a calculation snapshot and the slide list
// assembled from it. Calculations and Slides are opaque payloads to the
// persistence layer.
type Proposal struct {
	ID       string            `json:"id"`
	Customer customer.Customer `json:"customer"`

	ElectricityBill *extraction.ElectricityBillData `json:"electricityBill,omitempty"`
	GasBill         *extraction.GasBillData         `json:"gasBill,omitempty"`
	Warnings        []extraction.Warning            `json:"warnings,omitempty"`

	Status       string             `json:"status"`
	Calculations *calc.Calculations `json:"calculations,omitempty"`
	Slides       []slides.Slide     `json:"slidesData,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// NewProposal creates a draft proposal for a customer.
func NewProposal(cust customer.Customer, now time.Time) *Proposal {
	return &Proposal{
		ID:        NewID(),
		Customer:  cust,
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewID generates a random proposal identifier.
func NewID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return "prop-" + hex.EncodeToString(buf)
}

// IsDeleted reports whether the proposal is soft-deleted.
func (p *Proposal) IsDeleted() bool { return p.DeletedAt != nil }

func (p *Proposal) transition(to string, now time.Time) error {
	if p.IsDeleted() {
		return ErrDeleted
	}
	for _, allowed := range transitions[p.Status] {
		if allowed == to {
			p.Status = to
			p.UpdatedAt = now
			return nil
		}
	}
	return ErrInvalidTransition
}

// BeginCalculation records the bills being calculated and moves to the
// calculating status. Recalculation from a generated or exported proposal
// is allowed and replaces the previous snapshot.
func (p *Proposal) BeginCalculation(electricity *extraction.ElectricityBillData, gas *extraction.GasBillData, warnings []extraction.Warning, now time.Time) error {
	if err := p.transition(StatusCalculating, now); err != nil {
		return err
	}
	p.ElectricityBill = electricity
	p.GasBill = gas
	p.Warnings = warnings
	p.Calculations = nil
	p.Slides = nil
	return nil
}

// CompleteCalculation stores the calculation snapshot and its slides.
func (p *Proposal) CompleteCalculation(calculations *calc.Calculations, slideList []slides.Slide, now time.Time) error {
	if calculations == nil {
		return ErrNotCalculated
	}
	if err := p.transition(StatusGenerated, now); err != nil {
		return err
	}
	p.Calculations = calculations
	p.Slides = slideList
	return nil
}

// FailCalculation rolls a calculating proposal back to draft.
func (p *Proposal) FailCalculation(now time.Time) error {
	return p.transition(StatusDraft, now)
}

// MarkExported records a successful export.
func (p *Proposal) MarkExported(now time.Time) error {
	return p.transition(StatusExported, now)
}

// Archive retires the proposal. Archived is terminal.
func (p *Proposal) Archive(now time.Time) error {
	return p.transition(StatusArchived, now)
}

// SoftDelete hides the proposal from list and read operations. Reversible.
func (p *Proposal) SoftDelete(now time.Time) error {
	if p.IsDeleted() {
		return ErrDeleted
	}
	at := now
	p.DeletedAt = &at
	p.UpdatedAt = now
	return nil
}

// Restore undoes a soft delete.
func (p *Proposal) Restore(now time.Time) error {
	if !p.IsDeleted() {
		return ErrNotDeleted
	}
	p.DeletedAt = nil
	p.UpdatedAt = now
	return nil
}

// Clone returns a detached copy safe to hand across goroutines.
func (p *Proposal) Clone() *Proposal {
	if p == nil {
		return nil
	}
	copied := *p
	if p.DeletedAt != nil {
		at := *p.DeletedAt
		copied.DeletedAt = &at
	}
	if p.Slides != nil {
		copied.Slides = make([]slides.Slide, len(p.Slides))
		copy(copied.Slides, p.Slides)
	}
	return &copied
}
