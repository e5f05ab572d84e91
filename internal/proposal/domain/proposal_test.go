package proposal

import (
	"errors"
	"testing"
	"time"

	"wattplan-cloud/internal/calc"
	"wattplan-cloud/internal/customer"
	"wattplan-cloud/internal/extraction"
	"wattplan-cloud/internal/slides"
)

var testTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func electricityData() *extraction.ElectricityBillData {
	return &extraction.ElectricityBillData{Retailer: "AGL", TotalAmount: 540, TotalUsageKwh: 1800, BillingDays: 90}
}

func calculatedProposal(t *testing.T) *Proposal {
	t.Helper()
	p := NewProposal(customer.Customer{Name: "Jordan"}, testTime)
	if err := p.BeginCalculation(electricityData(), nil, nil, testTime); err != nil {
		t.Fatalf("begin: %v", err)
	}
	err := p.CompleteCalculation(&calc.Calculations{GeneratedAt: testTime},
		[]slides.Slide{{SlideNumber: 1, SlideType: slides.TypeCover, IsIncluded: true}}, testTime)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	return p
}

func TestNewProposal(t *testing.T) {
	p := NewProposal(customer.Customer{Name: "Jordan"}, testTime)

	if p.Status != StatusDraft {
		t.Fatalf("status = %s, want draft", p.Status)
	}
	if p.ID == "" {
		t.Fatal("no id assigned")
	}
	if p.IsDeleted() {
		t.Fatal("fresh proposal marked deleted")
	}
}

func TestLifecycle_HappyPath(t *testing.T) {
	p := calculatedProposal(t)

	if p.Status != StatusGenerated {
		t.Fatalf("status = %s, want generated", p.Status)
	}
	if err := p.MarkExported(testTime); err != nil {
		t.Fatalf("export: %v", err)
	}
	// Re-export is allowed.
	if err := p.MarkExported(testTime); err != nil {
		t.Fatalf("re-export: %v", err)
	}
	if err := p.Archive(testTime); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if err := p.MarkExported(testTime); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("archived is terminal, got %v", err)
	}
}

func TestBeginCalculation_ClearsPreviousSnapshot(t *testing.T) {
	p := calculatedProposal(t)

	if err := p.BeginCalculation(electricityData(), nil, nil, testTime); err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if p.Calculations != nil || p.Slides != nil {
		t.Fatal("previous snapshot survived recalculation")
	}
	if p.Status != StatusCalculating {
		t.Fatalf("status = %s, want calculating", p.Status)
	}
}

func TestCompleteCalculation_RequiresCalculations(t *testing.T) {
	p := NewProposal(customer.Customer{Name: "Jordan"}, testTime)
	_ = p.BeginCalculation(electricityData(), nil, nil, testTime)

	if err := p.CompleteCalculation(nil, nil, testTime); !errors.Is(err, ErrNotCalculated) {
		t.Fatalf("err = %v, want ErrNotCalculated", err)
	}
}

func TestFailCalculation_RollsBackToDraft(t *testing.T) {
	p := NewProposal(customer.Customer{Name: "Jordan"}, testTime)
	_ = p.BeginCalculation(electricityData(), nil, nil, testTime)

	if err := p.FailCalculation(testTime); err != nil {
		t.Fatalf("fail: %v", err)
	}
	if p.Status != StatusDraft {
		t.Fatalf("status = %s, want draft", p.Status)
	}
}

func TestInvalidTransitions(t *testing.T) {
	p := NewProposal(customer.Customer{Name: "Jordan"}, testTime)

	if err := p.MarkExported(testTime); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("draft export = %v, want ErrInvalidTransition", err)
	}
	if err := p.Archive(testTime); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("draft archive = %v, want ErrInvalidTransition", err)
	}
}

func TestSoftDeleteAndRestore(t *testing.T) {
	p := calculatedProposal(t)

	if err := p.SoftDelete(testTime); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !p.IsDeleted() {
		t.Fatal("not marked deleted")
	}
	if err := p.SoftDelete(testTime); !errors.Is(err, ErrDeleted) {
		t.Fatalf("double delete = %v, want ErrDeleted", err)
	}
	// Lifecycle moves are blocked while deleted.
	if err := p.MarkExported(testTime); !errors.Is(err, ErrDeleted) {
		t.Fatalf("export while deleted = %v, want ErrDeleted", err)
	}

	if err := p.Restore(testTime); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if p.IsDeleted() {
		t.Fatal("still deleted after restore")
	}
	if err := p.Restore(testTime); !errors.Is(err, ErrNotDeleted) {
		t.Fatalf("double restore = %v, want ErrNotDeleted", err)
	}
	// Status survived the delete/restore cycle.
	if p.Status != StatusGenerated {
		t.Fatalf("status = %s, want generated", p.Status)
	}
}

func TestClone_Detaches(t *testing.T) {
	p := calculatedProposal(t)

	copied := p.Clone()
	copied.Slides[0].IsIncluded = false
	copied.Status = StatusArchived

	if !p.Slides[0].IsIncluded {
		t.Fatal("clone shares slide backing array")
	}
	if p.Status == StatusArchived {
		t.Fatal("clone shares status")
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
