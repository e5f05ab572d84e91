package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"wattplan-cloud/internal/calc"
	"wattplan-cloud/internal/customer"
	"wattplan-cloud/internal/extraction"
	"wattplan-cloud/internal/progress"
	proposal "wattplan-cloud/internal/proposal/domain"
	"wattplan-cloud/internal/proposal/infrastructure/memory"
	"wattplan-cloud/internal/refdata"
	"wattplan-cloud/internal/slides"
)

type stubClock struct{ at time.Time }

func (c stubClock) Now() time.Time { return c.at }

func stubRenderer(slide slides.Slide) (string, error) {
	return "<section>" + string(slide.SlideType) + "</section>", nil
}

func failingRenderer(slide slides.Slide) (string, error) {
	if slide.SlideType == slides.TypeBatteryRecommendation {
		return "", errors.New("render exploded")
	}
	return "<section/>", nil
}

func newTestService(t *testing.T, render SlideHTMLRenderer) (*Service, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository()
	orchestrator, err := calc.NewOrchestrator(refdata.DefaultCatalog(), nil)
	if err != nil {
		t.Fatalf("orchestrator: %v", err)
	}
	if render == nil {
		render = stubRenderer
	}
	service, err := NewService(repo, orchestrator, progress.NewMemoryStore(), render, nil, nil,
		stubClock{at: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	return service, repo
}

func testCustomer() customer.Customer {
	return customer.Customer{
		Name:          "Jordan Example",
		State:         "VIC",
		EVInterest:    true,
		GasAppliances: []string{"Gas Hot Water"},
	}
}

func electricityData() extraction.ElectricityBillData {
	return extraction.ElectricityBillData{
		Retailer: "AGL", TotalAmount: 540, TotalUsageKwh: 1800,
		BillingDays: 90, ExtractionConfidence: 90,
	}
}

func calculated(t *testing.T, service *Service) *proposal.Proposal {
	t.Helper()
	p, err := service.Create(context.Background(), testCustomer())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	p, err = service.Calculate(context.Background(), p.ID, electricityData(), nil)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	return p
}

func waitTerminal(t *testing.T, service *Service, id string) *progress.GenerationProgress {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		record, err := service.Progress(id)
		if err != nil {
			t.Fatalf("progress: %v", err)
		}
		if record.Terminal() {
			return record
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("generation never reached a terminal status")
	return nil
}

func TestService_CreateAndGet(t *testing.T) {
	service, _ := newTestService(t, nil)

	p, err := service.Create(context.Background(), testCustomer())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Status != proposal.StatusDraft {
		t.Fatalf("status = %s, want draft", p.Status)
	}

	loaded, err := service.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Customer.Name != "Jordan Example" {
		t.Fatalf("customer = %q", loaded.Customer.Name)
	}
}

func TestService_Calculate(t *testing.T) {
	service, _ := newTestService(t, nil)
	p := calculated(t, service)

	if p.Status != proposal.StatusGenerated {
		t.Fatalf("status = %s, want generated", p.Status)
	}
	if p.Calculations == nil {
		t.Fatal("no calculation snapshot")
	}
	if len(p.Slides) == 0 {
		t.Fatal("no slides assembled")
	}
	if p.ElectricityBill == nil {
		t.Fatal("bill not stored on proposal")
	}
}

func TestService_CalculateRejectsInvalidBill(t *testing.T) {
	service, _ := newTestService(t, nil)
	p, _ := service.Create(context.Background(), testCustomer())

	bad := electricityData()
	bad.TotalAmount = 0
	if _, err := service.Calculate(context.Background(), p.ID, bad, nil); !errors.Is(err, extraction.ErrAmountRequired) {
		t.Fatalf("err = %v, want ErrAmountRequired", err)
	}

	// The proposal stays untouched in draft.
	loaded, _ := service.Get(context.Background(), p.ID)
	if loaded.Status != proposal.StatusDraft {
		t.Fatalf("status = %s, want draft", loaded.Status)
	}
}

func TestService_CalculateStoresWarnings(t *testing.T) {
	service, _ := newTestService(t, nil)
	p, _ := service.Create(context.Background(), testCustomer())

	shaky := electricityData()
	shaky.ExtractionConfidence = 20
	result, err := service.Calculate(context.Background(), p.ID, shaky, nil)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Code != extraction.WarnLowConfidence {
		t.Fatalf("warnings = %v", result.Warnings)
	}
}

func TestService_Recalculate(t *testing.T) {
	service, _ := newTestService(t, nil)
	p := calculated(t, service)

	gas := &extraction.GasBillData{Retailer: "Origin", TotalAmount: 315, UsageMJ: 9000, BillingDays: 90, ExtractionConfidence: 85}
	again, err := service.Calculate(context.Background(), p.ID, electricityData(), gas)
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if again.Calculations.Gas == nil {
		t.Fatal("second run dropped the gas analysis")
	}
}

func TestService_Generate(t *testing.T) {
	service, _ := newTestService(t, nil)
	p := calculated(t, service)

	if err := service.Generate(context.Background(), p.ID); err != nil {
		t.Fatalf("generate: %v", err)
	}

	record := waitTerminal(t, service, p.ID)
	if record.Status != progress.StatusComplete {
		t.Fatalf("status = %s, want complete", record.Status)
	}
	if record.CompletedSlides != record.TotalSlides {
		t.Fatalf("completed %d of %d", record.CompletedSlides, record.TotalSlides)
	}
	for _, slide := range record.Slides {
		if slide.Status != progress.StatusComplete || slide.HTML == "" {
			t.Fatalf("slide %d incomplete: %+v", slide.SlideIndex, slide)
		}
	}

	if err := service.ClearProgress(p.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := service.Progress(p.ID); !errors.Is(err, progress.ErrNotFound) {
		t.Fatalf("progress after clear = %v, want ErrNotFound", err)
	}
}

func TestService_GenerateFailureStopsRun(t *testing.T) {
	service, _ := newTestService(t, failingRenderer)
	p := calculated(t, service)

	if err := service.Generate(context.Background(), p.ID); err != nil {
		t.Fatalf("generate: %v", err)
	}

	record := waitTerminal(t, service, p.ID)
	if record.Status != progress.StatusError {
		t.Fatalf("status = %s, want error", record.Status)
	}
	if record.Error == "" {
		t.Fatal("no error message recorded")
	}
	sawError := false
	for _, slide := range record.Slides {
		if slide.Status == progress.StatusError {
			sawError = true
			break
		}
	}
	if !sawError {
		t.Fatal("no slide carries the failure")
	}
}

func TestService_GenerateRequiresCalculation(t *testing.T) {
	service, _ := newTestService(t, nil)
	p, _ := service.Create(context.Background(), testCustomer())

	if err := service.Generate(context.Background(), p.ID); !errors.Is(err, proposal.ErrNotCalculated) {
		t.Fatalf("err = %v, want ErrNotCalculated", err)
	}
}

func TestService_GenerateRejectsDoubleStart(t *testing.T) {
	service, _ := newTestService(t, nil)
	p := calculated(t, service)

	if err := service.Generate(context.Background(), p.ID); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := service.Generate(context.Background(), p.ID); !errors.Is(err, progress.ErrAlreadyTracking) {
		t.Fatalf("second generate = %v, want ErrAlreadyTracking", err)
	}
	waitTerminal(t, service, p.ID)
}

func TestService_ExportLifecycle(t *testing.T) {
	service, _ := newTestService(t, nil)
	p := calculated(t, service)

	if err := service.MarkExported(context.Background(), p.ID, "pdf"); err != nil {
		t.Fatalf("export: %v", err)
	}
	loaded, _ := service.Get(context.Background(), p.ID)
	if loaded.Status != proposal.StatusExported {
		t.Fatalf("status = %s, want exported", loaded.Status)
	}

	if err := service.Archive(context.Background(), p.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
}

func TestService_SoftDeleteHidesAndRestoreRecovers(t *testing.T) {
	service, _ := newTestService(t, nil)
	p := calculated(t, service)

	if err := service.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := service.Get(context.Background(), p.ID); !errors.Is(err, proposal.ErrNotFound) {
		t.Fatalf("get deleted = %v, want ErrNotFound", err)
	}
	list, _ := service.List(context.Background())
	if len(list) != 0 {
		t.Fatalf("deleted proposal still listed: %d", len(list))
	}

	if err := service.Restore(context.Background(), p.ID); err != nil {
		t.Fatalf("restore: %v", err)
	}
	restored, err := service.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get restored: %v", err)
	}
	if restored.Calculations == nil {
		t.Fatal("snapshot lost across delete/restore")
	}
}

func TestService_ListNewestFirst(t *testing.T) {
	repo := memory.NewRepository()
	orchestrator, _ := calc.NewOrchestrator(refdata.DefaultCatalog(), nil)

	older := stubClock{at: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	newer := stubClock{at: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}

	first, _ := NewService(repo, orchestrator, progress.NewMemoryStore(), stubRenderer, nil, nil, older)
	second, _ := NewService(repo, orchestrator, progress.NewMemoryStore(), stubRenderer, nil, nil, newer)

	a, _ := first.Create(context.Background(), customer.Customer{Name: "Old"})
	b, _ := second.Create(context.Background(), customer.Customer{Name: "New"})

	list, err := first.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d proposals, want 2", len(list))
	}
	if list[0].ID != b.ID || list[1].ID != a.ID {
		t.Fatal("list not newest first")
	}
}
