package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wattplan-cloud/internal/calc"
	"wattplan-cloud/internal/progress"
	proposalapp "wattplan-cloud/internal/proposal/application"
	proposal "wattplan-cloud/internal/proposal/domain"
	"wattplan-cloud/internal/proposal/infrastructure/memory"
	"wattplan-cloud/internal/refdata"
	"wattplan-cloud/internal/render"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	orchestrator, err := calc.NewOrchestrator(refdata.DefaultCatalog(), nil)
	if err != nil {
		t.Fatalf("orchestrator: %v", err)
	}
	service, err := proposalapp.NewService(memory.NewRepository(), orchestrator,
		progress.NewMemoryStore(), render.SlideHTML, nil, nil, nil)
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	handler, err := NewHandler(service, nil)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	return handler
}

func doJSON(t *testing.T, handler *Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func createProposal(t *testing.T, handler *Handler) proposal.Proposal {
	t.Helper()
	resp := doJSON(t, handler, http.MethodPost, "/api/v1/proposals",
		`{"customer":{"name":"Jordan Example","state":"VIC","evInterest":true,"gasAppliances":["Gas Hot Water"]}}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", resp.Code, resp.Body.String())
	}
	var p proposal.Proposal
	if err := json.Unmarshal(resp.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return p
}

func calculateProposal(t *testing.T, handler *Handler, id string) {
	t.Helper()
	resp := doJSON(t, handler, http.MethodPost, "/api/v1/proposals/"+id+"/calculate",
		`{"electricityBill":{"retailer":"AGL","totalAmount":540,"totalUsageKwh":1800,"billingDays":90,"extractionConfidence":90},
		  "gasBill":{"retailer":"Origin","totalAmount":315,"usageMj":9000,"billingDays":90,"extractionConfidence":85}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("calculate status = %d: %s", resp.Code, resp.Body.String())
	}
}

func TestHandler_CreateValidation(t *testing.T) {
	handler := newTestHandler(t)

	resp := doJSON(t, handler, http.MethodPost, "/api/v1/proposals", `{"customer":{}}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for missing name", resp.Code)
	}

	resp = doJSON(t, handler, http.MethodPost, "/api/v1/proposals", `{not json`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for bad json", resp.Code)
	}
}

func TestHandler_GetAndList(t *testing.T) {
	handler := newTestHandler(t)
	p := createProposal(t, handler)

	resp := doJSON(t, handler, http.MethodGet, "/api/v1/proposals/"+p.ID, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("get status = %d", resp.Code)
	}

	resp = doJSON(t, handler, http.MethodGet, "/api/v1/proposals", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("list status = %d", resp.Code)
	}
	var list []proposal.Proposal
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list length = %d", len(list))
	}

	resp = doJSON(t, handler, http.MethodGet, "/api/v1/proposals/prop-missing", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("missing get status = %d, want 404", resp.Code)
	}
}

func TestHandler_CalculateFlow(t *testing.T) {
	handler := newTestHandler(t)
	p := createProposal(t, handler)

	resp := doJSON(t, handler, http.MethodPost, "/api/v1/proposals/"+p.ID+"/calculate", `{}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 without electricity bill", resp.Code)
	}

	calculateProposal(t, handler, p.ID)

	resp = doJSON(t, handler, http.MethodGet, "/api/v1/proposals/"+p.ID, "")
	var loaded proposal.Proposal
	if err := json.Unmarshal(resp.Body.Bytes(), &loaded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if loaded.Status != proposal.StatusGenerated {
		t.Fatalf("status = %s, want generated", loaded.Status)
	}
	if len(loaded.Slides) == 0 {
		t.Fatal("no slides on calculated proposal")
	}
}

func TestHandler_GenerateAndProgress(t *testing.T) {
	handler := newTestHandler(t)
	p := createProposal(t, handler)
	calculateProposal(t, handler, p.ID)

	resp := doJSON(t, handler, http.MethodPost, "/api/v1/proposals/"+p.ID+"/generate", "")
	if resp.Code != http.StatusAccepted {
		t.Fatalf("generate status = %d, want 202", resp.Code)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		resp = doJSON(t, handler, http.MethodGet, "/api/v1/proposals/"+p.ID+"/progress", "")
		if resp.Code != http.StatusOK {
			t.Fatalf("progress status = %d", resp.Code)
		}
		var record progress.GenerationProgress
		if err := json.Unmarshal(resp.Body.Bytes(), &record); err != nil {
			t.Fatalf("decode progress: %v", err)
		}
		if record.Terminal() {
			if record.Status != progress.StatusComplete {
				t.Fatalf("generation ended %s: %s", record.Status, record.Error)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("generation never finished")
		}
		time.Sleep(5 * time.Millisecond)
	}

	resp = doJSON(t, handler, http.MethodDelete, "/api/v1/proposals/"+p.ID+"/progress", "")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d, want 204", resp.Code)
	}
	resp = doJSON(t, handler, http.MethodGet, "/api/v1/proposals/"+p.ID+"/progress", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("cleared progress status = %d, want 404", resp.Code)
	}
}

func TestHandler_ExportPDF(t *testing.T) {
	handler := newTestHandler(t)
	p := createProposal(t, handler)

	// Export before calculation conflicts.
	resp := doJSON(t, handler, http.MethodGet, "/api/v1/proposals/"+p.ID+"/export.pdf", "")
	if resp.Code != http.StatusConflict {
		t.Fatalf("premature export status = %d, want 409", resp.Code)
	}

	calculateProposal(t, handler, p.ID)

	resp = doJSON(t, handler, http.MethodGet, "/api/v1/proposals/"+p.ID+"/export.pdf", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("export status = %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(resp.Header().Get("Content-Disposition"), "energy-plan-jordan-example.pdf") {
		t.Fatalf("disposition = %q", resp.Header().Get("Content-Disposition"))
	}
	if !bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("body is not a pdf")
	}

	resp = doJSON(t, handler, http.MethodGet, "/api/v1/proposals/"+p.ID, "")
	var loaded proposal.Proposal
	_ = json.Unmarshal(resp.Body.Bytes(), &loaded)
	if loaded.Status != proposal.StatusExported {
		t.Fatalf("status = %s, want exported", loaded.Status)
	}
}

func TestHandler_ExportXLSX(t *testing.T) {
	handler := newTestHandler(t)
	p := createProposal(t, handler)
	calculateProposal(t, handler, p.ID)

	resp := doJSON(t, handler, http.MethodGet, "/api/v1/proposals/"+p.ID+"/export.xlsx", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("export status = %d: %s", resp.Code, resp.Body.String())
	}
	if !bytes.HasPrefix(resp.Body.Bytes(), []byte("PK")) {
		t.Fatal("body is not a workbook")
	}
}

func TestHandler_DeleteAndRestore(t *testing.T) {
	handler := newTestHandler(t)
	p := createProposal(t, handler)

	resp := doJSON(t, handler, http.MethodDelete, "/api/v1/proposals/"+p.ID, "")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", resp.Code)
	}
	resp = doJSON(t, handler, http.MethodGet, "/api/v1/proposals/"+p.ID, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("deleted get status = %d, want 404", resp.Code)
	}

	resp = doJSON(t, handler, http.MethodPost, "/api/v1/proposals/"+p.ID+"/restore", "")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("restore status = %d", resp.Code)
	}
	resp = doJSON(t, handler, http.MethodGet, "/api/v1/proposals/"+p.ID, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("restored get status = %d", resp.Code)
	}
}

func TestHandler_ArchiveConflict(t *testing.T) {
	handler := newTestHandler(t)
	p := createProposal(t, handler)

	// Draft proposals cannot be archived.
	resp := doJSON(t, handler, http.MethodPost, "/api/v1/proposals/"+p.ID+"/archive", "")
	if resp.Code != http.StatusConflict {
		t.Fatalf("archive status = %d, want 409", resp.Code)
	}

	calculateProposal(t, handler, p.ID)
	resp = doJSON(t, handler, http.MethodPost, "/api/v1/proposals/"+p.ID+"/archive", "")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("archive status = %d", resp.Code)
	}
}

func TestHandler_UnknownRoute(t *testing.T) {
	handler := newTestHandler(t)

	resp := doJSON(t, handler, http.MethodGet, "/api/v1/other", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
	resp = doJSON(t, handler, http.MethodPut, "/api/v1/proposals", "")
	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.Code)
	}
}
