package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"wattplan-cloud/internal/audit"
	"wattplan-cloud/internal/auth"
	"wattplan-cloud/internal/customer"
	"wattplan-cloud/internal/extraction"
	"wattplan-cloud/internal/progress"
	proposalapp "wattplan-cloud/internal/proposal/application"
	proposal "wattplan-cloud/internal/proposal/domain"
	"wattplan-cloud/internal/render"
	"wattplan-cloud/internal/slides"
)

// Handler serves proposal endpoints.
type Handler struct {
	service     *proposalapp.Service
	auditLogger audit.Logger
}

// NewHandler constructs a Handler.
func NewHandler(service *proposalapp.Service, auditLogger audit.Logger) (*Handler, error) {
	if service == nil {
		return nil, errors.New("proposal handler: nil service")
	}
	return &Handler{service: service, auditLogger: auditLogger}, nil
}

// ServeHTTP routes proposal requests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/v1/proposals" {
		switch r.Method {
		case http.MethodPost:
			h.handleCreate(w, r)
		case http.MethodGet:
			h.handleList(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	if !strings.HasPrefix(r.URL.Path, "/api/v1/proposals/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/proposals/")
	parts := strings.Split(path, "/")
	if len(parts) < 1 || parts[0] == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	proposalID := parts[0]

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			h.handleGet(w, r, proposalID)
		case http.MethodDelete:
			h.handleDelete(w, r, proposalID)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	if len(parts) == 2 {
		switch {
		case parts[1] == "calculate" && r.Method == http.MethodPost:
			h.handleCalculate(w, r, proposalID)
			return
		case parts[1] == "generate" && r.Method == http.MethodPost:
			h.handleGenerate(w, r, proposalID)
			return
		case parts[1] == "progress" && r.Method == http.MethodGet:
			h.handleProgress(w, r, proposalID)
			return
		case parts[1] == "progress" && r.Method == http.MethodDelete:
			h.handleClearProgress(w, r, proposalID)
			return
		case parts[1] == "export.pdf" && r.Method == http.MethodGet:
			h.handleExportPDF(w, r, proposalID)
			return
		case parts[1] == "export.xlsx" && r.Method == http.MethodGet:
			h.handleExportXLSX(w, r, proposalID)
			return
		case parts[1] == "archive" && r.Method == http.MethodPost:
			h.handleArchive(w, r, proposalID)
			return
		case parts[1] == "restore" && r.Method == http.MethodPost:
			h.handleRestore(w, r, proposalID)
			return
		}
	}

	w.WriteHeader(http.StatusNotFound)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Customer customer.Customer `json:"customer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if req.Customer.Name == "" {
		http.Error(w, "customer name is required", http.StatusBadRequest)
		return
	}
	p, err := h.service.Create(r.Context(), req.Customer)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
	h.logAudit(r, p.ID, "proposal.create", map[string]any{"customer": req.Customer.Name})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if list == nil {
		list = []*proposal.Proposal{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request, proposalID string) {
	p, err := h.service.Get(r.Context(), proposalID)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request, proposalID string) {
	var req struct {
		ElectricityBill *extraction.ElectricityBillData `json:"electricityBill"`
		GasBill         *extraction.GasBillData         `json:"gasBill"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if req.ElectricityBill == nil {
		http.Error(w, "electricityBill is required", http.StatusBadRequest)
		return
	}
	p, err := h.service.Calculate(r.Context(), proposalID, *req.ElectricityBill, req.GasBill)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
	h.logAudit(r, proposalID, "proposal.calculate", map[string]any{"hasGasBill": req.GasBill != nil})
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request, proposalID string) {
	if err := h.service.Generate(r.Context(), proposalID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
	h.logAudit(r, proposalID, "proposal.generate", nil)
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request, proposalID string) {
	state, err := h.service.Progress(proposalID)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(state)
}

func (h *Handler) handleClearProgress(w http.ResponseWriter, r *http.Request, proposalID string) {
	if err := h.service.ClearProgress(proposalID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request, proposalID string) {
	p, err := h.exportable(r, proposalID)
	if err != nil {
		respondError(w, err)
		return
	}
	data, err := render.BuildProposalPDF(p.Customer.Name, p.Slides)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.service.MarkExported(r.Context(), proposalID, "pdf"); err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(p, "pdf")))
	_, _ = w.Write(data)
	h.logAudit(r, proposalID, "proposal.export", map[string]any{"format": "pdf"})
}

func (h *Handler) handleExportXLSX(w http.ResponseWriter, r *http.Request, proposalID string) {
	p, err := h.exportable(r, proposalID)
	if err != nil {
		respondError(w, err)
		return
	}
	data, err := render.BuildProposalXLSX(p.Customer.Name, p.Calculations, p.Slides)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.service.MarkExported(r.Context(), proposalID, "xlsx"); err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(p, "xlsx")))
	_, _ = w.Write(data)
	h.logAudit(r, proposalID, "proposal.export", map[string]any{"format": "xlsx"})
}

func (h *Handler) exportable(r *http.Request, proposalID string) (*proposal.Proposal, error) {
	p, err := h.service.Get(r.Context(), proposalID)
	if err != nil {
		return nil, err
	}
	if p.Calculations == nil || len(slides.IncludedOnly(p.Slides)) == 0 {
		return nil, proposal.ErrNotCalculated
	}
	return p, nil
}

func (h *Handler) handleArchive(w http.ResponseWriter, r *http.Request, proposalID string) {
	if err := h.service.Archive(r.Context(), proposalID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	h.logAudit(r, proposalID, "proposal.archive", nil)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request, proposalID string) {
	if err := h.service.Delete(r.Context(), proposalID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	h.logAudit(r, proposalID, "proposal.delete", nil)
}

func (h *Handler) handleRestore(w http.ResponseWriter, r *http.Request, proposalID string) {
	if err := h.service.Restore(r.Context(), proposalID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	h.logAudit(r, proposalID, "proposal.restore", nil)
}

func (h *Handler) logAudit(r *http.Request, proposalID, action string, meta map[string]any) {
	if h.auditLogger == nil {
		return
	}
	tenantID := auth.TenantIDFromContext(r.Context())
	if tenantID == "" {
		return
	}
	var payload json.RawMessage
	if meta != nil {
		payload, _ = json.Marshal(meta)
	}
	_ = h.auditLogger.Log(r.Context(), audit.Entry{
		TenantID:     tenantID,
		Actor:        auth.SubjectFromContext(r.Context()),
		Role:         string(auth.RoleFromContext(r.Context())),
		Action:       action,
		ResourceType: "proposal",
		ResourceID:   proposalID,
		Metadata:     payload,
		IP:           audit.ClientIP(r),
		UserAgent:    r.UserAgent(),
	})
}

func exportFilename(p *proposal.Proposal, ext string) string {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(p.Customer.Name), " ", "-"))
	if name == "" {
		name = p.ID
	}
	return "energy-plan-" + name + "." + ext
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, proposal.ErrNotFound), errors.Is(err, progress.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, proposal.ErrInvalidTransition),
		errors.Is(err, proposal.ErrDeleted),
		errors.Is(err, proposal.ErrNotDeleted),
		errors.Is(err, proposal.ErrNotCalculated),
		errors.Is(err, progress.ErrAlreadyTracking):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, proposal.ErrEmptyID),
		errors.Is(err, extraction.ErrAmountRequired),
		errors.Is(err, extraction.ErrUsageRequired),
		errors.Is(err, extraction.ErrRetailerRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
