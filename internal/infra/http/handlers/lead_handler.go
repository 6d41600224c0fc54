package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/recruitedge/outreach/internal/infra/http/middleware"
	"github.com/recruitedge/outreach/internal/usecase"
)

type LeadHandler struct {
	ListLeadsUC  *usecase.ListLeadsUseCase
	UpdateLeadUC *usecase.UpdateLeadUseCase
}

func NewLeadHandler(listUC *usecase.ListLeadsUseCase, updateUC *usecase.UpdateLeadUseCase) *LeadHandler {
	return &LeadHandler{
		ListLeadsUC:  listUC,
		UpdateLeadUC: updateUC,
	}
}

type UpdateLeadRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// ListLeads (GET /leads)
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.ListLeadsUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

// UpdateLead (PUT /leads/{id})
func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_ID", "Lead id must be an integer")
		return
	}

	var req UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	lead, err := h.UpdateLeadUC.Execute(r.Context(), usecase.UpdateLeadInput{
		ID:     id,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		if usecase.ErrorCode(err) == usecase.CodeLeadNotFound {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Lead not found"})
			return
		}
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadUpdated(lead.Status)
	writeJSON(w, http.StatusOK, lead)
}
