package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/recruitedge/outreach/internal/infra/http/middleware"
	"github.com/recruitedge/outreach/internal/usecase"
)

type OutreachHandler struct {
	GenerateEmailUC *usecase.GenerateEmailUseCase
	SendEmailUC     *usecase.SendEmailUseCase
	OutreachUC      *usecase.OutreachUseCase
}

func NewOutreachHandler(
	generateUC *usecase.GenerateEmailUseCase,
	sendUC *usecase.SendEmailUseCase,
	outreachUC *usecase.OutreachUseCase,
) *OutreachHandler {
	return &OutreachHandler{
		GenerateEmailUC: generateUC,
		SendEmailUC:     sendUC,
		OutreachUC:      outreachUC,
	}
}

// GenerateEmail (POST /generate-email)
func (h *OutreachHandler) GenerateEmail(w http.ResponseWriter, r *http.Request) {
	var input usecase.GenerateEmailInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}
	if input.Athlete == nil || input.Coach == nil {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FIELDS", "Missing athlete or coach info")
		return
	}

	output, err := h.GenerateEmailUC.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordEmailGenerated("error")
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordEmailGenerated("ok")
	writeJSON(w, http.StatusOK, output)
}

// SendEmail (POST /send-email) sends a reviewed draft and records the lead.
func (h *OutreachHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendEmailInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	output, err := h.SendEmailUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.ErrorCode(err) == usecase.CodeMail {
			middleware.RecordEmailSent("failed")
		}
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordEmailSent("sent")
	writeJSON(w, http.StatusOK, output)
}

// Outreach (POST /outreach) generates and, when asked, sends in one call.
func (h *OutreachHandler) Outreach(w http.ResponseWriter, r *http.Request) {
	var input usecase.OutreachInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}
	if input.Athlete == nil || input.Coach == nil {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FIELDS", "Missing athlete or coach info")
		return
	}

	output, err := h.OutreachUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.ErrorCode(err) == usecase.CodeGeneration {
			middleware.RecordEmailGenerated("error")
		}
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordEmailGenerated("ok")
	status := http.StatusOK
	if output.SendAttempted {
		if output.Success {
			middleware.RecordEmailSent("sent")
		} else {
			middleware.RecordEmailSent("failed")
			status = http.StatusBadGateway
		}
	}

	writeJSON(w, status, output)
}
