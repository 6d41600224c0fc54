package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/recruitedge/outreach/internal/infra/http/middleware"
	"github.com/recruitedge/outreach/internal/usecase"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Success: false,
		Error:   code,
		Message: message,
	})
}

// writeUseCaseError maps use case error codes onto HTTP statuses.
func writeUseCaseError(w http.ResponseWriter, err error) {
	code := usecase.ErrorCode(err)

	status := http.StatusInternalServerError
	switch code {
	case usecase.CodeValidation:
		status = http.StatusBadRequest
	case usecase.CodeLeadNotFound:
		status = http.StatusNotFound
	case usecase.CodeGeneration:
		status = http.StatusBadGateway
		middleware.RecordIntegrationError("anthropic")
	case usecase.CodeMail:
		status = http.StatusBadGateway
		middleware.RecordIntegrationError("mail")
	case usecase.CodeStorage:
		middleware.RecordIntegrationError("storage")
	case "":
		code = "INTERNAL_ERROR"
	}

	writeErrorResponse(w, status, code, err.Error())
}
