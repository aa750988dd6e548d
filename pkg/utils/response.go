package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/bankapi/internal/domain"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal server error"

type Response struct {
	Status    int       `json:"status" example:"404"`
	Message   string    `json:"message" example:"Account not found"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

type ValidationResponse struct {
	Status    int               `json:"status" example:"400"`
	Message   string            `json:"message" example:"Validation failed"`
	Errors    map[string]string `json:"errors"`
	Timestamp time.Time         `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("can't marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		zap.L().Error("can't write response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, Response{
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
	})
}

func RespondWithValidationError(w http.ResponseWriter, errs map[string]string) {
	RespondWithJSON(w, http.StatusBadRequest, ValidationResponse{
		Status:    http.StatusBadRequest,
		Message:   "Validation failed",
		Errors:    errs,
		Timestamp: time.Now(),
	})
}

// RespondWithServiceError maps a domain error to its status. Unclassified errors are
// logged in full and answered with a generic message.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		zap.L().Info("resource not found", zap.String("message", err.Error()))
		RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidArgument):
		zap.L().Info("invalid argument", zap.String("message", err.Error()))
		RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		zap.L().Error("unhandled error", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, internalErrorMessage)
	}
}
