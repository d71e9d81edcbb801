package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/charity/internal/domain"
	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message" example:"Internal server error"`
	Code    string `json:"code,omitempty" example:"internal"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, Response{Message: message, Code: codeForStatus(status)})
}

// RespondWithDomainError maps err onto the error taxonomy. Internal errors
// are logged and never leak their text to the client.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	code := domain.Code(err)
	status := StatusForCode(code)
	message := err.Error()
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		message = "Internal server error"
	}
	RespondWithJSON(w, status, Response{Message: message, Code: code})
}

func StatusForCode(code string) int {
	switch code {
	case domain.CodeUnauthenticated:
		return http.StatusUnauthorized
	case domain.CodePermissionDenied:
		return http.StatusForbidden
	case domain.CodeInvalidArgument:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return domain.CodeUnauthenticated
	case http.StatusForbidden:
		return domain.CodePermissionDenied
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.CodeInvalidArgument
	case http.StatusNotFound:
		return domain.CodeNotFound
	case http.StatusInternalServerError:
		return domain.CodeInternal
	default:
		return ""
	}
}

// DecodeJSON reads a JSON request body into dst. A malformed body is reported
// as an invalid argument.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Join(domain.ErrInvalidArgument, err)
	}
	return nil
}
