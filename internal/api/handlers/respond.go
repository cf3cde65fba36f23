package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/integrations/backend"
)

const (
	msgInternalError      = "Erro interno. Tente novamente."
	msgBackendUnavailable = "Serviço de agendamentos indisponível. Tente novamente."
	maxBodyBytes          = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// DecodeJSON читает JSON тело запроса. Неизвестные поля запрещены.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет {error: message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondValidation пишет 400 {error, field}, чтобы UI показал ошибку рядом с полем
func RespondValidation(w http.ResponseWriter, verr *domain.ValidationError) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
}

// RespondBackendError maps a gateway failure. Client errors keep their class and the
// server's message; transport failures and 5xx become 502.
func RespondBackendError(w http.ResponseWriter, err error, fallback string) {
	message := backend.ServerMessage(err)
	if message == "" {
		message = fallback
	}

	switch {
	case backend.IsTransport(err):
		RespondError(w, http.StatusBadGateway, msgBackendUnavailable)
	case errors.Is(err, backend.ErrBadRequest):
		RespondBadRequest(w, message)
	case errors.Is(err, backend.ErrUnauthorized):
		RespondUnauthorized(w, message)
	case errors.Is(err, backend.ErrForbidden):
		RespondForbidden(w, message)
	case errors.Is(err, backend.ErrNotFound):
		RespondNotFound(w, message)
	default:
		RespondInternalError(w)
	}
}

// IsBackendError reports whether err carries a gateway failure
func IsBackendError(err error) bool {
	var re *backend.ResponseError
	return errors.As(err, &re) || backend.IsTransport(err)
}
