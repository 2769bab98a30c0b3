// Package apierr renders service errors as response envelopes with the
// HTTP status their kind maps to.
package apierr

import (
	"errors"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/lib/logger/sl"
	"churchEvents/internal/lib/validate"
	"churchEvents/internal/storage"
	"churchEvents/internal/workflow"

	"github.com/go-chi/render"
)

const MsgBadRequest = "Requisição inválida"

type mapping struct {
	target error
	status int
	msg    string
}

var mappings = []mapping{
	{storage.ErrEventNotFound, http.StatusNotFound, "Evento não encontrado"},
	{storage.ErrRegistrationNotFound, http.StatusNotFound, "Inscrição não encontrada"},
	{storage.ErrConfigNotFound, http.StatusNotFound, "Configuração não encontrada"},
	{storage.ErrUploadNotFound, http.StatusNotFound, "Arquivo não encontrado"},
	{storage.ErrEventExists, http.StatusConflict, "Já existe um evento com este slug"},
	{storage.ErrConfigExists, http.StatusConflict, "Já existe uma configuração com esta chave"},
	{storage.ErrCapacityExceeded, http.StatusConflict, "Capacidade do evento esgotada"},
	{workflow.ErrTransitionNotAllowed, http.StatusConflict, "Mudança de status não permitida"},
	{storage.ErrEventInactive, http.StatusBadRequest, "Evento não está aceitando inscrições"},
}

// Status returns the HTTP status and client message for err. Unknown
// errors map to 500 with fallback.
func Status(err error, fallback string) (int, response.Response) {
	var vErr *validate.Error
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, response.ValidationError(vErr.Fields)
	}

	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return m.status, response.Error(m.msg)
		}
	}

	return http.StatusInternalServerError, response.Error(fallback)
}

// Render logs err and writes its envelope. Client errors are logged at
// info level, everything else as an error.
func Render(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, fallback string) {
	status, resp := Status(err, fallback)

	if status >= http.StatusInternalServerError {
		log.Error(fallback, sl.Err(err))
	} else {
		log.Info("request rejected", slog.Int("status", status), sl.Err(err))
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}

// BadRequest writes a 400 with the generic malformed request message.
func BadRequest(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	log.Error(msg, sl.Err(err))
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, response.Error(MsgBadRequest))
}
