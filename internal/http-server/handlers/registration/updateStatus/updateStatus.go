package updateStatus

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Request struct {
	Status string `json:"status"`
}

type Response struct {
	response.Response
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusUpdater
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Registration, error)
}

func New(log *slog.Logger, updater StatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.updateStatus.New"

		id := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("registration_id", id))

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			apierr.BadRequest(w, r, log, err, "failed to decode request body")
			return
		}

		status := models.Status(strings.ToUpper(strings.TrimSpace(req.Status)))

		reg, err := updater.UpdateStatus(r.Context(), id, status)
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao atualizar status da inscrição")
			return
		}

		log.Info("registration status updated", slog.String("status", string(reg.Status)))

		render.JSON(w, r, Response{
			Response:     response.OK(),
			Registration: reg,
		})
	}
}
