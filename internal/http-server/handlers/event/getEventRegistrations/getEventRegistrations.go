package getEventRegistrations

import (
	"context"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventInfoResponse struct {
	response.Response
	Event         *models.Event         `json:"event"`
	Registrations []models.Registration `json:"registrations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventRegistrationsGetter
type EventRegistrationsGetter interface {
	Registrations(ctx context.Context, id string) (*models.Event, []models.Registration, error)
}

func New(log *slog.Logger, info EventRegistrationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventRegistrations.New"

		id := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("event_id", id))

		e, regs, err := info.Registrations(r.Context(), id)
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao buscar inscrições do evento")
			return
		}

		log.Info("event info successfully received", slog.Int("registrations", len(regs)))

		responseOK(w, r, e, regs)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, e *models.Event, regs []models.Registration) {
	if regs == nil {
		regs = []models.Registration{}
	}

	render.JSON(w, r, EventInfoResponse{
		Response:      response.OK(),
		Event:         e,
		Registrations: regs,
	})
}
