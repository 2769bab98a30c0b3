package createEvent

import (
	"context"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"
	"churchEvents/internal/services/event"

	"github.com/go-chi/render"
)

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	Create(ctx context.Context, in event.Input) (*models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(slog.String("op", op))

		var req event.Input

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			apierr.BadRequest(w, r, log, err, "failed to decode request body")
			return
		}

		log.Info("request body decoded", slog.String("title", req.Title))

		e, err := creator.Create(r.Context(), req)
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao criar evento")
			return
		}

		log.Info("event added", slog.String("id", e.ID))

		responseOK(w, r, e)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, e *models.Event) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    e,
	})
}
