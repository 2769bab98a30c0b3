package getEvent

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

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	Get(ctx context.Context, id string) (*models.Event, error)
}

func New(log *slog.Logger, getter EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		id := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("event_id", id))

		e, err := getter.Get(r.Context(), id)
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao buscar evento")
			return
		}

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    e,
		})
	}
}
