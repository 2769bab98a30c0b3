package getEventBySlug

import (
	"context"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"
	"churchEvents/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetBySlug(ctx context.Context, slug string) (*models.Event, error)
}

// New serves the public page of an event. Inactive events are hidden as
// if they did not exist.
func New(log *slog.Logger, getter EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventBySlug.New"

		slug := chi.URLParam(r, "slug")
		log := log.With(slog.String("op", op), slog.String("slug", slug))

		e, err := getter.GetBySlug(r.Context(), slug)
		if err == nil && !e.IsActive {
			err = storage.ErrEventNotFound
		}
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
