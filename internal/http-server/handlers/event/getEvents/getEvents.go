package getEvents

import (
	"context"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/query"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

func New(log *slog.Logger, getter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvents.New"

		log := log.With(slog.String("op", op))

		filter, err := query.EventFilter(r.URL.Query())
		if err != nil {
			apierr.Render(w, r, log, err, "")
			return
		}

		events, err := getter.List(r.Context(), filter)
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao buscar eventos")
			return
		}

		log.Info("events successfully received", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	if events == nil {
		events = []models.Event{}
	}

	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
