package getRegistration

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

type Response struct {
	response.Response
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationGetter
type RegistrationGetter interface {
	Get(ctx context.Context, id string) (*models.Registration, error)
}

func New(log *slog.Logger, getter RegistrationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.getRegistration.New"

		id := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("registration_id", id))

		reg, err := getter.Get(r.Context(), id)
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao buscar inscrição")
			return
		}

		render.JSON(w, r, Response{
			Response:     response.OK(),
			Registration: reg,
		})
	}
}
