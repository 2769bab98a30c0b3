package getRegistrations

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

type Response struct {
	response.Response
	Registrations []models.Registration `json:"registrations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationsGetter
type RegistrationsGetter interface {
	List(ctx context.Context, filter models.RegistrationFilter) ([]models.Registration, error)
}

func New(log *slog.Logger, getter RegistrationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.getRegistrations.New"

		log := log.With(slog.String("op", op))

		filter, err := query.RegistrationFilter(r.URL.Query())
		if err != nil {
			apierr.Render(w, r, log, err, "")
			return
		}

		regs, err := getter.List(r.Context(), filter)
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao buscar inscrições")
			return
		}

		log.Info("registrations listed", slog.Int("count", len(regs)))

		render.JSON(w, r, Response{
			Response:      response.OK(),
			Registrations: regs,
		})
	}
}
