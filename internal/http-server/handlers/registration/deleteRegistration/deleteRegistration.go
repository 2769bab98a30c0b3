package deleteRegistration

import (
	"context"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationDeleter
type RegistrationDeleter interface {
	Delete(ctx context.Context, id string) error
}

func New(log *slog.Logger, deleter RegistrationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.deleteRegistration.New"

		id := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("registration_id", id))

		if err := deleter.Delete(r.Context(), id); err != nil {
			apierr.Render(w, r, log, err, "Erro ao excluir inscrição")
			return
		}

		log.Info("registration deleted")

		render.JSON(w, r, response.OK())
	}
}
