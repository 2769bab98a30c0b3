package deleteConfig

import (
	"context"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConfigDeleter
type ConfigDeleter interface {
	DeleteConfig(ctx context.Context, key string) error
}

func New(log *slog.Logger, deleter ConfigDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.config.deleteConfig.New"

		key := chi.URLParam(r, "key")
		log := log.With(slog.String("op", op), slog.String("key", key))

		if err := deleter.DeleteConfig(r.Context(), key); err != nil {
			apierr.Render(w, r, log, err, "Erro ao excluir configuração")
			return
		}

		log.Info("config deleted")

		render.JSON(w, r, response.OK())
	}
}
