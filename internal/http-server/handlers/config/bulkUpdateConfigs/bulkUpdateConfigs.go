package bulkUpdateConfigs

import (
	"context"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"

	"github.com/go-chi/render"
)

type Request struct {
	Values map[string]string `json:"values"`
}

type Response struct {
	response.Response
	Configs []models.SiteConfig `json:"configs"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConfigsUpdater
type ConfigsUpdater interface {
	Update(ctx context.Context, values map[string]string) ([]models.SiteConfig, error)
}

// New applies a batch of values. Either every key is written or none is.
func New(log *slog.Logger, updater ConfigsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.config.bulkUpdateConfigs.New"

		log := log.With(slog.String("op", op))

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			apierr.BadRequest(w, r, log, err, "failed to decode request body")
			return
		}

		updated, err := updater.Update(r.Context(), req.Values)
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao atualizar configurações")
			return
		}

		log.Info("configs updated", slog.Int("count", len(updated)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Configs:  updated,
		})
	}
}
