package createConfig

import (
	"context"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"
	"churchEvents/internal/services/siteconfig"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Config *models.SiteConfig `json:"config"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConfigCreator
type ConfigCreator interface {
	Create(ctx context.Context, in siteconfig.CreateInput) (*models.SiteConfig, error)
}

func New(log *slog.Logger, creator ConfigCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.config.createConfig.New"

		log := log.With(slog.String("op", op))

		var req siteconfig.CreateInput

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			apierr.BadRequest(w, r, log, err, "failed to decode request body")
			return
		}

		c, err := creator.Create(r.Context(), req)
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao criar configuração")
			return
		}

		log.Info("config created", slog.String("key", c.Key))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Config:   c,
		})
	}
}
