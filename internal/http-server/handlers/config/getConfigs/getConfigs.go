package getConfigs

import (
	"context"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Configs []models.SiteConfig `json:"configs"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConfigsGetter
type ConfigsGetter interface {
	GetConfigs(ctx context.Context) ([]models.SiteConfig, error)
}

// New lists every setting, private ones included.
func New(log *slog.Logger, getter ConfigsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.config.getConfigs.New"

		log := log.With(slog.String("op", op))

		configs, err := getter.GetConfigs(r.Context())
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao buscar configurações")
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Configs:  configs,
		})
	}
}
