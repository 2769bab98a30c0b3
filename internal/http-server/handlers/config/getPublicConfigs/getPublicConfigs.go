package getPublicConfigs

import (
	"context"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"

	"github.com/go-chi/render"
)

// Response carries the public settings both as records and as a flat
// key to value map for the site front end.
type Response struct {
	response.Response
	Configs []models.SiteConfig `json:"configs"`
	Values  map[string]string   `json:"values"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PublicConfigsGetter
type PublicConfigsGetter interface {
	GetPublicConfigs(ctx context.Context) ([]models.SiteConfig, error)
}

func New(log *slog.Logger, getter PublicConfigsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.config.getPublicConfigs.New"

		log := log.With(slog.String("op", op))

		configs, err := getter.GetPublicConfigs(r.Context())
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao buscar configurações")
			return
		}

		values := make(map[string]string, len(configs))
		for _, c := range configs {
			values[c.Key] = c.Value
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Configs:  configs,
			Values:   values,
		})
	}
}
