package getConfigsByCategory

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
	Category string              `json:"category"`
	Configs  []models.SiteConfig `json:"configs"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoryConfigsGetter
type CategoryConfigsGetter interface {
	GetConfigsByCategory(ctx context.Context, category string) ([]models.SiteConfig, error)
}

// New lists the public settings of one category.
func New(log *slog.Logger, getter CategoryConfigsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.config.getConfigsByCategory.New"

		category := chi.URLParam(r, "category")
		log := log.With(slog.String("op", op), slog.String("category", category))

		configs, err := getter.GetConfigsByCategory(r.Context(), category)
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao buscar configurações")
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Category: category,
			Configs:  configs,
		})
	}
}
