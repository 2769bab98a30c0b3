package updateConfig

import (
	"context"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"
	"churchEvents/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Request struct {
	Value *string `json:"value"`
}

type Response struct {
	response.Response
	Config models.SiteConfig `json:"config"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConfigUpdater
type ConfigUpdater interface {
	Update(ctx context.Context, values map[string]string) ([]models.SiteConfig, error)
}

// New sets the value of an existing setting. The value must parse as the
// type recorded for the key.
func New(log *slog.Logger, updater ConfigUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.config.updateConfig.New"

		key := chi.URLParam(r, "key")
		log := log.With(slog.String("op", op), slog.String("key", key))

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			apierr.BadRequest(w, r, log, err, "failed to decode request body")
			return
		}

		if req.Value == nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError([]response.FieldError{{
				Field:   "value",
				Rule:    "required",
				Message: "value é um campo obrigatório",
			}}))
			return
		}

		updated, err := updater.Update(r.Context(), map[string]string{key: *req.Value})
		if err == nil && len(updated) == 0 {
			err = storage.ErrConfigNotFound
		}
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao atualizar configuração")
			return
		}

		log.Info("config updated")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Config:   updated[0],
		})
	}
}
