package getUploads

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Uploads []models.Upload `json:"uploads"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UploadsGetter
type UploadsGetter interface {
	GetUploads(ctx context.Context, category string) ([]models.Upload, error)
}

func New(log *slog.Logger, getter UploadsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.upload.getUploads.New"

		log := log.With(slog.String("op", op))

		uploads, err := getter.GetUploads(r.Context(), strings.TrimSpace(r.URL.Query().Get("category")))
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao buscar arquivos")
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Uploads:  uploads,
		})
	}
}
