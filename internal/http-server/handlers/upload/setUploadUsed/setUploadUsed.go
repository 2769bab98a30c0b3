package setUploadUsed

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

type Request struct {
	IsUsed *bool `json:"isUsed"`
}

type Response struct {
	response.Response
	Upload *models.Upload `json:"upload"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UploadMarker
type UploadMarker interface {
	SetUsed(ctx context.Context, id string, used bool) (*models.Upload, error)
}

// New flags whether an upload is referenced by an event or setting. An
// empty body marks it used.
func New(log *slog.Logger, marker UploadMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.upload.setUploadUsed.New"

		id := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("upload_id", id))

		used := true
		if r.ContentLength != 0 {
			var req Request
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				apierr.BadRequest(w, r, log, err, "failed to decode request body")
				return
			}
			if req.IsUsed != nil {
				used = *req.IsUsed
			}
		}

		u, err := marker.SetUsed(r.Context(), id, used)
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao atualizar arquivo")
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Upload:   u,
		})
	}
}
