package createUpload

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/lib/logger/sl"
	"churchEvents/internal/models"
	"churchEvents/internal/services/upload"

	"github.com/go-chi/render"
)

// multipartOverhead leaves room for boundaries and the category field on
// top of the file itself.
const multipartOverhead = 1 << 20

type Response struct {
	response.Response
	Upload *models.Upload `json:"upload"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UploadSaver
type UploadSaver interface {
	Save(ctx context.Context, r io.Reader, originalName, category string) (*models.Upload, error)
	MaxSize() int64
}

// New accepts a multipart form with a "file" part and an optional
// "category" field.
func New(log *slog.Logger, saver UploadSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.upload.createUpload.New"

		log := log.With(slog.String("op", op))

		r.Body = http.MaxBytesReader(w, r.Body, saver.MaxSize()+multipartOverhead)

		file, header, err := r.FormFile("file")
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				log.Info("upload rejected", sl.Err(err))
				render.Status(r, http.StatusRequestEntityTooLarge)
				render.JSON(w, r, response.Error("Arquivo excede o tamanho máximo permitido"))
				return
			}

			log.Info("missing file part", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError([]response.FieldError{{
				Field:   "file",
				Rule:    "required",
				Message: "file é um campo obrigatório",
			}}))
			return
		}
		defer file.Close()

		u, err := saver.Save(r.Context(), file, header.Filename, r.FormValue("category"))
		if err != nil {
			switch {
			case errors.Is(err, upload.ErrTooLarge):
				log.Info("upload rejected", sl.Err(err))
				render.Status(r, http.StatusRequestEntityTooLarge)
				render.JSON(w, r, response.Error("Arquivo excede o tamanho máximo permitido"))
			case errors.Is(err, upload.ErrUnsupportedType):
				log.Info("upload rejected", sl.Err(err))
				render.Status(r, http.StatusUnsupportedMediaType)
				render.JSON(w, r, response.Error("Tipo de arquivo não permitido"))
			case errors.Is(err, upload.ErrEmpty):
				log.Info("upload rejected", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Arquivo vazio"))
			default:
				apierr.Render(w, r, log, err, "Erro ao enviar arquivo")
			}
			return
		}

		log.Info("file uploaded", slog.String("upload_id", u.ID), slog.String("mimetype", u.Mimetype))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Upload:   u,
		})
	}
}
