package exportRegistrations

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"churchEvents/internal/lib/api/apierr"
	"churchEvents/internal/lib/api/query"
	"churchEvents/internal/lib/logger/sl"
	"churchEvents/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationsExporter
type RegistrationsExporter interface {
	Export(ctx context.Context, filter models.RegistrationFilter, w io.Writer) (int, error)
}

// New serves the filtered registrations as a CSV attachment. The export is
// buffered so a failure halfway still produces a JSON error response.
func New(log *slog.Logger, exporter RegistrationsExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.exportRegistrations.New"

		log := log.With(slog.String("op", op))

		filter, err := query.RegistrationFilter(r.URL.Query())
		if err != nil {
			apierr.Render(w, r, log, err, "")
			return
		}

		var buf bytes.Buffer

		n, err := exporter.Export(r.Context(), filter, &buf)
		if err != nil {
			apierr.Render(w, r, log, err, "Erro ao exportar inscrições")
			return
		}

		filename := fmt.Sprintf("inscricoes-%s.csv", time.Now().UTC().Format("20060102-150405"))

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)

		if _, err = buf.WriteTo(w); err != nil {
			log.Error("failed to write export", sl.Err(err))
			return
		}

		log.Info("registrations exported", slog.Int("rows", n))
	}
}
