package exportRegistrations

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"churchEvents/internal/http-server/handlers/registration/exportRegistrations/mocks"
	"churchEvents/internal/lib/logger/handlers/slogdiscard"
	"churchEvents/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExportRegistrationsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	const eventID = "5a1f6c1e-7a43-4c7e-9a57-0f5f7d3d2b10"

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		exporter := mocks.NewRegistrationsExporter(t)
		exporter.On("Export", mock.Anything, models.RegistrationFilter{EventID: eventID}, mock.Anything).
			Return(func(_ context.Context, _ models.RegistrationFilter, w io.Writer) (int, error) {
				_, err := io.WriteString(w, "id,name\nr1,Maria\n")
				return 1, err
			})

		router := chi.NewRouter()
		router.Get("/registrations/export", New(logger, exporter))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/registrations/export?eventId="+eventID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment; filename=\"inscricoes-")
		assert.Equal(t, "id,name\nr1,Maria\n", rr.Body.String())
	})

	t.Run("Invalid filter", func(t *testing.T) {
		t.Parallel()

		exporter := mocks.NewRegistrationsExporter(t)

		router := chi.NewRouter()
		router.Get("/registrations/export", New(logger, exporter))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/registrations/export?from=ontem", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"field":"from"`)
	})

	t.Run("Failure halfway", func(t *testing.T) {
		t.Parallel()

		exporter := mocks.NewRegistrationsExporter(t)
		exporter.On("Export", mock.Anything, models.RegistrationFilter{}, mock.Anything).
			Return(func(_ context.Context, _ models.RegistrationFilter, w io.Writer) (int, error) {
				_, _ = io.WriteString(w, "id,name\n")
				return 0, errors.New("db down")
			})

		router := chi.NewRouter()
		router.Get("/registrations/export", New(logger, exporter))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/registrations/export", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"Erro ao exportar inscrições"}`, rr.Body.String())
	})
}
