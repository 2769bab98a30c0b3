package getEventBySlug

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"churchEvents/internal/http-server/handlers/event/getEventBySlug/mocks"
	"churchEvents/internal/lib/logger/handlers/slogdiscard"
	"churchEvents/internal/models"
	"churchEvents/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetEventBySlugHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		slug           string
		mockSetup      func(m *mocks.EventGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Active event",
			slug: "cantata-de-natal",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetBySlug", mock.Anything, "cantata-de-natal").
					Return(&models.Event{ID: "e1", Slug: "cantata-de-natal", IsActive: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Inactive event is hidden",
			slug: "rascunho",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetBySlug", mock.Anything, "rascunho").Return(&models.Event{ID: "e2", IsActive: false}, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"Evento não encontrado"}`,
		},
		{
			name: "Unknown slug",
			slug: "nada",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetBySlug", mock.Anything, "nada").Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"Evento não encontrado"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewEventGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/events/slug/{slug}", New(logger, getter))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/events/slug/"+tc.slug, nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
