package updateStatus

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"churchEvents/internal/http-server/handlers/registration/updateStatus/mocks"
	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/lib/logger/handlers/slogdiscard"
	"churchEvents/internal/lib/validate"
	"churchEvents/internal/models"
	"churchEvents/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const regID = "9b2e3c44-1d2a-4f0e-8c9b-3a7e5d6f1c20"

func TestUpdateStatusHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.StatusUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Confirm",
			requestBody: `{"status":"confirmed"}`,
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateStatus", mock.Anything, regID, models.StatusConfirmed).
					Return(&models.Registration{ID: regID, Status: models.StatusConfirmed}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{"status":`,
			mockSetup:      func(m *mocks.StatusUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"Requisição inválida"}`,
		},
		{
			name:        "Unknown status",
			requestBody: `{"status":"DONE"}`,
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateStatus", mock.Anything, regID, models.Status("DONE")).Return(nil, &validate.Error{
					Fields: []response.FieldError{{Field: "status", Rule: "reg_status", Message: "status inválido"}},
				})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"status inválido","fields":[{"field":"status","rule":"reg_status","message":"status inválido"}]}`,
		},
		{
			name:        "Event full",
			requestBody: `{"status":"CONFIRMED"}`,
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateStatus", mock.Anything, regID, models.StatusConfirmed).Return(nil, storage.ErrCapacityExceeded)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"Capacidade do evento esgotada"}`,
		},
		{
			name:        "Not found",
			requestBody: `{"status":"CANCELLED"}`,
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateStatus", mock.Anything, regID, models.StatusCancelled).Return(nil, storage.ErrRegistrationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"Inscrição não encontrada"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"status":"CANCELLED"}`,
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateStatus", mock.Anything, regID, models.StatusCancelled).Return(nil, errors.New("tx aborted"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"Erro ao atualizar status da inscrição"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewStatusUpdater(t)
			tc.mockSetup(updater)

			router := chi.NewRouter()
			router.Put("/registrations/{id}/status", New(logger, updater))

			req, err := http.NewRequest(http.MethodPut, "/registrations/"+regID+"/status", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
				return
			}

			var resp Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, models.StatusConfirmed, resp.Registration.Status)
		})
	}
}
