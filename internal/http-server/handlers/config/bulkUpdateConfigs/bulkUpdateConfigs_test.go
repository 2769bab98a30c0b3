package bulkUpdateConfigs

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"churchEvents/internal/http-server/handlers/config/bulkUpdateConfigs/mocks"
	"churchEvents/internal/lib/logger/handlers/slogdiscard"
	"churchEvents/internal/models"
	"churchEvents/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBulkUpdateConfigsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	values := map[string]string{"site_title": "Igreja", "show_banner": "false"}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.ConfigsUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"values":{"site_title":"Igreja","show_banner":"false"}}`,
			mockSetup: func(m *mocks.ConfigsUpdater) {
				m.On("Update", mock.Anything, values).Return([]models.SiteConfig{
					{Key: "show_banner", Value: "false"},
					{Key: "site_title", Value: "Igreja"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Unknown key rolls back",
			requestBody: `{"values":{"site_title":"Igreja","show_banner":"false"}}`,
			mockSetup: func(m *mocks.ConfigsUpdater) {
				m.On("Update", mock.Anything, values).Return(nil, storage.ErrConfigNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"Configuração não encontrada"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{"values":[1,2]}`,
			mockSetup:      func(m *mocks.ConfigsUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"Requisição inválida"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewConfigsUpdater(t)
			tc.mockSetup(updater)

			req, err := http.NewRequest(http.MethodPut, "/config/bulk", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, updater).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
