package login

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"churchEvents/internal/http-server/handlers/auth/login/mocks"
	"churchEvents/internal/lib/logger/handlers/slogdiscard"
	"churchEvents/internal/services/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	expiresAt := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.Authenticator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"email":"admin@igreja.org","password":"segredo"}`,
			mockSetup: func(m *mocks.Authenticator) {
				m.On("Login", "admin@igreja.org", "segredo").Return("signed.jwt.token", expiresAt, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","token":"signed.jwt.token","expiresAt":"2025-03-01T20:00:00Z"}`,
		},
		{
			name:        "Wrong password",
			requestBody: `{"email":"admin@igreja.org","password":"errada"}`,
			mockSetup: func(m *mocks.Authenticator) {
				m.On("Login", "admin@igreja.org", "errada").
					Return("", time.Time{}, fmt.Errorf("services.auth.Login: %w", auth.ErrInvalidCredentials))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"Email ou senha inválidos"}`,
		},
		{
			name:           "Missing password",
			requestBody:    `{"email":"admin@igreja.org"}`,
			mockSetup:      func(m *mocks.Authenticator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Signing failure",
			requestBody: `{"email":"admin@igreja.org","password":"segredo"}`,
			mockSetup: func(m *mocks.Authenticator) {
				m.On("Login", "admin@igreja.org", "segredo").Return("", time.Time{}, errors.New("key is invalid"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"Erro ao realizar login"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			authenticator := mocks.NewAuthenticator(t)
			tc.mockSetup(authenticator)

			req, err := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, authenticator).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestLoginWithRealService(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := auth.New("test-secret", time.Hour, "admin@igreja.org", string(hash))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"ADMIN@igreja.org","password":"segredo"}`))
	rr := httptest.NewRecorder()
	New(slogdiscard.NewDiscardLogger(), svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
	assert.Equal(t, "admin@igreja.org", claims.Subject)
}
