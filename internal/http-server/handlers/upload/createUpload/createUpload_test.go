package createUpload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"churchEvents/internal/http-server/handlers/upload/createUpload/mocks"
	"churchEvents/internal/lib/logger/handlers/slogdiscard"
	"churchEvents/internal/models"
	"churchEvents/internal/services/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, filename string, content []byte, category string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if category != "" {
		require.NoError(t, mw.WriteField("category", category))
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestCreateUploadHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	content := []byte("\x89PNG\r\n\x1a\nrest-of-image")

	testCases := []struct {
		name           string
		filename       string
		mockSetup      func(m *mocks.UploadSaver)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Success",
			filename: "banner.png",
			mockSetup: func(m *mocks.UploadSaver) {
				m.On("MaxSize").Return(int64(1024))
				m.On("Save", mock.Anything, mock.Anything, "banner.png", "events").
					Return(func(_ context.Context, r io.Reader, name, category string) (*models.Upload, error) {
						data, err := io.ReadAll(r)
						if err != nil {
							return nil, err
						}
						if !bytes.Equal(data, content) {
							return nil, errors.New("content mismatch")
						}
						return &models.Upload{ID: "u1", OriginalName: name, Category: category, URL: "/uploads/files/u1.png"}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:     "Missing file",
			filename: "",
			mockSetup: func(m *mocks.UploadSaver) {
				m.On("MaxSize").Return(int64(1024))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"file é um campo obrigatório","fields":[{"field":"file","rule":"required","message":"file é um campo obrigatório"}]}`,
		},
		{
			name:     "Too large",
			filename: "banner.png",
			mockSetup: func(m *mocks.UploadSaver) {
				m.On("MaxSize").Return(int64(4))
				m.On("Save", mock.Anything, mock.Anything, "banner.png", "events").Return(nil, upload.ErrTooLarge)
			},
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedBody:   `{"status":"Error","error":"Arquivo excede o tamanho máximo permitido"}`,
		},
		{
			name:     "Unsupported type",
			filename: "script.sh",
			mockSetup: func(m *mocks.UploadSaver) {
				m.On("MaxSize").Return(int64(1024))
				m.On("Save", mock.Anything, mock.Anything, "script.sh", "events").Return(nil, upload.ErrUnsupportedType)
			},
			expectedStatus: http.StatusUnsupportedMediaType,
			expectedBody:   `{"status":"Error","error":"Tipo de arquivo não permitido"}`,
		},
		{
			name:     "Storage failure",
			filename: "banner.png",
			mockSetup: func(m *mocks.UploadSaver) {
				m.On("MaxSize").Return(int64(1024))
				m.On("Save", mock.Anything, mock.Anything, "banner.png", "events").Return(nil, errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"Erro ao enviar arquivo"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			saver := mocks.NewUploadSaver(t)
			tc.mockSetup(saver)

			body, contentType := multipartBody(t, tc.filename, content, "events")

			req := httptest.NewRequest(http.MethodPost, "/uploads", body)
			req.Header.Set("Content-Type", contentType)

			rr := httptest.NewRecorder()
			New(logger, saver).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
