package getUploads

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"churchEvents/internal/http-server/handlers/upload/getUploads/mocks"
	"churchEvents/internal/lib/logger/handlers/slogdiscard"
	"churchEvents/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetUploadsHandler(t *testing.T) {
	t.Parallel()

	getter := mocks.NewUploadsGetter(t)
	getter.On("GetUploads", mock.Anything, "events").Return([]models.Upload{
		{ID: "u1", Filename: "u1.png", Path: "/var/uploads/u1.png", URL: "/uploads/files/u1.png", Category: "events"},
	}, nil)

	rr := httptest.NewRecorder()
	New(slogdiscard.NewDiscardLogger(), getter).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads?category=events", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"url":"/uploads/files/u1.png"`)
	assert.NotContains(t, rr.Body.String(), "/var/uploads")
}
