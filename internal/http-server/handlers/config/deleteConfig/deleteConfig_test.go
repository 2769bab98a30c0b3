package deleteConfig

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"churchEvents/internal/http-server/handlers/config/deleteConfig/mocks"
	"churchEvents/internal/lib/logger/handlers/slogdiscard"
	"churchEvents/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteConfigHandler(t *testing.T) {
	t.Parallel()

	deleter := mocks.NewConfigDeleter(t)
	deleter.On("DeleteConfig", mock.Anything, "site_title").Return(nil)
	deleter.On("DeleteConfig", mock.Anything, "missing").Return(storage.ErrConfigNotFound)

	router := chi.NewRouter()
	router.Delete("/config/{key}", New(slogdiscard.NewDiscardLogger(), deleter))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/config/site_title", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/config/missing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
