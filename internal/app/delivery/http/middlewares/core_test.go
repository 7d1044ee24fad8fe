package middlewares

import (
	"mediportal-service/internal/app/config"
	"mediportal-service/internal/pkg/constvars"
	"mediportal-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("Generates Missing Request ID", func(t *testing.T) {
		var seen string
		handler := newTestMiddlewares().RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/doctors", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Echoes Caller Request ID", func(t *testing.T) {
		var seen string
		handler := newTestMiddlewares().RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		request := httptest.NewRequest(http.MethodGet, "/doctors", nil)
		request.Header.Set(constvars.HeaderXRequestID, "caller-supplied-id")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "caller-supplied-id", seen)
		assert.Equal(t, "caller-supplied-id", recorder.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestLogging(t *testing.T) {
	handler := newTestMiddlewares().Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/appointment", nil))

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestErrorHandler(t *testing.T) {
	t.Run("Recovers Panic Into Error Envelope", func(t *testing.T) {
		handler := newTestMiddlewares().ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/articles", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var body responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body.Message)
	})

	t.Run("Passes Through Healthy Handlers", func(t *testing.T) {
		handler := newTestMiddlewares().ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/articles", nil))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}
