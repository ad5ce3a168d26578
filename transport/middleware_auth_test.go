package transport_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/celebratehq/birthday-api/cmd/config"
	accountappmocks "github.com/celebratehq/birthday-api/mocks/application/account"
	celebrationappmocks "github.com/celebratehq/birthday-api/mocks/application/celebration"
	"github.com/celebratehq/birthday-api/model"
	"github.com/celebratehq/birthday-api/transport"
	"github.com/stretchr/testify/mock"
)

func newRouter(t *testing.T) (http.Handler, *accountappmocks.AccountApp, *celebrationappmocks.CelebrationApp) {
	accountApp := accountappmocks.NewAccountApp(t)
	celebrationApp := celebrationappmocks.NewCelebrationApp(t)
	cfg := &config.Config{InternalAPIKey: "internal-key"}
	return transport.NewTransport(cfg, accountApp, celebrationApp), accountApp, celebrationApp
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("protected route without token is refused", func(t *testing.T) {
		router, _, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/app-user", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("protected route with invalid token is refused", func(t *testing.T) {
		router, accountApp, _ := newRouter(t)
		accountApp.
			On("ValidateToken", mock.Anything, "bad-token").
			Return("", "", errors.New("invalid token")).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/app-user", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("valid token resolves the session account", func(t *testing.T) {
		router, accountApp, _ := newRouter(t)
		accountApp.
			On("ValidateToken", mock.Anything, "good-token").
			Return("acc-1", "jti-1", nil).
			Once()
		accountApp.
			On("GetProfile", mock.Anything, "acc-1").
			Return(&model.AccountResponse{ID: "acc-1", Email: "a@x.com"}, nil).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/app-user", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("register stays public", func(t *testing.T) {
		router, accountApp, _ := newRouter(t)
		accountApp.
			On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
			Return(&model.AccountResponse{ID: "acc-1"}, nil).
			Once()

		body := `{"first_name":"A","last_name":"B","email":"a@x.com","password":"abcdef"}`
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}

func TestInternalMiddleware(t *testing.T) {
	t.Run("internal route without service key is forbidden", func(t *testing.T) {
		router, _, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/internal/v1/celebration/cel-1/ack", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
		}
	})

	t.Run("internal route with service key stamps the celebration", func(t *testing.T) {
		router, _, celebrationApp := newRouter(t)
		celebrationApp.On("AckCelebration", mock.Anything, "cel-1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/internal/v1/celebration/cel-1/ack", nil)
		req.Header.Set("Authorization", "Bearer internal-key")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}
