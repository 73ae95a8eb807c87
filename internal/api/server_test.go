package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/install-growth-api/internal/config"
	growingmocks "github.com/vfg2006/install-growth-api/internal/usecases/growing/mocks"
	"github.com/vfg2006/install-growth-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	grower := growingmocks.NewMockGrower(ctrl)
	grower.EXPECT().Families().Return([]string{"seo"})

	cfg := &config.Config{
		Server: config.Server{AllowedOrigins: []string{"*"}},
	}
	handler := NewHandler(cfg, Dependencies{Grower: grower})

	t.Run("Rotas de crescimento passam pela cadeia de middlewares", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/growth", nil)
		req.Header.Set("Origin", "http://dashboard.local")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://dashboard.local", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("Métricas do Prometheus", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "install_growth_http_requests_total")
	})

	t.Run("Rota inexistente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nothing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
