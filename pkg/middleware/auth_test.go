package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/payroll-consolidation-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func tenantEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(log.GetTenantID(r.Context())))
	})
}

func TestAuthMiddleware(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name           string
		path           string
		header         string
		setup          func(m *mocks.MockAuthenticator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "healthcheck é público",
			path:           "/healthcheck",
			setup:          func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "sem cabeçalho",
			path:           "/v1/ir/calculo",
			setup:          func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "sem prefixo Bearer",
			path:           "/v1/ir/calculo",
			header:         "token",
			setup:          func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "token rejeitado",
			path:   "/v1/ir/calculo",
			header: "Bearer ruim",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("ruim").Return(nil, errors.New("assinatura inválida"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "tenant do token vai para o contexto",
			path:   "/v1/ir/calculo",
			header: "Bearer bom",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("bom").Return(&domain.Claims{UserID: "u1", TenantID: "tenant-9", UserRoleID: RoleViewer}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "tenant-9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authenticator := mocks.NewMockAuthenticator(ctrl)
			tt.setup(authenticator)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authenticator)(tenantEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	log.SetupTestLogger()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name           string
		claims         *domain.Claims
		expectedStatus int
	}{
		{name: "sem claims", claims: nil, expectedStatus: http.StatusUnauthorized},
		{name: "perfil sem permissão", claims: &domain.Claims{UserRoleID: RoleViewer}, expectedStatus: http.StatusForbidden},
		{name: "administrador", claims: &domain.Claims{UserRoleID: RoleAdmin}, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOnly()(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
