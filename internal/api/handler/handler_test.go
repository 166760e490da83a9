package handler

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/vfg2006/payroll-consolidation-api/internal/api/handler/router"
	"github.com/vfg2006/payroll-consolidation-api/internal/domain"
	"github.com/vfg2006/payroll-consolidation-api/pkg/log"
	"github.com/vfg2006/payroll-consolidation-api/pkg/middleware"
)

const testTenant = "tenant-1"

// serve executa a requisição pelo router como se o AuthMiddleware já tivesse validado o token
func serve(t *testing.T, routes []router.Route, method, target string, roleID int) *httptest.ResponseRecorder {
	t.Helper()
	log.SetupTestLogger()

	claims := &domain.Claims{UserID: "u1", TenantID: testTenant, UserRoleID: roleID}
	ctx := context.WithValue(context.Background(), middleware.ContextKeyUser, claims)
	ctx = log.WithTenantID(ctx, testTenant)

	req := httptest.NewRequest(method, target, nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

// fakeCronJob registra disparos manuais
type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() {
	f.triggered++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true, "triggered": f.triggered}
}

var _ CronJob = (*fakeCronJob)(nil)
