package db

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newEchoContext(headers map[string]string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestExtractTenantIDFromClaims(t *testing.T) {
	c := newEchoContext(map[string]string{"X-Tenant-ID": "header_tenant"})
	c.Set("jwt_tenant_id", "claim_tenant")
	if got := extractTenantID(c, "default"); got != "claim_tenant" {
		t.Errorf("expected claim tenant to win, got %s", got)
	}
}

func TestExtractTenantIDFromHeader(t *testing.T) {
	c := newEchoContext(map[string]string{"X-Tenant-ID": "clinic_a"})
	if got := extractTenantID(c, "default"); got != "clinic_a" {
		t.Errorf("expected header tenant, got %s", got)
	}
}

func TestExtractTenantIDDefault(t *testing.T) {
	c := newEchoContext(nil)
	if got := extractTenantID(c, "default"); got != "default" {
		t.Errorf("expected default tenant, got %s", got)
	}
}

func TestTenantIDPattern(t *testing.T) {
	valid := []string{"default", "clinic_a", "Tenant9"}
	for _, id := range valid {
		if !tenantIDPattern.MatchString(id) {
			t.Errorf("expected %q to be valid", id)
		}
	}
	invalid := []string{"", "a-b", "x; DROP TABLE patient", "a b"}
	for _, id := range invalid {
		if tenantIDPattern.MatchString(id) {
			t.Errorf("expected %q to be rejected", id)
		}
	}
}

func TestTenantFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TenantIDKey, "clinic_a")
	if got := TenantFromContext(ctx); got != "clinic_a" {
		t.Errorf("expected clinic_a, got %s", got)
	}
	if got := TenantFromContext(context.Background()); got != "" {
		t.Errorf("expected empty tenant, got %s", got)
	}
}
