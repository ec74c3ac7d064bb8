package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func invoke(mw echo.MiddlewareFunc, header string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(func(c echo.Context) error { return nil })(c)
	return c, err
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "nurse-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		TenantID: "clinic_a",
		Roles:    []string{"nurse"},
	}
	mw := JWTMiddleware(JWTConfig{Secret: testSecret})
	c, err := invoke(mw, "Bearer "+signToken(t, claims))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := UserIDFromContext(c.Request().Context()); got != "nurse-1" {
		t.Errorf("expected operator nurse-1, got %s", got)
	}
	if tid, _ := c.Get("jwt_tenant_id").(string); tid != "clinic_a" {
		t.Errorf("expected tenant clinic_a, got %s", tid)
	}
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	mw := JWTMiddleware(JWTConfig{Secret: testSecret})
	_, err := invoke(mw, "")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestJWTMiddlewareBadSignature(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "nurse-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte("wrong-secret"))

	mw := JWTMiddleware(JWTConfig{Secret: testSecret})
	_, err := invoke(mw, "Bearer "+signed)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestJWTMiddlewareExpiredToken(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "nurse-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	mw := JWTMiddleware(JWTConfig{Secret: testSecret})
	_, err := invoke(mw, "Bearer "+signToken(t, claims))
	if err == nil {
		t.Error("expected error for expired token")
	}
}

func TestRequireRoleAllows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), UserRolesKey, []string{"nurse"})
	req = req.WithContext(ctx)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := RequireRole("physician", "nurse")
	if err := mw(func(c echo.Context) error { return nil })(c); err != nil {
		t.Errorf("expected nurse role to pass: %v", err)
	}
}

func TestRequireRoleAdminOverride(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), UserRolesKey, []string{"admin"})
	req = req.WithContext(ctx)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := RequireRole("physician")
	if err := mw(func(c echo.Context) error { return nil })(c); err != nil {
		t.Errorf("expected admin to pass any role check: %v", err)
	}
}

func TestRequireRoleForbids(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), UserRolesKey, []string{"clerk"})
	req = req.WithContext(ctx)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := RequireRole("physician")
	err := mw(func(c echo.Context) error { return nil })(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
