package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"retrokick/internal/domain/service"
	mockservice "retrokick/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func runAuthenticated(t *testing.T, tokenSvc service.TokenService, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Authenticate(next)(c))

	return rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("good-token").
		Return(&service.Claims{Subject: "admin@retrokick.test", Roles: []string{service.RoleAdmin}, Type: "access"}, nil).
		Once()

	var gotSubject string
	var gotRoles []string
	rec := runAuthenticated(t, tokenSvc, "Bearer good-token", func(c echo.Context) error {
		gotSubject, _ = c.Get("subject").(string)
		gotRoles, _ = c.Get("roles").([]string)

		return okHandler(c)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@retrokick.test", gotSubject)
	assert.Equal(t, []string{service.RoleAdmin}, gotRoles)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)

	rec := runAuthenticated(t, tokenSvc, "", okHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
}

func TestAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)

	rec := runAuthenticated(t, tokenSvc, "Basic dXNlcjpwYXNz", okHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MALFORMED")
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("expired").
		Return(nil, errors.New("token is expired")).
		Once()

	rec := runAuthenticated(t, tokenSvc, "Bearer expired", okHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	tests := []struct {
		name     string
		roles    any
		wantCode int
	}{
		{name: "has role", roles: []string{service.RoleAdmin}, wantCode: http.StatusOK},
		{name: "wrong role", roles: []string{service.RoleCustomer}, wantCode: http.StatusForbidden},
		{name: "roles missing", roles: nil, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.roles != nil {
				c.Set("roles", tt.roles)
			}

			require.NoError(t, m.RequireRole(service.RoleAdmin)(okHandler)(c))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
