package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novazone/learnhub-api/internal/models"
	appErrors "github.com/novazone/learnhub-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubValidator struct {
	claims *models.JWTClaims
	err    error
	token  string
}

func (s *stubValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	s.token = token
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func runJWT(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	reached := false
	JWT(validator)(c)
	if !c.IsAborted() {
		reached = true
	}
	return w, reached
}

func TestJWTMissingHeader(t *testing.T) {
	w, reached := runJWT(t, &stubValidator{}, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMalformedHeader(t *testing.T) {
	w, reached := runJWT(t, &stubValidator{}, "Token abc")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTInvalidToken(t *testing.T) {
	validator := &stubValidator{err: appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")}
	w, reached := runJWT(t, validator, "Bearer bad-token")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "bad-token", validator.token)
}

func TestJWTStoresClaims(t *testing.T) {
	claims := &models.JWTClaims{UserID: "u1", Role: models.RoleStudent}
	validator := &stubValidator{claims: claims}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	c.Request.Header.Set("Authorization", "bearer good-token")

	JWT(validator)(c)
	require.False(t, c.IsAborted(), "lowercase bearer scheme must be accepted")

	stored, exists := c.Get(ContextUserKey)
	require.True(t, exists)
	assert.Equal(t, claims, stored)
}

func TestRequireRolesAllowsMatchingRole(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/courses", nil)
	c.Set(ContextUserKey, &models.JWTClaims{UserID: "u1", Role: models.RoleTeacher})

	RequireRoles(models.RoleTeacher)(c)
	assert.False(t, c.IsAborted())
}

func TestRequireRolesRejectsOtherRole(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/courses", nil)
	c.Set(ContextUserKey, &models.JWTClaims{UserID: "u1", Role: models.RoleStudent})

	RequireRoles(models.RoleTeacher)(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesWithoutClaims(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/courses", nil)

	RequireRoles(models.RoleTeacher)(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
