package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"vidtube/internal/config"
	"vidtube/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configOnce sync.Once

func loadTestConfig(t *testing.T) {
	t.Helper()
	configOnce.Do(func() {
		dir, err := os.MkdirTemp("", "vidtube-middleware-test")
		if err != nil {
			panic(err)
		}
		yaml := `
app:
  name: vidtube-test
jwt:
  secret: test-secret-key
  expire_minutes: 30
  refresh_expire_hours: 240
`
		path := filepath.Join(dir, "config.yaml")
		if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
			panic(err)
		}
		if _, err := config.Load(path); err != nil {
			panic(err)
		}
	})
}

// newAuthRouter mounts a protected route that echoes the resolved user.
func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthRequired(), func(c *gin.Context) {
		userID, _ := GetCurrentUserID(c)
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestAuthRequiredBearerHeader(t *testing.T) {
	loadTestConfig(t)
	r := newAuthRouter()

	token, err := utils.GenerateAccessToken("user-123")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-123", w.Body.String())
}

func TestAuthRequiredAccessTokenCookie(t *testing.T) {
	loadTestConfig(t)
	r := newAuthRouter()

	token, err := utils.GenerateAccessToken("user-456")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-456", w.Body.String())
}

func TestAuthRequiredRejectsMissingAndBadTokens(t *testing.T) {
	loadTestConfig(t)
	r := newAuthRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "garbage"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
