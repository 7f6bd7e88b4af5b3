package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protected(tokens *Tokens) *gin.Engine {
	r := gin.New()
	r.GET("/me", tokens.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"member_id": c.GetUint(ContextMemberID),
			"job":       c.GetString(ContextJob),
		})
	})
	return r
}

func call(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	token, err := tokens.GenerateToken(7, "captain")
	require.NoError(t, err)

	parsed, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(7), claims["member_id"])
	assert.Equal(t, "captain", claims["job"])

	_, err = NewTokens("other-secret", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	r := protected(tokens)

	good, err := tokens.GenerateToken(7, "driver")
	require.NoError(t, err)
	w := call(r, "Bearer "+good)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"member_id":7,"job":"driver"}`, w.Body.String())

	expired, err := NewTokens("test-secret", -time.Minute).GenerateToken(7, "driver")
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing": "",
		"scheme":  "Basic " + good,
		"garbage": "Bearer not-a-token",
		"expired": "Bearer " + expired,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, call(r, header).Code)
		})
	}
}
