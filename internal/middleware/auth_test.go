package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newInternalRouter(validToken string, handlerCalled *bool) *gin.Engine {
	router := gin.New()
	router.Use(InternalAPIAuthMiddleware(validToken))
	router.POST("/internal", func(c *gin.Context) {
		*handlerCalled = true
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestInternalAPIAuthMiddleware_ValidToken(t *testing.T) {
	handlerCalled := false
	router := newInternalRouter("internal-secret", &handlerCalled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/internal", http.NoBody)
	req.Header.Set(InternalAPITokenHeader, "internal-secret")
	router.ServeHTTP(w, req)

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestInternalAPIAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		validToken string
		header     string
	}{
		{name: "invalid token", validToken: "internal-secret", header: "wrong"},
		{name: "missing token", validToken: "internal-secret", header: ""},
		{name: "no token configured", validToken: "", header: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			router := newInternalRouter(tt.validToken, &handlerCalled)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/internal", http.NoBody)
			if tt.header != "" {
				req.Header.Set(InternalAPITokenHeader, tt.header)
			}
			router.ServeHTTP(w, req)

			assert.False(t, handlerCalled)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"Invalid or missing internal API token"}`, w.Body.String())
		})
	}
}
