package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(origins []string, method, origin string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(New(origins))
	r.POST("/plan", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(method, "/plan", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSAllowsListedOrigin(t *testing.T) {
	w := serve([]string{"https://planner.test/"}, http.MethodPost, "https://planner.test")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://planner.test", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	w := serve([]string{"https://planner.test"}, http.MethodPost, "https://evil.test")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	w := serve(nil, http.MethodOptions, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}

func TestPolicyAllowOrigin(t *testing.T) {
	p := newPolicy([]string{" HTTPS://Planner.test/ "})

	assert.Equal(t, "https://planner.test", p.allowOrigin("https://planner.test"))
	assert.Equal(t, "https://PLANNER.test/", p.allowOrigin("https://PLANNER.test/"))
	assert.Empty(t, p.allowOrigin("https://other.test"))
	assert.Empty(t, p.allowOrigin(""))

	open := newPolicy(nil)
	assert.Equal(t, "*", open.allowOrigin(""))
	assert.Equal(t, "https://any.test", open.allowOrigin("https://any.test"))
}
