package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"arqzoy-backend/internal/handlers"
	"arqzoy-backend/internal/middleware"
	"arqzoy-backend/internal/repository"
)

// asOperator simulates a request that passed the auth middleware.
func asOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, "operator-1")
		c.Next()
	}
}

func TestCreateDesignWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewDesignsHandler(repository.New(nil))
	router.POST("/admin/designs", handler.CreateDesign)

	body := `{"titulo":"Loft","categoria":"interiores"}`
	req, _ := http.NewRequest("POST", "/admin/designs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateDesignInvalidCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asOperator())
	handler := handlers.NewDesignsHandler(repository.New(nil))
	router.POST("/admin/designs", handler.CreateDesign)

	body := `{"titulo":"Loft","categoria":"paisajismo"}`
	req, _ := http.NewRequest("POST", "/admin/designs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateDesignInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asOperator())
	handler := handlers.NewDesignsHandler(repository.New(nil))
	router.PATCH("/admin/designs/:design_id", handler.UpdateDesign)

	req, _ := http.NewRequest("PATCH", "/admin/designs/not-a-uuid", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
