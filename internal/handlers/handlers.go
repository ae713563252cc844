package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"arqzoy-backend/internal/access"
	"arqzoy-backend/internal/middleware"
	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/repository"
)

// actorFrom derives the access-control identity from the request context.
// The auth middleware sets the user id for admin routes; everything else is
// anonymous. Token holders are constructed explicitly by the private route.
func actorFrom(c *gin.Context) access.Actor {
	if _, exists := c.Get(middleware.UserIDKey); exists {
		return access.Operator()
	}
	return access.Anonymous()
}

// respondError maps the repository taxonomy onto HTTP statuses. Every
// failure surfaces to the caller; nothing is swallowed beyond this log.
func respondError(c *gin.Context, action string, err error) {
	log.Printf("%s: %v", action, err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrBackendUnavailable):
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, models.ErrorResponse{
		Error:   action,
		Message: err.Error(),
	})
}
