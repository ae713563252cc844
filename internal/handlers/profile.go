package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/repository"
)

type ProfileHandler struct {
	repo *repository.Repository
}

func NewProfileHandler(repo *repository.Repository) *ProfileHandler {
	return &ProfileHandler{
		repo: repo,
	}
}

// GetProfile godoc
// @Summary     Get the studio profile
// @Description Returns the single personal profile shown on the public site.
// @Tags        profile
// @Produce     json
// @Success     200 {object} models.ProfileResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.repo.GetProfile(actorFrom(c))
	if err != nil {
		respondError(c, "failed to get profile", err)
		return
	}

	c.JSON(http.StatusOK, models.NewProfileResponse(profile))
}

// UpsertProfile godoc
// @Summary     Create or replace the studio profile
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       profile body models.UpsertProfileRequest true "Profile data"
// @Success     200 {object} models.ProfileResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /admin/profile [put]
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var req models.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	profile, err := h.repo.UpsertProfile(actorFrom(c), req)
	if err != nil {
		respondError(c, "failed to save profile", err)
		return
	}

	c.JSON(http.StatusOK, models.NewProfileResponse(profile))
}
