package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/repository"
)

type DesignsHandler struct {
	repo *repository.Repository
}

func NewDesignsHandler(repo *repository.Repository) *DesignsHandler {
	return &DesignsHandler{
		repo: repo,
	}
}

// CreateDesign godoc
// @Summary     Create a portfolio design
// @Tags        designs
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       design body models.CreateDesignRequest true "Design data"
// @Success     201 {object} models.DesignResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /admin/designs [post]
func (h *DesignsHandler) CreateDesign(c *gin.Context) {
	var req models.CreateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	design, err := h.repo.CreateDesign(actorFrom(c), req)
	if err != nil {
		respondError(c, "failed to create design", err)
		return
	}

	c.JSON(http.StatusCreated, models.NewDesignResponse(design))
}

// ListDesigns godoc
// @Summary     List portfolio designs
// @Description Returns every design, public or not, in display order.
// @Tags        designs
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.DesignListResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /admin/designs [get]
func (h *DesignsHandler) ListDesigns(c *gin.Context) {
	designs, err := h.repo.ListDesigns(actorFrom(c))
	if err != nil {
		respondError(c, "failed to list designs", err)
		return
	}

	response := models.DesignListResponse{
		Designs: make([]models.DesignResponse, len(designs)),
	}
	for i := range designs {
		response.Designs[i] = models.NewDesignResponse(&designs[i])
	}

	c.JSON(http.StatusOK, response)
}

// UpdateDesign godoc
// @Summary     Update a portfolio design
// @Description Applies a partial update; omitted fields keep their value.
// @Tags        designs
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       design_id path string true "Design ID (UUID)"
// @Param       design body models.UpdateDesignRequest true "Fields to update"
// @Success     200 {object} models.DesignResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/designs/{design_id} [patch]
func (h *DesignsHandler) UpdateDesign(c *gin.Context) {
	designID, err := uuid.Parse(c.Param("design_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid design id"})
		return
	}

	var req models.UpdateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	design, err := h.repo.UpdateDesign(actorFrom(c), designID, req)
	if err != nil {
		respondError(c, "failed to update design", err)
		return
	}

	c.JSON(http.StatusOK, models.NewDesignResponse(design))
}

// DeleteDesign godoc
// @Summary     Delete a portfolio design
// @Tags        designs
// @Produce     json
// @Security    Bearer
// @Param       design_id path string true "Design ID (UUID)"
// @Success     200 {object} models.MessageResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/designs/{design_id} [delete]
func (h *DesignsHandler) DeleteDesign(c *gin.Context) {
	designID, err := uuid.Parse(c.Param("design_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid design id"})
		return
	}

	if err := h.repo.DeleteDesign(actorFrom(c), designID); err != nil {
		respondError(c, "failed to delete design", err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "design deleted"})
}
