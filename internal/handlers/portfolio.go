package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/repository"
)

// PortfolioHandler serves the anonymous public surface: visible projects
// with their tokens stripped, and public designs.
type PortfolioHandler struct {
	repo *repository.Repository
}

func NewPortfolioHandler(repo *repository.Repository) *PortfolioHandler {
	return &PortfolioHandler{
		repo: repo,
	}
}

// ListPublicProjects godoc
// @Summary     List projects shown in the portfolio
// @Description Returns the public subset of every visible project. Private link tokens never appear here.
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} models.PublicProjectListResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /portfolio/projects [get]
func (h *PortfolioHandler) ListPublicProjects(c *gin.Context) {
	projects, err := h.repo.ListPublicProjects()
	if err != nil {
		respondError(c, "failed to list portfolio projects", err)
		return
	}

	response := models.PublicProjectListResponse{
		Projects: make([]models.PublicProjectResponse, len(projects)),
	}
	for i := range projects {
		response.Projects[i] = models.NewPublicProjectResponse(&projects[i])
	}

	c.JSON(http.StatusOK, response)
}

// ListPublicDesigns godoc
// @Summary     List portfolio designs shown publicly
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} models.DesignListResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /portfolio/designs [get]
func (h *PortfolioHandler) ListPublicDesigns(c *gin.Context) {
	designs, err := h.repo.ListDesigns(actorFrom(c))
	if err != nil {
		respondError(c, "failed to list portfolio designs", err)
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
