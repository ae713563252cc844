package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/repository"
)

// ClientViewHandler serves the private project page reached through an
// unguessable link. The token in the path is the whole credential.
type ClientViewHandler struct {
	repo *repository.Repository
}

func NewClientViewHandler(repo *repository.Repository) *ClientViewHandler {
	return &ClientViewHandler{
		repo: repo,
	}
}

// ViewProject godoc
// @Summary     View a project through its private link
// @Description Resolves a private-link token to the full project, its client and its files. Unknown and malformed tokens both answer 404.
// @Tags        client-view
// @Produce     json
// @Param       token path string true "Private link token"
// @Success     200 {object} models.PrivateProjectResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /cliente/{token} [get]
func (h *ClientViewHandler) ViewProject(c *gin.Context) {
	private, err := h.repo.ResolveToken(c.Param("token"))
	if err != nil {
		respondError(c, "project not found", err)
		return
	}

	response := models.PrivateProjectResponse{
		Project: models.NewProjectResponse(private.Project),
		Cliente: models.NewClientResponse(private.Cliente),
		Files:   make([]models.FileResponse, len(private.Files)),
	}
	for i := range private.Files {
		f := &private.Files[i]
		response.Files[i] = models.NewFileResponse(f, private.Downloadable[f.ID.String()])
	}

	c.JSON(http.StatusOK, response)
}
