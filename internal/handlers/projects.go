package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/repository"
	"arqzoy-backend/internal/supabase"
)

type ProjectsHandler struct {
	repo          *repository.Repository
	storageClient *supabase.StorageClient
}

func NewProjectsHandler(repo *repository.Repository, storageClient *supabase.StorageClient) *ProjectsHandler {
	return &ProjectsHandler{
		repo:          repo,
		storageClient: storageClient,
	}
}

// CreateProject godoc
// @Summary     Create a project
// @Description Creates a project for a client. A fresh private-link token is generated at creation and never reassigned.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project body models.CreateProjectRequest true "Project fields"
// @Success     200 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /admin/projects [post]
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid project request",
			Message: err.Error(),
		})
		return
	}

	project, err := h.repo.CreateProject(actorFrom(c), req)
	if err != nil {
		respondError(c, "failed to create project", err)
		return
	}

	c.JSON(http.StatusOK, models.NewProjectResponse(project))
}

// ListProjects godoc
// @Summary     List projects
// @Description Returns every project with the owning client's name, newest first.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ProjectListResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /admin/projects [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	projects, err := h.repo.ListProjects(actorFrom(c))
	if err != nil {
		respondError(c, "failed to list projects", err)
		return
	}

	responses := make([]models.ProjectResponse, len(projects))
	for i, p := range projects {
		resp := models.NewProjectResponse(&p.Project)
		resp.ClienteNombre = p.ClienteNombre
		resp.ClienteApellido = p.ClienteApellido
		responses[i] = resp
	}

	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: responses})
}

// UpdateProject godoc
// @Summary     Update a project's title or description
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       patch body models.UpdateProjectRequest true "Fields to change"
// @Success     200 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/projects/{project_id} [patch]
func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	var patch models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid project patch",
			Message: err.Error(),
		})
		return
	}

	project, err := h.repo.UpdateProject(actorFrom(c), projectID, patch)
	if err != nil {
		respondError(c, "failed to update project", err)
		return
	}

	c.JSON(http.StatusOK, models.NewProjectResponse(project))
}

// UpdateStatus godoc
// @Summary     Change a project's workflow status
// @Description Status is one of en_progreso, revision, completo, pausado. Completing a project unlocks client downloads of non-media files.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       status body models.UpdateProjectStatusRequest true "New status"
// @Success     200 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/projects/{project_id}/status [patch]
func (h *ProjectsHandler) UpdateStatus(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	var req models.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid status request",
			Message: err.Error(),
		})
		return
	}

	project, err := h.repo.SetProjectStatus(actorFrom(c), projectID, req.Estado)
	if err != nil {
		respondError(c, "failed to update project status", err)
		return
	}

	c.JSON(http.StatusOK, models.NewProjectResponse(project))
}

// UpdateVisibility godoc
// @Summary     Toggle a project's public portfolio visibility
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       visibility body models.UpdateProjectVisibilityRequest true "New visibility"
// @Success     200 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/projects/{project_id}/visibility [patch]
func (h *ProjectsHandler) UpdateVisibility(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	var req models.UpdateProjectVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MostrarEnPortafolio == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "mostrar_en_portafolio is required"})
		return
	}

	project, err := h.repo.SetProjectVisibility(actorFrom(c), projectID, *req.MostrarEnPortafolio)
	if err != nil {
		respondError(c, "failed to update project visibility", err)
		return
	}

	c.JSON(http.StatusOK, models.NewProjectResponse(project))
}

// DeleteProject godoc
// @Summary     Delete a project
// @Description Removes the project row (cascading to its files) and clears its stored objects.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {object} models.MessageResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/projects/{project_id} [delete]
func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	if err := h.repo.DeleteProject(actorFrom(c), projectID); err != nil {
		respondError(c, "failed to delete project", err)
		return
	}

	// Stored objects are cleaned up best-effort after the row is gone.
	if h.storageClient != nil {
		if err := h.storageClient.DeleteProjectObjects(projectID.String()); err != nil {
			log.Printf("failed to delete stored objects for project %s: %v", projectID, err)
		}
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "project deleted"})
}

// ListFiles godoc
// @Summary     List a project's files
// @Tags        files
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {object} models.FileListResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/projects/{project_id}/files [get]
func (h *ProjectsHandler) ListFiles(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	files, err := h.repo.ListProjectFiles(actorFrom(c), projectID)
	if err != nil {
		respondError(c, "failed to list project files", err)
		return
	}

	responses := make([]models.FileResponse, len(files))
	for i := range files {
		// The operator always has download permission.
		responses[i] = models.NewFileResponse(&files[i], true)
	}

	c.JSON(http.StatusOK, models.FileListResponse{Files: responses})
}
