package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/repository"
	"arqzoy-backend/internal/services"
)

type UploadsHandler struct {
	gateway *services.FileGateway
}

func NewUploadsHandler(gateway *services.FileGateway) *UploadsHandler {
	return &UploadsHandler{
		gateway: gateway,
	}
}

// readMultipartFiles pulls the uploaded files out of the form, accepting
// the common field names.
func readMultipartFiles(c *gin.Context) ([]services.UploadItem, error) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}
	form := c.Request.MultipartForm
	if form == nil {
		return nil, fmt.Errorf("multipart form is nil")
	}

	var headers []*multipart.FileHeader
	for _, fieldName := range []string{"archivos", "archivo", "files", "file"} {
		if f := form.File[fieldName]; len(f) > 0 {
			headers = f
			break
		}
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("no files uploaded")
	}

	items := make([]services.UploadItem, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", header.Filename, err)
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", header.Filename, err)
		}
		items = append(items, services.UploadItem{
			Filename: header.Filename,
			Data:     data,
		})
	}
	return items, nil
}

// UploadProjectFiles godoc
// @Summary     Upload files to a project
// @Description Uploads a batch of files under one category. Members succeed or fail independently; a partial batch reports per-file errors alongside the persisted files.
// @Tags        files
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID (UUID)"
// @Param       tipo formData string true "File category: foto, video, plano_2d or documento"
// @Param       archivos formData file true "Files (multiple allowed)"
// @Success     200 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.UploadResponse
// @Router      /admin/projects/{project_id}/files [post]
func (h *UploadsHandler) UploadProjectFiles(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	category := c.PostForm("tipo")
	items, err := readMultipartFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid upload",
			Message: err.Error(),
		})
		return
	}

	result, err := h.gateway.UploadProjectFiles(actorFrom(c), projectID, category, items)
	if err != nil && !errors.Is(err, repository.ErrPartialBatch) {
		respondError(c, "failed to upload files", err)
		return
	}

	response := models.UploadResponse{
		ProyectoID: projectID.String(),
		Status:     "uploaded",
	}
	response.Files = make([]models.FileResponse, len(result.Files))
	for i := range result.Files {
		response.Files[i] = models.NewFileResponse(&result.Files[i], true)
	}

	status := http.StatusOK
	if len(result.Errors) > 0 {
		response.Status = "partial_failure"
		response.Errors = result.Errors
		status = http.StatusBadGateway
	}

	c.JSON(status, response)
}

// UploadDesignImage godoc
// @Summary     Upload a portfolio design's principal image
// @Tags        designs
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       design_id path string true "Design ID (UUID)"
// @Param       archivo formData file true "Image file"
// @Success     200 {object} models.DesignResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/designs/{design_id}/image [post]
func (h *UploadsHandler) UploadDesignImage(c *gin.Context) {
	designID, err := uuid.Parse(c.Param("design_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid design id"})
		return
	}

	items, err := readMultipartFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid upload",
			Message: err.Error(),
		})
		return
	}
	if len(items) != 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "exactly one image is required"})
		return
	}

	design, err := h.gateway.UploadDesignImage(actorFrom(c), designID, items[0])
	if err != nil {
		respondError(c, "failed to upload design image", err)
		return
	}

	c.JSON(http.StatusOK, models.NewDesignResponse(design))
}
