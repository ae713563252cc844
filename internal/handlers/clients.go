package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/repository"
)

type ClientsHandler struct {
	repo *repository.Repository
}

func NewClientsHandler(repo *repository.Repository) *ClientsHandler {
	return &ClientsHandler{
		repo: repo,
	}
}

// CreateClient godoc
// @Summary     Create a client
// @Description Registers a new studio client. Blank dates persist as unset and a blank paid amount as 0.
// @Tags        clients
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       client body models.CreateClientRequest true "Client intake form"
// @Success     200 {object} models.ClientResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /admin/clients [post]
func (h *ClientsHandler) CreateClient(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid client request",
			Message: err.Error(),
		})
		return
	}

	client, err := h.repo.CreateClient(actorFrom(c), req)
	if err != nil {
		respondError(c, "failed to create client", err)
		return
	}

	c.JSON(http.StatusOK, models.NewClientResponse(client))
}

// ListClients godoc
// @Summary     List clients
// @Tags        clients
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ClientListResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /admin/clients [get]
func (h *ClientsHandler) ListClients(c *gin.Context) {
	clients, err := h.repo.ListClients(actorFrom(c))
	if err != nil {
		respondError(c, "failed to list clients", err)
		return
	}

	responses := make([]models.ClientResponse, len(clients))
	for i := range clients {
		responses[i] = models.NewClientResponse(&clients[i])
	}

	c.JSON(http.StatusOK, models.ClientListResponse{Clients: responses})
}

// UpdateClient godoc
// @Summary     Update a client
// @Tags        clients
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       client_id path string true "Client ID (UUID)"
// @Param       patch body models.UpdateClientRequest true "Fields to change"
// @Success     200 {object} models.ClientResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/clients/{client_id} [patch]
func (h *ClientsHandler) UpdateClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("client_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid client id"})
		return
	}

	var patch models.UpdateClientRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid client patch",
			Message: err.Error(),
		})
		return
	}

	client, err := h.repo.UpdateClient(actorFrom(c), clientID, patch)
	if err != nil {
		respondError(c, "failed to update client", err)
		return
	}

	c.JSON(http.StatusOK, models.NewClientResponse(client))
}
