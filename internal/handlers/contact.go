package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"arqzoy-backend/internal/email"
	"arqzoy-backend/internal/models"
)

type ContactHandler struct {
	email *email.Client
}

func NewContactHandler(client *email.Client) *ContactHandler {
	return &ContactHandler{
		email: client,
	}
}

// SendContact godoc
// @Summary     Send a contact form message
// @Description Relays the public contact form to the studio's inbox.
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       contact body models.ContactRequest true "Contact form"
// @Success     200 {object} models.MessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /contact [post]
func (h *ContactHandler) SendContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if h.email == nil || !h.email.Configured() {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "contact form unavailable",
			Message: "email delivery is not configured",
		})
		return
	}

	form := email.ContactForm{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Telefono: req.Telefono,
		Mensaje:  req.Mensaje,
	}
	if err := h.email.SendContactForm(form); err != nil {
		log.Printf("Failed to send contact form from %s: %v", req.Email, err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "failed to send message",
			Message: "email delivery failed, try again later",
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "message sent"})
}
