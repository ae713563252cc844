// Package email relays the public contact form to the transactional email
// API. The sender fills every template field; delivery status beyond
// success/failure is not inspected.
package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Config struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether delivery credentials are present. The contact
// endpoint answers 503 instead of dropping mail silently when they are not.
func (c *Client) Configured() bool {
	return c.cfg.ServiceID != "" && c.cfg.TemplateID != "" && c.cfg.PublicKey != ""
}

type ContactForm struct {
	Nombre   string
	Email    string
	Telefono string
	Mensaje  string
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *Client) SendContactForm(form ContactForm) error {
	body := sendRequest{
		ServiceID:  c.cfg.ServiceID,
		TemplateID: c.cfg.TemplateID,
		UserID:     c.cfg.PublicKey,
		TemplateParams: map[string]string{
			"nombre":   form.Nombre,
			"email":    form.Email,
			"telefono": form.Telefono,
			"mensaje":  form.Mensaje,
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.cfg.BaseURL+"/api/v1.0/email/send", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("email API error: status %d", resp.StatusCode)
	}

	return nil
}
