package email_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arqzoy-backend/internal/email"
)

func TestConfigured(t *testing.T) {
	assert.False(t, email.NewClient(email.Config{}).Configured())
	assert.False(t, email.NewClient(email.Config{ServiceID: "s", TemplateID: "t"}).Configured())
	assert.True(t, email.NewClient(email.Config{
		ServiceID:  "s",
		TemplateID: "t",
		PublicKey:  "k",
	}).Configured())
}

func TestSendContactForm(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := email.NewClient(email.Config{
		BaseURL:    server.URL,
		ServiceID:  "service-1",
		TemplateID: "template-1",
		PublicKey:  "key-1",
	})

	err := client.SendContactForm(email.ContactForm{
		Nombre:   "Carlos",
		Email:    "carlos@example.com",
		Telefono: "555-0100",
		Mensaje:  "Quisiera una cotización.",
	})
	require.NoError(t, err)

	assert.Equal(t, "service-1", received["service_id"])
	assert.Equal(t, "template-1", received["template_id"])
	assert.Equal(t, "key-1", received["user_id"])

	params, ok := received["template_params"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Carlos", params["nombre"])
	assert.Equal(t, "carlos@example.com", params["email"])
	assert.Equal(t, "Quisiera una cotización.", params["mensaje"])
}

func TestSendContactFormAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := email.NewClient(email.Config{
		BaseURL:    server.URL,
		ServiceID:  "s",
		TemplateID: "t",
		PublicKey:  "k",
	})

	err := client.SendContactForm(email.ContactForm{Nombre: "Ana", Email: "ana@example.com", Mensaje: "hola"})
	assert.Error(t, err)
}
