package repository

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"arqzoy-backend/internal/access"
	"arqzoy-backend/internal/models"
)

const dateLayout = "2006-01-02"

// parseOptionalDate turns a blank form value into an unset date rather than
// persisting an empty string.
func parseOptionalDate(value string) (sql.NullTime, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return sql.NullTime{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return sql.NullTime{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, ErrValidation)
	}
	return sql.NullTime{Time: t, Valid: true}, nil
}

// parseOptionalAmount turns a blank paid amount into 0.
func parseOptionalAmount(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil || amount < 0 {
		return 0, fmt.Errorf("invalid amount %q: %w", value, ErrValidation)
	}
	return amount, nil
}

func (r *Repository) CreateClient(actor access.Actor, req models.CreateClientRequest) (*models.Client, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindClient}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("create client: %w", ErrPermissionDenied)
	}
	if strings.TrimSpace(req.Nombre) == "" {
		return nil, fmt.Errorf("create client: nombre is required: %w", ErrValidation)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	fechaInicio, err := parseOptionalDate(req.FechaInicio)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	fechaEntrega, err := parseOptionalDate(req.FechaEntrega)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	monto, err := parseOptionalAmount(req.MontoAbonado)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	client := &models.Client{
		ID:           uuid.New(),
		Nombre:       strings.TrimSpace(req.Nombre),
		Apellido:     strings.TrimSpace(req.Apellido),
		Email:        strings.TrimSpace(req.Email),
		Telefono:     strings.TrimSpace(req.Telefono),
		TipoProyecto: strings.TrimSpace(req.TipoProyecto),
		Referido:     strings.TrimSpace(req.Referido),
		MontoAbonado: monto,
		FechaInicio:  fechaInicio,
		FechaEntrega: fechaEntrega,
	}

	created, err := r.db.CreateClient(client)
	if err != nil {
		return nil, classify(err, "create client")
	}
	return created, nil
}

func (r *Repository) ListClients(actor access.Actor) ([]models.Client, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindClient}, access.OpRead).Allowed() {
		return nil, fmt.Errorf("list clients: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	clients, err := r.db.ListClients()
	if err != nil {
		return nil, classify(err, "list clients")
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return clients, nil
}

func (r *Repository) GetClient(actor access.Actor, id uuid.UUID) (*models.Client, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindClient}, access.OpRead).Allowed() {
		return nil, fmt.Errorf("get client: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	client, err := r.db.GetClient(id)
	if err != nil {
		return nil, classify(err, "get client")
	}
	return client, nil
}

// UpdateClient applies a patch and writes the full row back in a single
// statement. Blank date strings in the patch unset the date; a blank amount
// resets it to 0.
func (r *Repository) UpdateClient(actor access.Actor, id uuid.UUID, patch models.UpdateClientRequest) (*models.Client, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindClient}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("update client: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	client, err := r.db.GetClient(id)
	if err != nil {
		return nil, classify(err, "update client")
	}

	if patch.Nombre != nil {
		if strings.TrimSpace(*patch.Nombre) == "" {
			return nil, fmt.Errorf("update client: nombre is required: %w", ErrValidation)
		}
		client.Nombre = strings.TrimSpace(*patch.Nombre)
	}
	if patch.Apellido != nil {
		client.Apellido = strings.TrimSpace(*patch.Apellido)
	}
	if patch.Email != nil {
		client.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Telefono != nil {
		client.Telefono = strings.TrimSpace(*patch.Telefono)
	}
	if patch.TipoProyecto != nil {
		client.TipoProyecto = strings.TrimSpace(*patch.TipoProyecto)
	}
	if patch.Referido != nil {
		client.Referido = strings.TrimSpace(*patch.Referido)
	}
	if patch.MontoAbonado != nil {
		monto, err := parseOptionalAmount(*patch.MontoAbonado)
		if err != nil {
			return nil, fmt.Errorf("update client: %w", err)
		}
		client.MontoAbonado = monto
	}
	if patch.FechaInicio != nil {
		fecha, err := parseOptionalDate(*patch.FechaInicio)
		if err != nil {
			return nil, fmt.Errorf("update client: %w", err)
		}
		client.FechaInicio = fecha
	}
	if patch.FechaEntrega != nil {
		fecha, err := parseOptionalDate(*patch.FechaEntrega)
		if err != nil {
			return nil, fmt.Errorf("update client: %w", err)
		}
		client.FechaEntrega = fecha
	}

	updated, err := r.db.UpdateClient(client)
	if err != nil {
		return nil, classify(err, "update client")
	}
	return updated, nil
}
