package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"arqzoy-backend/internal/access"
	"arqzoy-backend/internal/models"
)

func (r *Repository) CreateDesign(actor access.Actor, req models.CreateDesignRequest) (*models.PortfolioDesign, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindPortfolioDesign}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("create design: %w", ErrPermissionDenied)
	}
	if strings.TrimSpace(req.Titulo) == "" {
		return nil, fmt.Errorf("create design: titulo is required: %w", ErrValidation)
	}
	if !models.ValidDesignCategory(req.Categoria) {
		return nil, fmt.Errorf("create design: invalid categoria %q: %w", req.Categoria, ErrValidation)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	design := &models.PortfolioDesign{
		ID:             uuid.New(),
		Titulo:         strings.TrimSpace(req.Titulo),
		Descripcion:    req.Descripcion,
		Categoria:      req.Categoria,
		Anio:           req.Anio,
		TipoCliente:    req.TipoCliente,
		MostrarPublico: req.MostrarPublico,
		OrdenDisplay:   req.OrdenDisplay,
	}

	created, err := r.db.CreateDesign(design)
	if err != nil {
		return nil, classify(err, "create design")
	}
	return created, nil
}

// ListDesigns returns every design for the operator and only the public
// ones, ordered by display order descending, for everyone else.
func (r *Repository) ListDesigns(actor access.Actor) ([]models.PortfolioDesign, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	var (
		designs []models.PortfolioDesign
		err     error
	)
	if actor.Role == access.RoleOperator {
		designs, err = r.db.ListDesigns()
	} else {
		designs, err = r.db.ListPublicDesigns()
	}
	if err != nil {
		return nil, classify(err, "list designs")
	}

	if actor.Role != access.RoleOperator {
		filtered := designs[:0]
		for _, d := range designs {
			rec := access.Record{Kind: access.KindPortfolioDesign, Public: d.MostrarPublico}
			if access.Decide(actor, rec, access.OpRead).Allowed() {
				filtered = append(filtered, d)
			}
		}
		designs = filtered
	}
	if designs == nil {
		designs = []models.PortfolioDesign{}
	}
	return designs, nil
}

func (r *Repository) GetDesign(actor access.Actor, id uuid.UUID) (*models.PortfolioDesign, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	design, err := r.db.GetDesign(id)
	if err != nil {
		return nil, classify(err, "get design")
	}

	rec := access.Record{Kind: access.KindPortfolioDesign, Public: design.MostrarPublico}
	if !access.Decide(actor, rec, access.OpRead).Allowed() {
		return nil, fmt.Errorf("get design: %w", ErrNotFound)
	}
	return design, nil
}

func (r *Repository) UpdateDesign(actor access.Actor, id uuid.UUID, patch models.UpdateDesignRequest) (*models.PortfolioDesign, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindPortfolioDesign}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("update design: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	design, err := r.db.GetDesign(id)
	if err != nil {
		return nil, classify(err, "update design")
	}

	if patch.Titulo != nil {
		if strings.TrimSpace(*patch.Titulo) == "" {
			return nil, fmt.Errorf("update design: titulo is required: %w", ErrValidation)
		}
		design.Titulo = strings.TrimSpace(*patch.Titulo)
	}
	if patch.Descripcion != nil {
		design.Descripcion = *patch.Descripcion
	}
	if patch.Categoria != nil {
		if !models.ValidDesignCategory(*patch.Categoria) {
			return nil, fmt.Errorf("update design: invalid categoria %q: %w", *patch.Categoria, ErrValidation)
		}
		design.Categoria = *patch.Categoria
	}
	if patch.Anio != nil {
		design.Anio = *patch.Anio
	}
	if patch.TipoCliente != nil {
		design.TipoCliente = *patch.TipoCliente
	}
	if patch.MostrarPublico != nil {
		design.MostrarPublico = *patch.MostrarPublico
	}
	if patch.OrdenDisplay != nil {
		design.OrdenDisplay = *patch.OrdenDisplay
	}

	updated, err := r.db.UpdateDesign(design)
	if err != nil {
		return nil, classify(err, "update design")
	}
	return updated, nil
}

func (r *Repository) SetDesignImage(actor access.Actor, id uuid.UUID, url string) (*models.PortfolioDesign, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindPortfolioDesign}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("set design image: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	updated, err := r.db.SetDesignImage(id, url)
	if err != nil {
		return nil, classify(err, "set design image")
	}
	return updated, nil
}

func (r *Repository) DeleteDesign(actor access.Actor, id uuid.UUID) error {
	if !access.Decide(actor, access.Record{Kind: access.KindPortfolioDesign}, access.OpWrite).Allowed() {
		return fmt.Errorf("delete design: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return err
	}

	if _, err := r.db.GetDesign(id); err != nil {
		return classify(err, "delete design")
	}
	if err := r.db.DeleteDesign(id); err != nil {
		return classify(err, "delete design")
	}
	return nil
}
