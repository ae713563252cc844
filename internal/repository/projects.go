package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"arqzoy-backend/internal/access"
	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/token"
)

// CreateProject synthesizes the private-link token before persisting. The
// token is generated exactly once and never reassigned.
func (r *Repository) CreateProject(actor access.Actor, req models.CreateProjectRequest) (*models.Project, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindProject}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("create project: %w", ErrPermissionDenied)
	}
	if strings.TrimSpace(req.Titulo) == "" {
		return nil, fmt.Errorf("create project: titulo is required: %w", ErrValidation)
	}
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("create project: invalid cliente_id: %w", ErrValidation)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	privada, err := token.Generate()
	if err != nil {
		return nil, fmt.Errorf("create project: %v: %w", err, ErrBackendUnavailable)
	}

	project := &models.Project{
		ID:                  uuid.New(),
		ClienteID:           clienteID,
		Titulo:              strings.TrimSpace(req.Titulo),
		Descripcion:         req.Descripcion,
		URLPrivada:          privada,
		MostrarEnPortafolio: req.MostrarEnPortafolio,
		Estado:              models.ProjectStatusInProgress,
	}

	created, err := r.db.CreateProject(project)
	if err != nil {
		return nil, classify(err, "create project")
	}
	return created, nil
}

func (r *Repository) ListProjects(actor access.Actor) ([]models.ProjectWithClient, error) {
	if actor.Role != access.RoleOperator {
		return nil, fmt.Errorf("list projects: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	projects, err := r.db.ListProjects()
	if err != nil {
		return nil, classify(err, "list projects")
	}
	if projects == nil {
		projects = []models.ProjectWithClient{}
	}
	return projects, nil
}

// ListPublicProjects is the anonymous portfolio listing: only visible
// projects, and the caller must render the public subset (no token).
func (r *Repository) ListPublicProjects() ([]models.ProjectWithClient, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	projects, err := r.db.ListPublicProjects()
	if err != nil {
		return nil, classify(err, "list public projects")
	}

	visible := make([]models.ProjectWithClient, 0, len(projects))
	for _, p := range projects {
		rec := access.Record{Kind: access.KindProject, Token: p.URLPrivada, Public: p.MostrarEnPortafolio}
		if access.Decide(access.Anonymous(), rec, access.OpRead).Allowed() {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

func (r *Repository) GetProject(actor access.Actor, id uuid.UUID) (*models.Project, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	project, err := r.db.GetProject(id)
	if err != nil {
		return nil, classify(err, "get project")
	}

	rec := access.Record{Kind: access.KindProject, Token: project.URLPrivada, Public: project.MostrarEnPortafolio}
	if !access.Decide(actor, rec, access.OpRead).Allowed() {
		// An id the caller may not see reads the same as a missing one.
		return nil, fmt.Errorf("get project: %w", ErrNotFound)
	}
	return project, nil
}

func (r *Repository) UpdateProject(actor access.Actor, id uuid.UUID, patch models.UpdateProjectRequest) (*models.Project, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindProject}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("update project: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	project, err := r.db.GetProject(id)
	if err != nil {
		return nil, classify(err, "update project")
	}

	if patch.Titulo != nil {
		if strings.TrimSpace(*patch.Titulo) == "" {
			return nil, fmt.Errorf("update project: titulo is required: %w", ErrValidation)
		}
		project.Titulo = strings.TrimSpace(*patch.Titulo)
	}
	if patch.Descripcion != nil {
		project.Descripcion = *patch.Descripcion
	}

	updated, err := r.db.UpdateProject(project)
	if err != nil {
		return nil, classify(err, "update project")
	}
	return updated, nil
}

func (r *Repository) SetProjectStatus(actor access.Actor, id uuid.UUID, estado string) (*models.Project, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindProject}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("set project status: %w", ErrPermissionDenied)
	}
	if !models.ValidProjectStatus(estado) {
		return nil, fmt.Errorf("set project status: invalid estado %q: %w", estado, ErrValidation)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	project, err := r.db.GetProject(id)
	if err != nil {
		return nil, classify(err, "set project status")
	}

	project.Estado = estado
	updated, err := r.db.UpdateProject(project)
	if err != nil {
		return nil, classify(err, "set project status")
	}
	return updated, nil
}

func (r *Repository) SetProjectVisibility(actor access.Actor, id uuid.UUID, visible bool) (*models.Project, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindProject}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("set project visibility: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	project, err := r.db.GetProject(id)
	if err != nil {
		return nil, classify(err, "set project visibility")
	}

	project.MostrarEnPortafolio = visible
	updated, err := r.db.UpdateProject(project)
	if err != nil {
		return nil, classify(err, "set project visibility")
	}
	return updated, nil
}

func (r *Repository) DeleteProject(actor access.Actor, id uuid.UUID) error {
	if !access.Decide(actor, access.Record{Kind: access.KindProject}, access.OpWrite).Allowed() {
		return fmt.Errorf("delete project: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return err
	}

	if _, err := r.db.GetProject(id); err != nil {
		return classify(err, "delete project")
	}
	if err := r.db.DeleteProject(id); err != nil {
		return classify(err, "delete project")
	}
	return nil
}
