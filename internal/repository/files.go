package repository

import (
	"fmt"

	"github.com/google/uuid"

	"arqzoy-backend/internal/access"
	"arqzoy-backend/internal/models"
)

// NewFile is the metadata persisted for an uploaded object. File rows are
// immutable once created: category, format, and size are set at upload and
// never recomputed.
type NewFile struct {
	ProyectoID  uuid.UUID
	Nombre      string
	Tipo        string
	Formato     string
	TamanioMB   float64
	StoragePath string
	URLArchivo  string
}

func (r *Repository) CreateFile(actor access.Actor, nf NewFile) (*models.File, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindFile}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("create file: %w", ErrPermissionDenied)
	}
	if !models.ValidFileCategory(nf.Tipo) {
		return nil, fmt.Errorf("create file: invalid tipo %q: %w", nf.Tipo, ErrValidation)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	file := &models.File{
		ID:          uuid.New(),
		ProyectoID:  nf.ProyectoID,
		Nombre:      nf.Nombre,
		Tipo:        nf.Tipo,
		Formato:     nf.Formato,
		TamanioMB:   nf.TamanioMB,
		StoragePath: nf.StoragePath,
		URLArchivo:  nf.URLArchivo,
	}

	created, err := r.db.CreateFile(file)
	if err != nil {
		return nil, classify(err, "create file")
	}
	return created, nil
}

// ListProjectFiles returns a project's files for the operator view.
func (r *Repository) ListProjectFiles(actor access.Actor, projectID uuid.UUID) ([]models.File, error) {
	if actor.Role != access.RoleOperator {
		return nil, fmt.Errorf("list project files: %w", ErrPermissionDenied)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	if _, err := r.db.GetProject(projectID); err != nil {
		return nil, classify(err, "list project files")
	}

	files, err := r.db.ListProjectFiles(projectID)
	if err != nil {
		return nil, classify(err, "list project files")
	}
	if files == nil {
		files = []models.File{}
	}
	return files, nil
}
