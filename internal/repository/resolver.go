package repository

import (
	"fmt"

	"arqzoy-backend/internal/access"
	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/token"
)

// PrivateProject is everything the token path exposes: the full project,
// the owning client, and the project's files with per-file download
// permission already decided.
type PrivateProject struct {
	Project *models.Project
	Cliente *models.Client
	Files   []models.File

	// Downloadable is keyed by file id; non-media files stay locked until
	// the project is complete.
	Downloadable map[string]bool
}

// ResolveToken maps a private-link token to its project. No session is
// required: possession of the token is the authentication, scoped to one
// project. Malformed and unknown tokens answer identically so the response
// leaks nothing about token structure.
func (r *Repository) ResolveToken(tok string) (*PrivateProject, error) {
	if tok == "" || len(tok) > 2*token.Length {
		return nil, fmt.Errorf("resolve token: %w", ErrNotFound)
	}
	if err := r.ready(); err != nil {
		return nil, err
	}

	project, err := r.db.GetProjectByToken(tok)
	if err != nil {
		return nil, classify(err, "resolve token")
	}

	actor := access.TokenHolder(tok)
	rec := access.Record{
		Kind:   access.KindProject,
		Token:  project.URLPrivada,
		Public: project.MostrarEnPortafolio,
	}
	if access.Decide(actor, rec, access.OpRead) != access.Allow {
		return nil, fmt.Errorf("resolve token: %w", ErrNotFound)
	}

	cliente, err := r.db.GetClient(project.ClienteID)
	if err != nil {
		return nil, classify(err, "resolve token")
	}

	files, err := r.db.ListProjectFiles(project.ID)
	if err != nil {
		return nil, classify(err, "resolve token")
	}
	if files == nil {
		files = []models.File{}
	}

	downloadable := make(map[string]bool, len(files))
	for _, f := range files {
		fileRec := access.Record{
			Kind:          access.KindFile,
			Token:         project.URLPrivada,
			ProjectStatus: project.Estado,
			FileCategory:  f.Tipo,
		}
		downloadable[f.ID.String()] = access.Decide(actor, fileRec, access.OpDownload).Allowed()
	}

	return &PrivateProject{
		Project:      project,
		Cliente:      cliente,
		Files:        files,
		Downloadable: downloadable,
	}, nil
}
