package repository_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"arqzoy-backend/internal/access"
	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/repository"
	"arqzoy-backend/internal/token"
)

// All of these run against a repository with no backend connection: access
// and validation checks answer before storage is ever consulted, so a nil
// database is enough to exercise them.
func newRepo() *repository.Repository {
	return repository.New(nil)
}

func TestWritesDeniedBeforeBackend(t *testing.T) {
	repo := newRepo()
	anon := access.Anonymous()
	holder := access.TokenHolder("abcdefghijklmnopqrstuvwxyz")

	for _, actor := range []access.Actor{anon, holder} {
		_, err := repo.CreateClient(actor, models.CreateClientRequest{Nombre: "Ana"})
		assert.ErrorIs(t, err, repository.ErrPermissionDenied)

		_, err = repo.CreateProject(actor, models.CreateProjectRequest{
			ClienteID: uuid.NewString(),
			Titulo:    "Casa",
		})
		assert.ErrorIs(t, err, repository.ErrPermissionDenied)

		_, err = repo.CreateDesign(actor, models.CreateDesignRequest{
			Titulo:    "Loft",
			Categoria: models.DesignCategoryInteriors,
		})
		assert.ErrorIs(t, err, repository.ErrPermissionDenied)

		_, err = repo.UpsertProfile(actor, models.UpsertProfileRequest{Bio: "arquitecta"})
		assert.ErrorIs(t, err, repository.ErrPermissionDenied)

		err = repo.DeleteProject(actor, uuid.New())
		assert.ErrorIs(t, err, repository.ErrPermissionDenied)
	}
}

func TestClientReadsOperatorOnly(t *testing.T) {
	repo := newRepo()

	_, err := repo.ListClients(access.Anonymous())
	assert.ErrorIs(t, err, repository.ErrPermissionDenied)

	_, err = repo.GetClient(access.TokenHolder("abc"), uuid.New())
	assert.ErrorIs(t, err, repository.ErrPermissionDenied)

	_, err = repo.ListProjects(access.Anonymous())
	assert.ErrorIs(t, err, repository.ErrPermissionDenied)
}

func TestCreateClientValidation(t *testing.T) {
	repo := newRepo()
	op := access.Operator()

	_, err := repo.CreateClient(op, models.CreateClientRequest{Nombre: "   "})
	assert.ErrorIs(t, err, repository.ErrValidation)

	// Valid input with no backend reports unavailability, not validation.
	_, err = repo.CreateClient(op, models.CreateClientRequest{Nombre: "Ana"})
	assert.ErrorIs(t, err, repository.ErrBackendUnavailable)
}

func TestCreateProjectValidation(t *testing.T) {
	repo := newRepo()
	op := access.Operator()

	_, err := repo.CreateProject(op, models.CreateProjectRequest{
		ClienteID: uuid.NewString(),
		Titulo:    "",
	})
	assert.ErrorIs(t, err, repository.ErrValidation)

	_, err = repo.CreateProject(op, models.CreateProjectRequest{
		ClienteID: "not-a-uuid",
		Titulo:    "Casa en el bosque",
	})
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestSetProjectStatusValidation(t *testing.T) {
	repo := newRepo()
	op := access.Operator()

	_, err := repo.SetProjectStatus(op, uuid.New(), "terminado")
	assert.ErrorIs(t, err, repository.ErrValidation)

	_, err = repo.SetProjectStatus(op, uuid.New(), models.ProjectStatusComplete)
	assert.ErrorIs(t, err, repository.ErrBackendUnavailable)
}

func TestCreateDesignValidation(t *testing.T) {
	repo := newRepo()
	op := access.Operator()

	_, err := repo.CreateDesign(op, models.CreateDesignRequest{
		Titulo:    "Loft",
		Categoria: "paisajismo",
	})
	assert.ErrorIs(t, err, repository.ErrValidation)

	_, err = repo.CreateDesign(op, models.CreateDesignRequest{
		Titulo:    "",
		Categoria: models.DesignCategoryArchitecture,
	})
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestCreateFileValidation(t *testing.T) {
	repo := newRepo()
	op := access.Operator()

	_, err := repo.CreateFile(op, repository.NewFile{
		ProyectoID: uuid.New(),
		Nombre:     "plano.pdf",
		Tipo:       "render",
	})
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestResolveTokenRejectsMalformedWithoutBackend(t *testing.T) {
	repo := newRepo()

	// Empty and oversized tokens answer NotFound before any query; only a
	// plausibly shaped token reaches the backend.
	_, err := repo.ResolveToken("")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.ResolveToken(strings.Repeat("a", 2*token.Length+1))
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.ResolveToken(strings.Repeat("a", token.Length))
	assert.ErrorIs(t, err, repository.ErrBackendUnavailable)
}

func TestBackendUnavailableOnReads(t *testing.T) {
	repo := newRepo()
	op := access.Operator()

	_, err := repo.ListClients(op)
	assert.ErrorIs(t, err, repository.ErrBackendUnavailable)

	_, err = repo.ListPublicProjects()
	assert.ErrorIs(t, err, repository.ErrBackendUnavailable)

	_, err = repo.ListDesigns(access.Anonymous())
	assert.ErrorIs(t, err, repository.ErrBackendUnavailable)

	_, err = repo.GetProfile(access.Anonymous())
	assert.ErrorIs(t, err, repository.ErrBackendUnavailable)
}
