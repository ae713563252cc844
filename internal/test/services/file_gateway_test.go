package services_test

import (
	"database/sql"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arqzoy-backend/internal/access"
	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/repository"
	"arqzoy-backend/internal/services"
)

type fakeStore struct {
	mu       sync.Mutex
	uploaded map[string][]byte

	// failSubstring makes Upload fail for keys containing it, simulating
	// a per-object storage outage.
	failSubstring string
}

func newFakeStore() *fakeStore {
	return &fakeStore{uploaded: make(map[string][]byte)}
}

func (s *fakeStore) Upload(key string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSubstring != "" && strings.Contains(key, s.failSubstring) {
		return "", errors.New("storage unreachable")
	}
	s.uploaded[key] = data
	return "https://storage.example.com/" + key, nil
}

type fakeCatalog struct {
	mu      sync.Mutex
	project *models.Project
	design  *models.PortfolioDesign
	files   []models.File

	// failAfter fails CreateFile once this many rows exist, simulating a
	// database failure mid-batch.
	failAfter int
}

func (c *fakeCatalog) GetProject(actor access.Actor, id uuid.UUID) (*models.Project, error) {
	if c.project == nil || c.project.ID != id {
		return nil, repository.ErrNotFound
	}
	return c.project, nil
}

func (c *fakeCatalog) CreateFile(actor access.Actor, nf repository.NewFile) (*models.File, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failAfter > 0 && len(c.files) >= c.failAfter {
		return nil, repository.ErrBackendUnavailable
	}
	file := models.File{
		ID:          uuid.New(),
		ProyectoID:  nf.ProyectoID,
		Nombre:      nf.Nombre,
		Tipo:        nf.Tipo,
		Formato:     nf.Formato,
		TamanioMB:   nf.TamanioMB,
		StoragePath: nf.StoragePath,
		URLArchivo:  nf.URLArchivo,
	}
	c.files = append(c.files, file)
	return &file, nil
}

func (c *fakeCatalog) GetDesign(actor access.Actor, id uuid.UUID) (*models.PortfolioDesign, error) {
	if c.design == nil || c.design.ID != id {
		return nil, repository.ErrNotFound
	}
	return c.design, nil
}

func (c *fakeCatalog) SetDesignImage(actor access.Actor, id uuid.UUID, url string) (*models.PortfolioDesign, error) {
	if c.design == nil || c.design.ID != id {
		return nil, repository.ErrNotFound
	}
	c.design.ImagenPrincipal = sql.NullString{String: url, Valid: true}
	return c.design, nil
}

func testProject() *models.Project {
	return &models.Project{
		ID:         uuid.New(),
		ClienteID:  uuid.New(),
		Titulo:     "Casa Mendoza",
		URLPrivada: "abcdefghijklmnopqrstuvwxyz",
		Estado:     models.ProjectStatusInProgress,
	}
}

func TestUploadBatchAllSucceed(t *testing.T) {
	catalog := &fakeCatalog{project: testProject()}
	store := newFakeStore()
	gateway := services.NewFileGateway(catalog, store)

	items := []services.UploadItem{
		{Filename: "fachada.jpg", Data: []byte("aaa")},
		{Filename: "patio.jpg", Data: []byte("bbb")},
		{Filename: "recorrido.mp4", Data: []byte("ccc")},
	}

	result, err := gateway.UploadProjectFiles(access.Operator(), catalog.project.ID, models.FileCategoryPhoto, items)
	require.NoError(t, err)
	assert.Len(t, result.Files, 3)
	assert.Empty(t, result.Errors)
	assert.Len(t, store.uploaded, 3)
	assert.Len(t, catalog.files, 3)

	for _, f := range result.Files {
		assert.Equal(t, models.FileCategoryPhoto, f.Tipo)
		assert.True(t, strings.HasPrefix(f.StoragePath, catalog.project.ID.String()+"/"),
			"key %s not namespaced under project", f.StoragePath)
		assert.NotEmpty(t, f.URLArchivo)
	}
}

func TestUploadBatchPartialStorageFailure(t *testing.T) {
	catalog := &fakeCatalog{project: testProject()}
	store := newFakeStore()
	// Keys embed the batch index, so failing "-1." fails exactly the
	// second member.
	store.failSubstring = "-1."
	gateway := services.NewFileGateway(catalog, store)

	items := []services.UploadItem{
		{Filename: "uno.jpg", Data: []byte("aaa")},
		{Filename: "dos.jpg", Data: []byte("bbb")},
		{Filename: "tres.jpg", Data: []byte("ccc")},
	}

	result, err := gateway.UploadProjectFiles(access.Operator(), catalog.project.ID, models.FileCategoryPhoto, items)
	require.ErrorIs(t, err, repository.ErrPartialBatch)
	require.NotNil(t, result)

	// The failed member leaves no metadata row; the rest persist.
	assert.Len(t, result.Files, 2)
	assert.Len(t, catalog.files, 2)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "dos.jpg", result.Errors[0].Filename)
	assert.Equal(t, "storage", result.Errors[0].Stage)
}

func TestUploadBatchDatabaseFailureReportsStage(t *testing.T) {
	catalog := &fakeCatalog{project: testProject(), failAfter: 1}
	store := newFakeStore()
	gateway := services.NewFileGateway(catalog, store)

	items := []services.UploadItem{
		{Filename: "uno.pdf", Data: []byte("aaa")},
		{Filename: "dos.pdf", Data: []byte("bbb")},
	}

	result, err := gateway.UploadProjectFiles(access.Operator(), catalog.project.ID, models.FileCategoryDocument, items)
	require.ErrorIs(t, err, repository.ErrPartialBatch)

	assert.Len(t, result.Files, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "database", result.Errors[0].Stage)
	// Both blobs reached storage: the failed row's object stays orphaned.
	assert.Len(t, store.uploaded, 2)
}

func TestUploadRejectsNonOperators(t *testing.T) {
	catalog := &fakeCatalog{project: testProject()}
	gateway := services.NewFileGateway(catalog, newFakeStore())

	items := []services.UploadItem{{Filename: "uno.jpg", Data: []byte("aaa")}}

	_, err := gateway.UploadProjectFiles(access.Anonymous(), catalog.project.ID, models.FileCategoryPhoto, items)
	assert.ErrorIs(t, err, repository.ErrPermissionDenied)

	holder := access.TokenHolder(catalog.project.URLPrivada)
	_, err = gateway.UploadProjectFiles(holder, catalog.project.ID, models.FileCategoryPhoto, items)
	assert.ErrorIs(t, err, repository.ErrPermissionDenied)
}

func TestUploadValidatesInput(t *testing.T) {
	catalog := &fakeCatalog{project: testProject()}
	gateway := services.NewFileGateway(catalog, newFakeStore())

	_, err := gateway.UploadProjectFiles(access.Operator(), catalog.project.ID, "render",
		[]services.UploadItem{{Filename: "a.jpg", Data: []byte("x")}})
	assert.ErrorIs(t, err, repository.ErrValidation)

	_, err = gateway.UploadProjectFiles(access.Operator(), catalog.project.ID, models.FileCategoryPhoto, nil)
	assert.ErrorIs(t, err, repository.ErrValidation)

	_, err = gateway.UploadProjectFiles(access.Operator(), uuid.New(), models.FileCategoryPhoto,
		[]services.UploadItem{{Filename: "a.jpg", Data: []byte("x")}})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUploadDesignImage(t *testing.T) {
	design := &models.PortfolioDesign{
		ID:        uuid.New(),
		Titulo:    "Loft Palermo",
		Categoria: models.DesignCategoryInteriors,
	}
	catalog := &fakeCatalog{design: design}
	store := newFakeStore()
	gateway := services.NewFileGateway(catalog, store)

	updated, err := gateway.UploadDesignImage(access.Operator(), design.ID,
		services.UploadItem{Filename: "render.png", Data: []byte("img")})
	require.NoError(t, err)

	require.True(t, updated.ImagenPrincipal.Valid)
	assert.Contains(t, updated.ImagenPrincipal.String, "designs/"+design.ID.String()+"/")
	assert.Len(t, store.uploaded, 1)
}
