package services

import (
	"fmt"
	"math"
	"mime"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"arqzoy-backend/internal/access"
	"arqzoy-backend/internal/models"
	"arqzoy-backend/internal/repository"
)

// ObjectStore is the slice of the storage client the gateway needs.
type ObjectStore interface {
	Upload(key string, data []byte, contentType string) (string, error)
}

// Catalog is the slice of the repository the gateway needs.
type Catalog interface {
	GetProject(actor access.Actor, id uuid.UUID) (*models.Project, error)
	CreateFile(actor access.Actor, nf repository.NewFile) (*models.File, error)
	GetDesign(actor access.Actor, id uuid.UUID) (*models.PortfolioDesign, error)
	SetDesignImage(actor access.Actor, id uuid.UUID, url string) (*models.PortfolioDesign, error)
}

// FileGateway orchestrates uploads: storage key derivation, blob transfer,
// public URL issuance, and metadata persistence. A failure at the storage
// step produces no metadata row; a row failure after a successful transfer
// leaves an orphaned blob, which is accepted rather than compensated.
type FileGateway struct {
	catalog Catalog
	store   ObjectStore
}

func NewFileGateway(catalog Catalog, store ObjectStore) *FileGateway {
	return &FileGateway{
		catalog: catalog,
		store:   store,
	}
}

type UploadItem struct {
	Filename string
	Data     []byte
}

// UploadResult reports every batch member's outcome: persisted files and
// per-file errors. Members succeed or fail independently.
type UploadResult struct {
	Files  []models.File
	Errors []models.UploadErrorInfo
}

// UploadProjectFiles stores a batch of files under a project. Members fan
// out concurrently and are joined before reporting; any member failure
// yields ErrPartialBatch alongside the successes. Nothing is retried.
func (g *FileGateway) UploadProjectFiles(actor access.Actor, projectID uuid.UUID, category string, items []UploadItem) (*UploadResult, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindFile}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("upload files: %w", repository.ErrPermissionDenied)
	}
	if !models.ValidFileCategory(category) {
		return nil, fmt.Errorf("upload files: invalid tipo %q: %w", category, repository.ErrValidation)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("upload files: no files provided: %w", repository.ErrValidation)
	}

	project, err := g.catalog.GetProject(actor, projectID)
	if err != nil {
		return nil, fmt.Errorf("upload files: %w", err)
	}

	// Nanosecond base plus batch index keeps keys unique within the
	// project namespace even across concurrent members.
	base := time.Now().UnixNano()

	result := &UploadResult{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it UploadItem) {
			defer wg.Done()

			ext := extension(it.Filename)
			key := fmt.Sprintf("%s/%s/%d-%d%s", project.ID, category, base, idx, ext)

			url, err := g.store.Upload(key, it.Data, contentTypeFor(ext))
			if err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, models.UploadErrorInfo{
					Filename: it.Filename,
					Error:    fmt.Sprintf("failed to upload to storage: %v", err),
					Stage:    "storage",
				})
				mu.Unlock()
				return
			}

			file, err := g.catalog.CreateFile(actor, repository.NewFile{
				ProyectoID:  project.ID,
				Nombre:      it.Filename,
				Tipo:        category,
				Formato:     strings.TrimPrefix(ext, "."),
				TamanioMB:   megabytes(len(it.Data)),
				StoragePath: key,
				URLArchivo:  url,
			})
			if err != nil {
				// The blob is already stored; the orphan is accepted.
				mu.Lock()
				result.Errors = append(result.Errors, models.UploadErrorInfo{
					Filename: it.Filename,
					Error:    fmt.Sprintf("uploaded but failed to save metadata: %v", err),
					Stage:    "database",
				})
				mu.Unlock()
				return
			}

			mu.Lock()
			result.Files = append(result.Files, *file)
			mu.Unlock()
		}(i, item)
	}

	wg.Wait()

	if len(result.Errors) > 0 {
		return result, fmt.Errorf("upload files: %d of %d failed: %w",
			len(result.Errors), len(items), repository.ErrPartialBatch)
	}
	return result, nil
}

// UploadDesignImage stores a portfolio design's principal image and points
// the design at its public URL. Design images live outside any project
// namespace under a designs/ prefix.
func (g *FileGateway) UploadDesignImage(actor access.Actor, designID uuid.UUID, item UploadItem) (*models.PortfolioDesign, error) {
	if !access.Decide(actor, access.Record{Kind: access.KindPortfolioDesign}, access.OpWrite).Allowed() {
		return nil, fmt.Errorf("upload design image: %w", repository.ErrPermissionDenied)
	}

	design, err := g.catalog.GetDesign(actor, designID)
	if err != nil {
		return nil, fmt.Errorf("upload design image: %w", err)
	}

	ext := extension(item.Filename)
	key := fmt.Sprintf("designs/%s/%d%s", design.ID, time.Now().UnixNano(), ext)

	url, err := g.store.Upload(key, item.Data, contentTypeFor(ext))
	if err != nil {
		return nil, fmt.Errorf("upload design image: %v: %w", err, repository.ErrBackendUnavailable)
	}

	updated, err := g.catalog.SetDesignImage(actor, design.ID, url)
	if err != nil {
		return nil, fmt.Errorf("upload design image: %w", err)
	}
	return updated, nil
}

func extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func contentTypeFor(ext string) string {
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func megabytes(size int) float64 {
	return math.Round(float64(size)/(1024*1024)*100) / 100
}
