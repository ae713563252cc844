package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Project workflow states, stored in proyectos.estado.
const (
	ProjectStatusInProgress = "en_progreso"
	ProjectStatusReview     = "revision"
	ProjectStatusComplete   = "completo"
	ProjectStatusPaused     = "pausado"
)

// File categories, stored in archivos.tipo.
const (
	FileCategoryPhoto    = "foto"
	FileCategoryVideo    = "video"
	FileCategoryPlan2D   = "plano_2d"
	FileCategoryDocument = "documento"
)

// Portfolio design categories, stored in portafolio_designs.categoria.
const (
	DesignCategoryArchitecture = "arquitectura"
	DesignCategoryInteriors    = "interiores"
	DesignCategoryFurniture    = "mobiliario"
)

func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusInProgress, ProjectStatusReview, ProjectStatusComplete, ProjectStatusPaused:
		return true
	}
	return false
}

func ValidFileCategory(s string) bool {
	switch s {
	case FileCategoryPhoto, FileCategoryVideo, FileCategoryPlan2D, FileCategoryDocument:
		return true
	}
	return false
}

func ValidDesignCategory(s string) bool {
	switch s {
	case DesignCategoryArchitecture, DesignCategoryInteriors, DesignCategoryFurniture:
		return true
	}
	return false
}

// MediaCategory reports whether files of this category are viewable media
// (gallery items) as opposed to downloadable deliverables.
func MediaCategory(category string) bool {
	return category == FileCategoryPhoto || category == FileCategoryVideo
}

type Client struct {
	ID           uuid.UUID
	Nombre       string
	Apellido     string
	Email        string
	Telefono     string
	TipoProyecto string
	Referido     string
	MontoAbonado float64
	FechaInicio  sql.NullTime
	FechaEntrega sql.NullTime
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Project struct {
	ID                  uuid.UUID
	ClienteID           uuid.UUID
	Titulo              string
	Descripcion         string
	URLPrivada          string
	MostrarEnPortafolio bool
	Estado              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ProjectWithClient is a project row joined with the owning client's
// display fields, used by the admin and public listings.
type ProjectWithClient struct {
	Project
	ClienteNombre       string
	ClienteApellido     string
	ClienteTipoProyecto string
}

type File struct {
	ID          uuid.UUID
	ProyectoID  uuid.UUID
	Nombre      string
	Tipo        string
	Formato     string
	TamanioMB   float64
	StoragePath string
	URLArchivo  string
	CreatedAt   time.Time
}

type PortfolioDesign struct {
	ID              uuid.UUID
	Titulo          string
	Descripcion     string
	Categoria       string
	Anio            int
	TipoCliente     string
	MostrarPublico  bool
	OrdenDisplay    int
	ImagenPrincipal sql.NullString
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PersonalProfile is a singleton row (id is always 1).
type PersonalProfile struct {
	ID                   int
	Bio                  string
	AnosExperiencia      int
	ProyectosCompletados int
	FotoPerfil           sql.NullString
	UpdatedAt            time.Time
}
