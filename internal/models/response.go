package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Email       string `json:"email"`
}

type ClientResponse struct {
	ID           string    `json:"id"`
	Nombre       string    `json:"nombre"`
	Apellido     string    `json:"apellido"`
	Email        string    `json:"email"`
	Telefono     string    `json:"telefono"`
	TipoProyecto string    `json:"tipo_proyecto"`
	Referido     string    `json:"referido"`
	MontoAbonado float64   `json:"monto_abonado"`
	FechaInicio  string    `json:"fecha_inicio,omitempty"`
	FechaEntrega string    `json:"fecha_entrega,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ProjectResponse is the operator/token-holder view of a project. It is the
// only response shape that carries the private URL token.
type ProjectResponse struct {
	ID                  string    `json:"id"`
	ClienteID           string    `json:"cliente_id"`
	Titulo              string    `json:"titulo"`
	Descripcion         string    `json:"descripcion"`
	URLPrivada          string    `json:"url_privada"`
	MostrarEnPortafolio bool      `json:"mostrar_en_portafolio"`
	Estado              string    `json:"estado"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	ClienteNombre       string    `json:"cliente_nombre,omitempty"`
	ClienteApellido     string    `json:"cliente_apellido,omitempty"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// PublicProjectResponse is the anonymous view of a visible project: the
// private URL token is deliberately absent.
type PublicProjectResponse struct {
	ID                  string    `json:"id"`
	Titulo              string    `json:"titulo"`
	Descripcion         string    `json:"descripcion"`
	Estado              string    `json:"estado"`
	CreatedAt           time.Time `json:"created_at"`
	ClienteNombre       string    `json:"cliente_nombre,omitempty"`
	ClienteApellido     string    `json:"cliente_apellido,omitempty"`
	ClienteTipoProyecto string    `json:"cliente_tipo_proyecto,omitempty"`
}

type PublicProjectListResponse struct {
	Projects []PublicProjectResponse `json:"projects"`
}

type FileResponse struct {
	ID          string    `json:"id"`
	ProyectoID  string    `json:"proyecto_id"`
	Nombre      string    `json:"nombre"`
	Tipo        string    `json:"tipo"`
	Formato     string    `json:"formato"`
	TamanioMB   float64   `json:"tamanio_mb"`
	URLArchivo  string    `json:"url_archivo"`
	Descargable bool      `json:"descargable"`
	CreatedAt   time.Time `json:"created_at"`
}

type FileListResponse struct {
	Files []FileResponse `json:"files"`
}

// PrivateProjectResponse is the token-holder view served at /cliente/:token.
type PrivateProjectResponse struct {
	Project ProjectResponse `json:"project"`
	Cliente ClientResponse  `json:"cliente"`
	Files   []FileResponse  `json:"files"`
}

type DesignResponse struct {
	ID              string    `json:"id"`
	Titulo          string    `json:"titulo"`
	Descripcion     string    `json:"descripcion"`
	Categoria       string    `json:"categoria"`
	Anio            int       `json:"anio,omitempty"`
	TipoCliente     string    `json:"tipo_cliente,omitempty"`
	MostrarPublico  bool      `json:"mostrar_publico"`
	OrdenDisplay    int       `json:"orden_display"`
	ImagenPrincipal string    `json:"imagen_principal,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DesignListResponse struct {
	Designs []DesignResponse `json:"designs"`
}

type ProfileResponse struct {
	Bio                  string    `json:"bio"`
	AnosExperiencia      int       `json:"anos_experiencia"`
	ProyectosCompletados int       `json:"proyectos_completados"`
	FotoPerfil           string    `json:"foto_perfil,omitempty"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type UploadErrorInfo struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
	Stage    string `json:"stage"`
}

type UploadResponse struct {
	ProyectoID string            `json:"proyecto_id"`
	Files      []FileResponse    `json:"files"`
	Status     string            `json:"status"`
	Errors     []UploadErrorInfo `json:"errors,omitempty"`
}

const dateLayout = "2006-01-02"

func NewClientResponse(c *Client) ClientResponse {
	resp := ClientResponse{
		ID:           c.ID.String(),
		Nombre:       c.Nombre,
		Apellido:     c.Apellido,
		Email:        c.Email,
		Telefono:     c.Telefono,
		TipoProyecto: c.TipoProyecto,
		Referido:     c.Referido,
		MontoAbonado: c.MontoAbonado,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.FechaInicio.Valid {
		resp.FechaInicio = c.FechaInicio.Time.Format(dateLayout)
	}
	if c.FechaEntrega.Valid {
		resp.FechaEntrega = c.FechaEntrega.Time.Format(dateLayout)
	}
	return resp
}

func NewProjectResponse(p *Project) ProjectResponse {
	return ProjectResponse{
		ID:                  p.ID.String(),
		ClienteID:           p.ClienteID.String(),
		Titulo:              p.Titulo,
		Descripcion:         p.Descripcion,
		URLPrivada:          p.URLPrivada,
		MostrarEnPortafolio: p.MostrarEnPortafolio,
		Estado:              p.Estado,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func NewPublicProjectResponse(p *ProjectWithClient) PublicProjectResponse {
	return PublicProjectResponse{
		ID:                  p.ID.String(),
		Titulo:              p.Titulo,
		Descripcion:         p.Descripcion,
		Estado:              p.Estado,
		CreatedAt:           p.CreatedAt,
		ClienteNombre:       p.ClienteNombre,
		ClienteApellido:     p.ClienteApellido,
		ClienteTipoProyecto: p.ClienteTipoProyecto,
	}
}

func NewFileResponse(f *File, downloadable bool) FileResponse {
	return FileResponse{
		ID:          f.ID.String(),
		ProyectoID:  f.ProyectoID.String(),
		Nombre:      f.Nombre,
		Tipo:        f.Tipo,
		Formato:     f.Formato,
		TamanioMB:   f.TamanioMB,
		URLArchivo:  f.URLArchivo,
		Descargable: downloadable,
		CreatedAt:   f.CreatedAt,
	}
}

func NewDesignResponse(d *PortfolioDesign) DesignResponse {
	resp := DesignResponse{
		ID:             d.ID.String(),
		Titulo:         d.Titulo,
		Descripcion:    d.Descripcion,
		Categoria:      d.Categoria,
		Anio:           d.Anio,
		TipoCliente:    d.TipoCliente,
		MostrarPublico: d.MostrarPublico,
		OrdenDisplay:   d.OrdenDisplay,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	if d.ImagenPrincipal.Valid {
		resp.ImagenPrincipal = d.ImagenPrincipal.String
	}
	return resp
}

func NewProfileResponse(p *PersonalProfile) ProfileResponse {
	resp := ProfileResponse{
		Bio:                  p.Bio,
		AnosExperiencia:      p.AnosExperiencia,
		ProyectosCompletados: p.ProyectosCompletados,
		UpdatedAt:            p.UpdatedAt,
	}
	if p.FotoPerfil.Valid {
		resp.FotoPerfil = p.FotoPerfil.String
	}
	return resp
}
