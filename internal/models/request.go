package models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateClientRequest carries the intake form fields. Dates and the paid
// amount arrive as strings because the form submits them as text: blank
// dates persist as NULL and a blank amount persists as 0.
type CreateClientRequest struct {
	Nombre       string `json:"nombre" binding:"required"`
	Apellido     string `json:"apellido"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	TipoProyecto string `json:"tipo_proyecto"`
	Referido     string `json:"referido"`
	MontoAbonado string `json:"monto_abonado"`
	FechaInicio  string `json:"fecha_inicio"`
	FechaEntrega string `json:"fecha_entrega"`
}

type UpdateClientRequest struct {
	Nombre       *string `json:"nombre,omitempty"`
	Apellido     *string `json:"apellido,omitempty"`
	Email        *string `json:"email,omitempty"`
	Telefono     *string `json:"telefono,omitempty"`
	TipoProyecto *string `json:"tipo_proyecto,omitempty"`
	Referido     *string `json:"referido,omitempty"`
	MontoAbonado *string `json:"monto_abonado,omitempty"`
	FechaInicio  *string `json:"fecha_inicio,omitempty"`
	FechaEntrega *string `json:"fecha_entrega,omitempty"`
}

type CreateProjectRequest struct {
	ClienteID           string `json:"cliente_id" binding:"required"`
	Titulo              string `json:"titulo" binding:"required"`
	Descripcion         string `json:"descripcion"`
	MostrarEnPortafolio bool   `json:"mostrar_en_portafolio"`
}

type UpdateProjectRequest struct {
	Titulo      *string `json:"titulo,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
}

type UpdateProjectStatusRequest struct {
	Estado string `json:"estado" binding:"required"`
}

type UpdateProjectVisibilityRequest struct {
	MostrarEnPortafolio *bool `json:"mostrar_en_portafolio" binding:"required"`
}

type CreateDesignRequest struct {
	Titulo         string `json:"titulo" binding:"required"`
	Descripcion    string `json:"descripcion"`
	Categoria      string `json:"categoria" binding:"required"`
	Anio           int    `json:"anio"`
	TipoCliente    string `json:"tipo_cliente"`
	MostrarPublico bool   `json:"mostrar_publico"`
	OrdenDisplay   int    `json:"orden_display"`
}

type UpdateDesignRequest struct {
	Titulo         *string `json:"titulo,omitempty"`
	Descripcion    *string `json:"descripcion,omitempty"`
	Categoria      *string `json:"categoria,omitempty"`
	Anio           *int    `json:"anio,omitempty"`
	TipoCliente    *string `json:"tipo_cliente,omitempty"`
	MostrarPublico *bool   `json:"mostrar_publico,omitempty"`
	OrdenDisplay   *int    `json:"orden_display,omitempty"`
}

type UpsertProfileRequest struct {
	Bio                  string `json:"bio"`
	AnosExperiencia      int    `json:"anos_experiencia"`
	ProyectosCompletados int    `json:"proyectos_completados"`
	FotoPerfil           string `json:"foto_perfil"`
}

type ContactRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Telefono string `json:"telefono"`
	Mensaje  string `json:"mensaje" binding:"required"`
}
