package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"arqzoy-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

// --- clientes ---

const clientColumns = `id, nombre, apellido, email, telefono, tipo_proyecto, referido, monto_abonado, fecha_inicio, fecha_entrega, created_at, updated_at`

func scanClient(row interface{ Scan(...any) error }) (*models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ID, &c.Nombre, &c.Apellido, &c.Email, &c.Telefono, &c.TipoProyecto,
		&c.Referido, &c.MontoAbonado, &c.FechaInicio, &c.FechaEntrega,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (d *DatabaseClient) CreateClient(c *models.Client) (*models.Client, error) {
	row := d.db.QueryRow(`
		INSERT INTO clientes (id, nombre, apellido, email, telefono, tipo_proyecto, referido, monto_abonado, fecha_inicio, fecha_entrega)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+clientColumns,
		c.ID, c.Nombre, c.Apellido, c.Email, c.Telefono, c.TipoProyecto,
		c.Referido, c.MontoAbonado, c.FechaInicio, c.FechaEntrega,
	)
	created, err := scanClient(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetClient(id uuid.UUID) (*models.Client, error) {
	row := d.db.QueryRow(`SELECT `+clientColumns+` FROM clientes WHERE id = $1`, id)
	c, err := scanClient(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

func (d *DatabaseClient) ListClients() ([]models.Client, error) {
	rows, err := d.db.Query(`SELECT ` + clientColumns + ` FROM clientes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

func (d *DatabaseClient) UpdateClient(c *models.Client) (*models.Client, error) {
	row := d.db.QueryRow(`
		UPDATE clientes
		SET nombre = $2, apellido = $3, email = $4, telefono = $5, tipo_proyecto = $6,
		    referido = $7, monto_abonado = $8, fecha_inicio = $9, fecha_entrega = $10,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+clientColumns,
		c.ID, c.Nombre, c.Apellido, c.Email, c.Telefono, c.TipoProyecto,
		c.Referido, c.MontoAbonado, c.FechaInicio, c.FechaEntrega,
	)
	updated, err := scanClient(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return updated, nil
}

// --- proyectos ---

const projectColumns = `id, cliente_id, titulo, descripcion, url_privada, mostrar_en_portafolio, estado, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.ClienteID, &p.Titulo, &p.Descripcion, &p.URLPrivada,
		&p.MostrarEnPortafolio, &p.Estado, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *DatabaseClient) CreateProject(p *models.Project) (*models.Project, error) {
	row := d.db.QueryRow(`
		INSERT INTO proyectos (id, cliente_id, titulo, descripcion, url_privada, mostrar_en_portafolio, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+projectColumns,
		p.ID, p.ClienteID, p.Titulo, p.Descripcion, p.URLPrivada, p.MostrarEnPortafolio, p.Estado,
	)
	created, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetProject(id uuid.UUID) (*models.Project, error) {
	row := d.db.QueryRow(`SELECT `+projectColumns+` FROM proyectos WHERE id = $1`, id)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// GetProjectByToken is the private-link lookup. It deliberately carries no
// caller identity: possession of the token is the authentication.
func (d *DatabaseClient) GetProjectByToken(token string) (*models.Project, error) {
	row := d.db.QueryRow(`SELECT `+projectColumns+` FROM proyectos WHERE url_privada = $1`, token)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get project by token: %w", err)
	}
	return p, nil
}

func (d *DatabaseClient) listProjectsWithClients(onlyPublic bool) ([]models.ProjectWithClient, error) {
	query := `
		SELECT p.id, p.cliente_id, p.titulo, p.descripcion, p.url_privada,
		       p.mostrar_en_portafolio, p.estado, p.created_at, p.updated_at,
		       c.nombre, c.apellido, c.tipo_proyecto
		FROM proyectos p
		JOIN clientes c ON c.id = p.cliente_id`
	if onlyPublic {
		query += `
		WHERE p.mostrar_en_portafolio = TRUE`
	}
	query += `
		ORDER BY p.created_at DESC`

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.ProjectWithClient
	for rows.Next() {
		var p models.ProjectWithClient
		err := rows.Scan(
			&p.ID, &p.ClienteID, &p.Titulo, &p.Descripcion, &p.URLPrivada,
			&p.MostrarEnPortafolio, &p.Estado, &p.CreatedAt, &p.UpdatedAt,
			&p.ClienteNombre, &p.ClienteApellido, &p.ClienteTipoProyecto,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (d *DatabaseClient) ListProjects() ([]models.ProjectWithClient, error) {
	return d.listProjectsWithClients(false)
}

func (d *DatabaseClient) ListPublicProjects() ([]models.ProjectWithClient, error) {
	return d.listProjectsWithClients(true)
}

func (d *DatabaseClient) UpdateProject(p *models.Project) (*models.Project, error) {
	row := d.db.QueryRow(`
		UPDATE proyectos
		SET titulo = $2, descripcion = $3, mostrar_en_portafolio = $4, estado = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+projectColumns,
		p.ID, p.Titulo, p.Descripcion, p.MostrarEnPortafolio, p.Estado,
	)
	updated, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return updated, nil
}

func (d *DatabaseClient) DeleteProject(id uuid.UUID) error {
	_, err := d.db.Exec(`DELETE FROM proyectos WHERE id = $1`, id)
	return err
}

// --- archivos ---

const fileColumns = `id, proyecto_id, nombre, tipo, formato, tamanio_mb, storage_path, url_archivo, created_at`

func scanFile(row interface{ Scan(...any) error }) (*models.File, error) {
	var f models.File
	err := row.Scan(
		&f.ID, &f.ProyectoID, &f.Nombre, &f.Tipo, &f.Formato,
		&f.TamanioMB, &f.StoragePath, &f.URLArchivo, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (d *DatabaseClient) CreateFile(f *models.File) (*models.File, error) {
	row := d.db.QueryRow(`
		INSERT INTO archivos (id, proyecto_id, nombre, tipo, formato, tamanio_mb, storage_path, url_archivo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+fileColumns,
		f.ID, f.ProyectoID, f.Nombre, f.Tipo, f.Formato, f.TamanioMB, f.StoragePath, f.URLArchivo,
	)
	created, err := scanFile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) ListProjectFiles(projectID uuid.UUID) ([]models.File, error) {
	rows, err := d.db.Query(`
		SELECT `+fileColumns+`
		FROM archivos
		WHERE proyecto_id = $1
		ORDER BY created_at DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project files: %w", err)
	}
	defer rows.Close()

	var files []models.File
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, *f)
	}
	return files, rows.Err()
}

// --- portafolio_designs ---

const designColumns = `id, titulo, descripcion, categoria, anio, tipo_cliente, mostrar_publico, orden_display, imagen_principal, created_at, updated_at`

func scanDesign(row interface{ Scan(...any) error }) (*models.PortfolioDesign, error) {
	var pd models.PortfolioDesign
	err := row.Scan(
		&pd.ID, &pd.Titulo, &pd.Descripcion, &pd.Categoria, &pd.Anio,
		&pd.TipoCliente, &pd.MostrarPublico, &pd.OrdenDisplay,
		&pd.ImagenPrincipal, &pd.CreatedAt, &pd.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pd, nil
}

func (d *DatabaseClient) CreateDesign(pd *models.PortfolioDesign) (*models.PortfolioDesign, error) {
	row := d.db.QueryRow(`
		INSERT INTO portafolio_designs (id, titulo, descripcion, categoria, anio, tipo_cliente, mostrar_publico, orden_display)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+designColumns,
		pd.ID, pd.Titulo, pd.Descripcion, pd.Categoria, pd.Anio, pd.TipoCliente,
		pd.MostrarPublico, pd.OrdenDisplay,
	)
	created, err := scanDesign(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create design: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetDesign(id uuid.UUID) (*models.PortfolioDesign, error) {
	row := d.db.QueryRow(`SELECT `+designColumns+` FROM portafolio_designs WHERE id = $1`, id)
	pd, err := scanDesign(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get design: %w", err)
	}
	return pd, nil
}

func (d *DatabaseClient) listDesigns(onlyPublic bool) ([]models.PortfolioDesign, error) {
	query := `SELECT ` + designColumns + ` FROM portafolio_designs`
	if onlyPublic {
		query += ` WHERE mostrar_publico = TRUE`
	}
	query += ` ORDER BY orden_display DESC`

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list designs: %w", err)
	}
	defer rows.Close()

	var designs []models.PortfolioDesign
	for rows.Next() {
		pd, err := scanDesign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan design: %w", err)
		}
		designs = append(designs, *pd)
	}
	return designs, rows.Err()
}

func (d *DatabaseClient) ListDesigns() ([]models.PortfolioDesign, error) {
	return d.listDesigns(false)
}

func (d *DatabaseClient) ListPublicDesigns() ([]models.PortfolioDesign, error) {
	return d.listDesigns(true)
}

func (d *DatabaseClient) UpdateDesign(pd *models.PortfolioDesign) (*models.PortfolioDesign, error) {
	row := d.db.QueryRow(`
		UPDATE portafolio_designs
		SET titulo = $2, descripcion = $3, categoria = $4, anio = $5, tipo_cliente = $6,
		    mostrar_publico = $7, orden_display = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING `+designColumns,
		pd.ID, pd.Titulo, pd.Descripcion, pd.Categoria, pd.Anio, pd.TipoCliente,
		pd.MostrarPublico, pd.OrdenDisplay,
	)
	updated, err := scanDesign(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update design: %w", err)
	}
	return updated, nil
}

func (d *DatabaseClient) SetDesignImage(id uuid.UUID, url string) (*models.PortfolioDesign, error) {
	row := d.db.QueryRow(`
		UPDATE portafolio_designs
		SET imagen_principal = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+designColumns,
		id, url,
	)
	updated, err := scanDesign(row)
	if err != nil {
		return nil, fmt.Errorf("failed to set design image: %w", err)
	}
	return updated, nil
}

func (d *DatabaseClient) DeleteDesign(id uuid.UUID) error {
	_, err := d.db.Exec(`DELETE FROM portafolio_designs WHERE id = $1`, id)
	return err
}

// --- perfil_personal ---

const profileColumns = `id, bio, anos_experiencia, proyectos_completados, foto_perfil, updated_at`

func scanProfile(row interface{ Scan(...any) error }) (*models.PersonalProfile, error) {
	var p models.PersonalProfile
	err := row.Scan(
		&p.ID, &p.Bio, &p.AnosExperiencia, &p.ProyectosCompletados,
		&p.FotoPerfil, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *DatabaseClient) GetProfile() (*models.PersonalProfile, error) {
	row := d.db.QueryRow(`SELECT ` + profileColumns + ` FROM perfil_personal WHERE id = 1`)
	p, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// UpsertProfile writes the singleton row. The table's check constraint pins
// id to 1, so there is never more than one profile.
func (d *DatabaseClient) UpsertProfile(p *models.PersonalProfile) (*models.PersonalProfile, error) {
	row := d.db.QueryRow(`
		INSERT INTO perfil_personal (id, bio, anos_experiencia, proyectos_completados, foto_perfil)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET bio = EXCLUDED.bio,
		    anos_experiencia = EXCLUDED.anos_experiencia,
		    proyectos_completados = EXCLUDED.proyectos_completados,
		    foto_perfil = EXCLUDED.foto_perfil,
		    updated_at = NOW()
		RETURNING `+profileColumns,
		p.Bio, p.AnosExperiencia, p.ProyectosCompletados, p.FotoPerfil,
	)
	upserted, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return upserted, nil
}
