package store

import "time"

type Categoria struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

type Empresa struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion *string   `json:"descripcion"`
	Email       *string   `json:"email"`
	Telefono    *string   `json:"telefono"`
	SitioWeb    *string   `json:"sitio_web"`
	Direccion   *string   `json:"direccion"`
	Latitud     *float64  `json:"latitud"`
	Longitud    *float64  `json:"longitud"`
	ImgURL      *string   `json:"img_url"`
	Tipo        *string   `json:"tipo"`
	CategoriaID *string   `json:"categoria_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type Atractivo struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion *string   `json:"descripcion"`
	EmpresaID   *string   `json:"empresa_id"`
	CategoriaID *string   `json:"categoria_id"`
	Latitud     *float64  `json:"latitud"`
	Longitud    *float64  `json:"longitud"`
	Direccion   *string   `json:"direccion"`
	ImgURL      *string   `json:"img_url"`
	CreadoEn    time.Time `json:"creado_en"`

	// Resolved names, populated only by queries that join.
	EmpresaNombre   *string `json:"empresa_nombre,omitempty"`
	CategoriaNombre *string `json:"categoria_nombre,omitempty"`
	Orden           *int    `json:"orden,omitempty"`
}

type Ruta struct {
	ID               string    `json:"id"` // UUID
	Nombre           string    `json:"nombre"`
	Descripcion      *string   `json:"descripcion"`
	CreadorEmpresaID *string   `json:"creador_empresa_id"`
	ImgURL           *string   `json:"img_url"`
	CreadaEn         time.Time `json:"creada_en"`
}

// RutaAtractivo posiciona un atractivo dentro de una ruta.
type RutaAtractivo struct {
	ID    string `json:"id"`
	Orden int    `json:"orden"`
}

type Resena struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	AtractivoID     string    `json:"atractivo_id"`
	Comentario      string    `json:"comentario"`
	Puntaje         int       `json:"puntaje"`
	Fecha           time.Time `json:"fecha"`
	AtractivoNombre *string   `json:"atractivo_nombre,omitempty"`
}

type Favorito struct {
	UserID          string    `json:"user_id"`
	AtractivoID     string    `json:"atractivo_id"`
	Fecha           time.Time `json:"fecha"`
	AtractivoNombre *string   `json:"atractivo_nombre,omitempty"`
}

type UsuarioLocal struct {
	UserID   string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Rol      string  `json:"rol"`
	Metadata *string `json:"metadata"`
}

type Ubicacion struct {
	Direccion string   `json:"direccion"`
	Latitud   *float64 `json:"latitud"`
	Longitud  *float64 `json:"longitud"`
	Fuente    string   `json:"fuente"`
}

type Estadisticas struct {
	Usuarios   int `json:"usuarios"`
	Empresas   int `json:"empresas"`
	Atractivos int `json:"atractivos"`
	Resenas    int `json:"resenas"`
	Rutas      int `json:"rutas"`
}
