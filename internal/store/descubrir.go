package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// BusquedaFiltro combina los criterios del buscador general.
type BusquedaFiltro struct {
	Tipo      string // tipo de empresa
	Categoria string // nombre de categoría de atractivo
	Entidad   string // "empresas", "atractivos", "rutas" o vacío para todas
	Ubicacion string
	Lat       *float64
	Lng       *float64
	RadioKm   *float64
}

type ResultadoBusqueda struct {
	Empresas   []Empresa   `json:"empresas,omitempty"`
	Atractivos []Atractivo `json:"atractivos,omitempty"`
	Rutas      []Ruta      `json:"rutas,omitempty"`
}

// gradosPorKm aproxima la conversión de kilómetros a grados de lat/long para
// el radio de búsqueda (comparación de distancia al cuadrado, sin haversine).
const gradosPorKm = 1.0 / 111.0

func (s *SQLiteStore) Buscar(f BusquedaFiltro) (*ResultadoBusqueda, error) {
	resultado := &ResultadoBusqueda{}

	if f.Entidad == "" || f.Entidad == "empresas" {
		query := "SELECT " + empresaCols + " FROM empresas WHERE 1=1"
		var args []any
		if f.Tipo != "" {
			query += " AND tipo = ?"
			args = append(args, f.Tipo)
		}
		if f.Ubicacion != "" {
			query += " AND direccion = ?"
			args = append(args, f.Ubicacion)
		}
		query, args = conRadio(query, args, "", f)

		rows, err := s.db.Query(query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query empresas en busqueda: %w", err)
		}
		for rows.Next() {
			e, err := scanEmpresa(rows)
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan empresa en busqueda: %w", err)
			}
			resultado.Empresas = append(resultado.Empresas, *e)
		}
		rows.Close()
	}

	if f.Entidad == "" || f.Entidad == "atractivos" {
		query := `
            SELECT a.id, a.nombre, a.descripcion, a.empresa_id, a.categoria_id,
                   a.latitud, a.longitud, a.direccion, a.img_url, a.creado_en,
                   c.nombre, e.nombre
            FROM atractivos a
            LEFT JOIN categorias c ON a.categoria_id = c.id
            LEFT JOIN empresas e ON a.empresa_id = e.id
            WHERE 1=1`
		var args []any
		if f.Categoria != "" {
			query += " AND c.nombre = ?"
			args = append(args, f.Categoria)
		}
		if f.Ubicacion != "" {
			query += " AND a.direccion = ?"
			args = append(args, f.Ubicacion)
		}
		query, args = conRadio(query, args, "a.", f)

		rows, err := s.db.Query(query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query atractivos en busqueda: %w", err)
		}
		for rows.Next() {
			var a Atractivo
			var descripcion, empresaID, categoriaID, direccion, imgURL sql.NullString
			var categoriaNombre, empresaNombre sql.NullString
			var latitud, longitud sql.NullFloat64
			if err := rows.Scan(&a.ID, &a.Nombre, &descripcion, &empresaID, &categoriaID,
				&latitud, &longitud, &direccion, &imgURL, &a.CreadoEn,
				&categoriaNombre, &empresaNombre); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan atractivo en busqueda: %w", err)
			}
			a.Descripcion = strPtr(descripcion)
			a.EmpresaID = strPtr(empresaID)
			a.CategoriaID = strPtr(categoriaID)
			a.Latitud = floatPtr(latitud)
			a.Longitud = floatPtr(longitud)
			a.Direccion = strPtr(direccion)
			a.ImgURL = strPtr(imgURL)
			a.CategoriaNombre = strPtr(categoriaNombre)
			a.EmpresaNombre = strPtr(empresaNombre)
			resultado.Atractivos = append(resultado.Atractivos, a)
		}
		rows.Close()
	}

	if f.Entidad == "" || f.Entidad == "rutas" {
		rutas, err := s.ListRutas("")
		if err != nil {
			return nil, err
		}
		resultado.Rutas = rutas
	}

	return resultado, nil
}

func conRadio(query string, args []any, prefix string, f BusquedaFiltro) (string, []any) {
	if f.Lat == nil || f.Lng == nil || f.RadioKm == nil {
		return query, args
	}
	lat, lng := *f.Lat, *f.Lng
	radioGrados := *f.RadioKm * gradosPorKm
	query += fmt.Sprintf(
		" AND (((%slatitud - ?) * (%slatitud - ?)) + ((%slongitud - ?) * (%slongitud - ?))) <= ?",
		prefix, prefix, prefix, prefix)
	args = append(args, lat, lat, lng, lng, radioGrados*radioGrados)
	return query, args
}

type Filtros struct {
	Categorias      []string `json:"categorias"`
	Ubicaciones     []string `json:"ubicaciones"`
	Empresas        []string `json:"empresas"` // tipos de empresa
	NombresEmpresas []string `json:"nombresEmpresas"`
}

// GetFiltros junta los valores distintos que el frontend ofrece como filtros.
func (s *SQLiteStore) GetFiltros() (*Filtros, error) {
	f := &Filtros{
		Categorias:      []string{},
		Ubicaciones:     []string{},
		Empresas:        []string{},
		NombresEmpresas: []string{},
	}

	if err := s.collectStrings("SELECT DISTINCT nombre FROM categorias WHERE nombre IS NOT NULL", &f.Categorias); err != nil {
		return nil, err
	}
	if err := s.collectStrings("SELECT DISTINCT tipo FROM empresas WHERE tipo IS NOT NULL", &f.Empresas); err != nil {
		return nil, err
	}
	if err := s.collectStrings("SELECT DISTINCT nombre FROM empresas WHERE id IN (SELECT empresa_id FROM atractivos)", &f.NombresEmpresas); err != nil {
		return nil, err
	}

	direcciones := []string{}
	err := s.collectStrings(`
        SELECT direccion FROM (
            SELECT direccion FROM atractivos WHERE direccion IS NOT NULL
            UNION
            SELECT direccion FROM empresas WHERE direccion IS NOT NULL
        ) ORDER BY direccion`, &direcciones)
	if err != nil {
		return nil, err
	}
	f.Ubicaciones = NormalizarDirecciones(direcciones)

	return f, nil
}

func (s *SQLiteStore) collectStrings(query string, dest *[]string) error {
	rows, err := s.db.Query(query)
	if err != nil {
		return fmt.Errorf("failed to query filtros: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return fmt.Errorf("failed to scan filtro: %w", err)
		}
		*dest = append(*dest, v)
	}
	return rows.Err()
}

// NormalizarDirecciones colapsa duplicados con y sin el sufijo ", San Rafael"
// quedándose con la variante más completa.
func NormalizarDirecciones(direcciones []string) []string {
	porBase := make(map[string]string)
	var orden []string
	for _, d := range direcciones {
		base := strings.TrimSuffix(d, ", San Rafael")
		if actual, ok := porBase[base]; !ok {
			porBase[base] = d
			orden = append(orden, base)
		} else if len(d) > len(actual) {
			porBase[base] = d
		}
	}
	resultado := make([]string, 0, len(orden))
	for _, base := range orden {
		resultado = append(resultado, porBase[base])
	}
	return resultado
}

func (s *SQLiteStore) ListUbicaciones(tipo, busqueda string) ([]Ubicacion, error) {
	sub := func(tabla string) (string, []any) {
		q := fmt.Sprintf("SELECT DISTINCT direccion, latitud, longitud, '%s' as fuente FROM %s WHERE direccion IS NOT NULL", tabla, tabla)
		var args []any
		if busqueda != "" {
			q += " AND direccion LIKE ?"
			args = append(args, "%"+busqueda+"%")
		}
		return q, args
	}

	var query string
	var args []any
	switch tipo {
	case "atractivos":
		query, args = sub("atractivos")
	case "empresas":
		query, args = sub("empresas")
	default:
		q1, a1 := sub("atractivos")
		q2, a2 := sub("empresas")
		query = q1 + " UNION " + q2
		args = append(a1, a2...)
	}
	query += " ORDER BY direccion"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ubicaciones: %w", err)
	}
	defer rows.Close()

	var ubicaciones []Ubicacion
	for rows.Next() {
		var u Ubicacion
		var latitud, longitud sql.NullFloat64
		if err := rows.Scan(&u.Direccion, &latitud, &longitud, &u.Fuente); err != nil {
			return nil, fmt.Errorf("failed to scan ubicacion: %w", err)
		}
		u.Latitud = floatPtr(latitud)
		u.Longitud = floatPtr(longitud)
		ubicaciones = append(ubicaciones, u)
	}
	return ubicaciones, rows.Err()
}

func (s *SQLiteStore) GetEstadisticas() (*Estadisticas, error) {
	est := &Estadisticas{}
	for _, c := range []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM usuarios_locales", &est.Usuarios},
		{"SELECT COUNT(*) FROM empresas", &est.Empresas},
		{"SELECT COUNT(*) FROM atractivos", &est.Atractivos},
		{"SELECT COUNT(*) FROM resenas", &est.Resenas},
		{"SELECT COUNT(*) FROM rutas", &est.Rutas},
	} {
		if err := s.db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count estadisticas: %w", err)
		}
	}
	return est, nil
}
