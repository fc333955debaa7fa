package store

import (
	"database/sql"
	"fmt"
)

// ContextoFiltro acota las proyecciones que alimentan al chatbot. A lo sumo
// uno de los dos campos tiene sentido a la vez: Distrito filtra por
// coincidencia parcial en la dirección, EmpresaID acota a una empresa y sus
// atractivos.
type ContextoFiltro struct {
	Distrito  string
	EmpresaID string
}

// EmpresaResumen es la proyección de solo lectura que consume el armado de
// contexto. Categoria queda en nil cuando la empresa no tiene categoría
// vinculada; el llamador decide el rótulo por defecto.
type EmpresaResumen struct {
	Nombre      string
	Descripcion *string
	Email       *string
	Telefono    *string
	SitioWeb    *string
	Direccion   *string
	Tipo        *string
	Categoria   *string
}

type AtractivoResumen struct {
	Nombre      string
	Descripcion *string
	Direccion   *string
	Categoria   *string
	Empresa     *string
}

func (s *SQLiteStore) EmpresasParaContexto(f ContextoFiltro) ([]EmpresaResumen, error) {
	query := `
        SELECT e.nombre, e.descripcion, e.email, e.telefono, e.sitio_web, e.direccion, e.tipo, c.nombre
        FROM empresas e
        LEFT JOIN categorias c ON e.categoria_id = c.id
        WHERE 1=1`
	var args []any
	if f.Distrito != "" {
		query += " AND e.direccion LIKE ?"
		args = append(args, "%"+f.Distrito+"%")
	}
	if f.EmpresaID != "" {
		query += " AND e.id = ?"
		args = append(args, f.EmpresaID)
	}
	query += " ORDER BY c.nombre, e.nombre"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query empresas para contexto: %w", err)
	}
	defer rows.Close()

	var resumenes []EmpresaResumen
	for rows.Next() {
		var r EmpresaResumen
		var descripcion, email, telefono, sitioWeb, direccion, tipo, categoria sql.NullString
		if err := rows.Scan(&r.Nombre, &descripcion, &email, &telefono, &sitioWeb, &direccion, &tipo, &categoria); err != nil {
			return nil, fmt.Errorf("failed to scan empresa resumen: %w", err)
		}
		r.Descripcion = strPtr(descripcion)
		r.Email = strPtr(email)
		r.Telefono = strPtr(telefono)
		r.SitioWeb = strPtr(sitioWeb)
		r.Direccion = strPtr(direccion)
		r.Tipo = strPtr(tipo)
		r.Categoria = strPtr(categoria)
		resumenes = append(resumenes, r)
	}
	return resumenes, rows.Err()
}

func (s *SQLiteStore) AtractivosParaContexto(f ContextoFiltro) ([]AtractivoResumen, error) {
	query := `
        SELECT a.nombre, a.descripcion, a.direccion, c.nombre, e.nombre
        FROM atractivos a
        LEFT JOIN categorias c ON a.categoria_id = c.id
        LEFT JOIN empresas e ON a.empresa_id = e.id
        WHERE 1=1`
	var args []any
	if f.Distrito != "" {
		query += " AND a.direccion LIKE ?"
		args = append(args, "%"+f.Distrito+"%")
	}
	if f.EmpresaID != "" {
		query += " AND a.empresa_id = ?"
		args = append(args, f.EmpresaID)
	}
	query += " ORDER BY c.nombre, a.nombre"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query atractivos para contexto: %w", err)
	}
	defer rows.Close()

	var resumenes []AtractivoResumen
	for rows.Next() {
		var r AtractivoResumen
		var descripcion, direccion, categoria, empresa sql.NullString
		if err := rows.Scan(&r.Nombre, &descripcion, &direccion, &categoria, &empresa); err != nil {
			return nil, fmt.Errorf("failed to scan atractivo resumen: %w", err)
		}
		r.Descripcion = strPtr(descripcion)
		r.Direccion = strPtr(direccion)
		r.Categoria = strPtr(categoria)
		r.Empresa = strPtr(empresa)
		resumenes = append(resumenes, r)
	}
	return resumenes, rows.Err()
}
