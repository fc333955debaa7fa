package store

import (
	"database/sql"
	"fmt"
	"time"
)

type EmpresaFiltro struct {
	Nombre      string
	Tipo        string
	CategoriaID string
}

const empresaCols = "id, nombre, descripcion, email, telefono, sitio_web, direccion, latitud, longitud, img_url, tipo, categoria_id, created_at"

func scanEmpresa(row interface{ Scan(...any) error }) (*Empresa, error) {
	var e Empresa
	var descripcion, email, telefono, sitioWeb, direccion, imgURL, tipo, categoriaID sql.NullString
	var latitud, longitud sql.NullFloat64
	err := row.Scan(&e.ID, &e.Nombre, &descripcion, &email, &telefono, &sitioWeb,
		&direccion, &latitud, &longitud, &imgURL, &tipo, &categoriaID, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.Descripcion = strPtr(descripcion)
	e.Email = strPtr(email)
	e.Telefono = strPtr(telefono)
	e.SitioWeb = strPtr(sitioWeb)
	e.Direccion = strPtr(direccion)
	e.Latitud = floatPtr(latitud)
	e.Longitud = floatPtr(longitud)
	e.ImgURL = strPtr(imgURL)
	e.Tipo = strPtr(tipo)
	e.CategoriaID = strPtr(categoriaID)
	return &e, nil
}

func (s *SQLiteStore) CreateEmpresa(e *Empresa) error {
	id, err := s.nextID("empresa", "emp")
	if err != nil {
		return fmt.Errorf("failed to allocate empresa id: %w", err)
	}
	e.ID = id
	e.CreatedAt = time.Now()

	_, err = s.db.Exec(`INSERT INTO empresas
        (id, nombre, descripcion, email, telefono, sitio_web, direccion, latitud, longitud, img_url, tipo, categoria_id, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Nombre, e.Descripcion, e.Email, e.Telefono, e.SitioWeb,
		e.Direccion, e.Latitud, e.Longitud, e.ImgURL, e.Tipo, e.CategoriaID, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert empresa: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetEmpresaByID(id string) (*Empresa, error) {
	e, err := scanEmpresa(s.db.QueryRow("SELECT "+empresaCols+" FROM empresas WHERE id = ?", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get empresa: %w", err)
	}
	return e, nil
}

func (s *SQLiteStore) ListEmpresas(f EmpresaFiltro) ([]Empresa, error) {
	query := "SELECT " + empresaCols + " FROM empresas WHERE 1=1"
	var args []any
	if f.Nombre != "" {
		query += " AND nombre LIKE ?"
		args = append(args, "%"+f.Nombre+"%")
	}
	if f.Tipo != "" {
		query += " AND tipo = ?"
		args = append(args, f.Tipo)
	}
	if f.CategoriaID != "" {
		query += " AND categoria_id = ?"
		args = append(args, f.CategoriaID)
	}
	query += " ORDER BY CAST(SUBSTR(id, 4) AS INTEGER)"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query empresas: %w", err)
	}
	defer rows.Close()

	var empresas []Empresa
	for rows.Next() {
		e, err := scanEmpresa(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan empresa row: %w", err)
		}
		empresas = append(empresas, *e)
	}
	return empresas, rows.Err()
}

func (s *SQLiteStore) UpdateEmpresa(e *Empresa) (bool, error) {
	res, err := s.db.Exec(`UPDATE empresas SET
        nombre = ?, descripcion = ?, email = ?, telefono = ?, sitio_web = ?,
        direccion = ?, latitud = ?, longitud = ?, img_url = ?, tipo = ?, categoria_id = ?
        WHERE id = ?`,
		e.Nombre, e.Descripcion, e.Email, e.Telefono, e.SitioWeb,
		e.Direccion, e.Latitud, e.Longitud, e.ImgURL, e.Tipo, e.CategoriaID, e.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update empresa: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

// DeleteEmpresa borra la empresa y todo lo que cuelga de sus atractivos.
// El esquema no declara ON DELETE CASCADE, así que la limpieza es manual y
// en orden: dependientes de cada atractivo, el atractivo, la empresa. Todo
// dentro de una transacción, así un fallo a mitad de camino no deja estado
// parcial.
func (s *SQLiteStore) DeleteEmpresa(id string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin empresa delete: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query("SELECT id FROM atractivos WHERE empresa_id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to query atractivos de la empresa: %w", err)
	}
	var atractivoIDs []string
	for rows.Next() {
		var aid string
		if err := rows.Scan(&aid); err != nil {
			rows.Close()
			return false, fmt.Errorf("failed to scan atractivo id: %w", err)
		}
		atractivoIDs = append(atractivoIDs, aid)
	}
	rows.Close()

	for _, aid := range atractivoIDs {
		if err := deleteAtractivoRefs(tx, aid); err != nil {
			return false, err
		}
		if _, err := tx.Exec("DELETE FROM atractivos WHERE id = ?", aid); err != nil {
			return false, fmt.Errorf("failed to delete atractivo %s: %w", aid, err)
		}
	}

	res, err := tx.Exec("DELETE FROM empresas WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete empresa: %w", err)
	}
	affected, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit empresa delete: %w", err)
	}
	return affected > 0, nil
}
