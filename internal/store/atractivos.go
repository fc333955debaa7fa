package store

import (
	"database/sql"
	"fmt"
	"time"
)

type AtractivoFiltro struct {
	Nombre      string
	EmpresaID   string
	CategoriaID string
}

const atractivoCols = "id, nombre, descripcion, empresa_id, categoria_id, latitud, longitud, direccion, img_url, creado_en"

func scanAtractivo(row interface{ Scan(...any) error }) (*Atractivo, error) {
	var a Atractivo
	var descripcion, empresaID, categoriaID, direccion, imgURL sql.NullString
	var latitud, longitud sql.NullFloat64
	err := row.Scan(&a.ID, &a.Nombre, &descripcion, &empresaID, &categoriaID,
		&latitud, &longitud, &direccion, &imgURL, &a.CreadoEn)
	if err != nil {
		return nil, err
	}
	a.Descripcion = strPtr(descripcion)
	a.EmpresaID = strPtr(empresaID)
	a.CategoriaID = strPtr(categoriaID)
	a.Latitud = floatPtr(latitud)
	a.Longitud = floatPtr(longitud)
	a.Direccion = strPtr(direccion)
	a.ImgURL = strPtr(imgURL)
	return &a, nil
}

func (s *SQLiteStore) CreateAtractivo(a *Atractivo) error {
	id, err := s.nextID("atractivo", "atr")
	if err != nil {
		return fmt.Errorf("failed to allocate atractivo id: %w", err)
	}
	a.ID = id
	a.CreadoEn = time.Now()

	_, err = s.db.Exec(`INSERT INTO atractivos
        (id, nombre, descripcion, empresa_id, categoria_id, latitud, longitud, direccion, img_url, creado_en)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Nombre, a.Descripcion, a.EmpresaID, a.CategoriaID,
		a.Latitud, a.Longitud, a.Direccion, a.ImgURL, a.CreadoEn)
	if err != nil {
		return fmt.Errorf("failed to insert atractivo: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetAtractivoByID(id string) (*Atractivo, error) {
	a, err := scanAtractivo(s.db.QueryRow("SELECT "+atractivoCols+" FROM atractivos WHERE id = ?", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get atractivo: %w", err)
	}
	return a, nil
}

func (s *SQLiteStore) ListAtractivos(f AtractivoFiltro) ([]Atractivo, error) {
	query := "SELECT " + atractivoCols + " FROM atractivos WHERE 1=1"
	var args []any
	if f.EmpresaID != "" {
		query += " AND empresa_id = ?"
		args = append(args, f.EmpresaID)
	}
	if f.CategoriaID != "" {
		query += " AND categoria_id = ?"
		args = append(args, f.CategoriaID)
	}
	if f.Nombre != "" {
		query += " AND nombre LIKE ?"
		args = append(args, "%"+f.Nombre+"%")
	}
	query += " ORDER BY creado_en DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query atractivos: %w", err)
	}
	defer rows.Close()

	var atractivos []Atractivo
	for rows.Next() {
		a, err := scanAtractivo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan atractivo row: %w", err)
		}
		atractivos = append(atractivos, *a)
	}
	return atractivos, rows.Err()
}

func (s *SQLiteStore) UpdateAtractivo(a *Atractivo) (bool, error) {
	res, err := s.db.Exec(`UPDATE atractivos SET
        nombre = ?, descripcion = ?, empresa_id = ?, categoria_id = ?,
        latitud = ?, longitud = ?, direccion = ?, img_url = ?
        WHERE id = ?`,
		a.Nombre, a.Descripcion, a.EmpresaID, a.CategoriaID,
		a.Latitud, a.Longitud, a.Direccion, a.ImgURL, a.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update atractivo: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

// deleteAtractivoRefs limpia las filas que referencian al atractivo antes de
// poder borrarlo (sin cascada en el esquema). Opera sobre la transacción del
// llamador.
func deleteAtractivoRefs(tx *sql.Tx, id string) error {
	for _, q := range []string{
		"DELETE FROM rutas_atractivos WHERE atractivo_id = ?",
		"DELETE FROM resenas WHERE atractivo_id = ?",
		"DELETE FROM favoritos WHERE atractivo_id = ?",
	} {
		if _, err := tx.Exec(q, id); err != nil {
			return fmt.Errorf("failed to delete atractivo refs: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) DeleteAtractivo(id string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin atractivo delete: %w", err)
	}
	defer tx.Rollback()

	if err := deleteAtractivoRefs(tx, id); err != nil {
		return false, err
	}
	res, err := tx.Exec("DELETE FROM atractivos WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete atractivo: %w", err)
	}
	affected, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit atractivo delete: %w", err)
	}
	return affected > 0, nil
}
