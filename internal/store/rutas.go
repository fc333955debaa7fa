package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const rutaCols = "id, nombre, descripcion, creador_empresa_id, img_url, creada_en"

func scanRuta(row interface{ Scan(...any) error }) (*Ruta, error) {
	var r Ruta
	var descripcion, creadorEmpresaID, imgURL sql.NullString
	if err := row.Scan(&r.ID, &r.Nombre, &descripcion, &creadorEmpresaID, &imgURL, &r.CreadaEn); err != nil {
		return nil, err
	}
	r.Descripcion = strPtr(descripcion)
	r.CreadorEmpresaID = strPtr(creadorEmpresaID)
	r.ImgURL = strPtr(imgURL)
	return &r, nil
}

func (s *SQLiteStore) CreateRuta(r *Ruta, atractivos []RutaAtractivo) error {
	r.ID = uuid.NewString()
	r.CreadaEn = time.Now()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin ruta transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO rutas (id, nombre, descripcion, creador_empresa_id, img_url, creada_en)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Nombre, r.Descripcion, r.CreadorEmpresaID, r.ImgURL, r.CreadaEn)
	if err != nil {
		return fmt.Errorf("failed to insert ruta: %w", err)
	}

	for _, a := range atractivos {
		orden := a.Orden
		if orden == 0 {
			orden = 1
		}
		if _, err := tx.Exec("INSERT INTO rutas_atractivos (ruta_id, atractivo_id, orden) VALUES (?, ?, ?)",
			r.ID, a.ID, orden); err != nil {
			return fmt.Errorf("failed to insert ruta_atractivo: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetRutaByID(id string) (*Ruta, error) {
	r, err := scanRuta(s.db.QueryRow("SELECT "+rutaCols+" FROM rutas WHERE id = ?", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get ruta: %w", err)
	}
	return r, nil
}

func (s *SQLiteStore) ListRutas(nombre string) ([]Ruta, error) {
	query := "SELECT " + rutaCols + " FROM rutas"
	var args []any
	if nombre != "" {
		query += " WHERE nombre LIKE ?"
		args = append(args, "%"+nombre+"%")
	}
	query += " ORDER BY creada_en DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rutas: %w", err)
	}
	defer rows.Close()

	var rutas []Ruta
	for rows.Next() {
		r, err := scanRuta(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ruta row: %w", err)
		}
		rutas = append(rutas, *r)
	}
	return rutas, rows.Err()
}

// GetAtractivosDeRuta devuelve los atractivos de la ruta en su orden.
func (s *SQLiteStore) GetAtractivosDeRuta(rutaID string) ([]Atractivo, error) {
	rows, err := s.db.Query(`
        SELECT a.id, a.nombre, a.descripcion, a.empresa_id, a.categoria_id,
               a.latitud, a.longitud, a.direccion, a.img_url, a.creado_en, ra.orden
        FROM atractivos a
        JOIN rutas_atractivos ra ON a.id = ra.atractivo_id
        WHERE ra.ruta_id = ?
        ORDER BY ra.orden`, rutaID)
	if err != nil {
		return nil, fmt.Errorf("failed to query atractivos de la ruta: %w", err)
	}
	defer rows.Close()

	var atractivos []Atractivo
	for rows.Next() {
		var a Atractivo
		var descripcion, empresaID, categoriaID, direccion, imgURL sql.NullString
		var latitud, longitud sql.NullFloat64
		var orden int
		if err := rows.Scan(&a.ID, &a.Nombre, &descripcion, &empresaID, &categoriaID,
			&latitud, &longitud, &direccion, &imgURL, &a.CreadoEn, &orden); err != nil {
			return nil, fmt.Errorf("failed to scan atractivo de ruta: %w", err)
		}
		a.Descripcion = strPtr(descripcion)
		a.EmpresaID = strPtr(empresaID)
		a.CategoriaID = strPtr(categoriaID)
		a.Latitud = floatPtr(latitud)
		a.Longitud = floatPtr(longitud)
		a.Direccion = strPtr(direccion)
		a.ImgURL = strPtr(imgURL)
		a.Orden = &orden
		atractivos = append(atractivos, a)
	}
	return atractivos, rows.Err()
}

// UpdateRuta actualiza sólo los campos no nulos; si atractivos no es nil,
// reemplaza la lista completa de la ruta.
func (s *SQLiteStore) UpdateRuta(id string, nombre, descripcion, creadorEmpresaID *string, atractivos []RutaAtractivo) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin ruta update: %w", err)
	}
	defer tx.Rollback()

	setClause := ""
	var args []any
	if nombre != nil {
		setClause += "nombre = ?, "
		args = append(args, *nombre)
	}
	if descripcion != nil {
		setClause += "descripcion = ?, "
		args = append(args, *descripcion)
	}
	if creadorEmpresaID != nil {
		setClause += "creador_empresa_id = ?, "
		args = append(args, *creadorEmpresaID)
	}
	if setClause != "" {
		args = append(args, id)
		if _, err := tx.Exec("UPDATE rutas SET "+setClause[:len(setClause)-2]+" WHERE id = ?", args...); err != nil {
			return fmt.Errorf("failed to update ruta: %w", err)
		}
	}

	if atractivos != nil {
		if _, err := tx.Exec("DELETE FROM rutas_atractivos WHERE ruta_id = ?", id); err != nil {
			return fmt.Errorf("failed to clear ruta atractivos: %w", err)
		}
		for _, a := range atractivos {
			orden := a.Orden
			if orden == 0 {
				orden = 1
			}
			if _, err := tx.Exec("INSERT INTO rutas_atractivos (ruta_id, atractivo_id, orden) VALUES (?, ?, ?)",
				id, a.ID, orden); err != nil {
				return fmt.Errorf("failed to insert ruta_atractivo: %w", err)
			}
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) DeleteRuta(id string) (bool, error) {
	if _, err := s.db.Exec("DELETE FROM rutas_atractivos WHERE ruta_id = ?", id); err != nil {
		return false, fmt.Errorf("failed to delete rutas_atractivos: %w", err)
	}
	res, err := s.db.Exec("DELETE FROM rutas WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete ruta: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}
