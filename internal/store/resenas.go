package store

import (
	"database/sql"
	"fmt"
	"time"
)

type ResenaFiltro struct {
	UserID      string
	AtractivoID string
}

func (s *SQLiteStore) CreateResena(r *Resena) error {
	r.ID = fmt.Sprintf("res%d", time.Now().UnixMilli())
	r.Fecha = time.Now()

	_, err := s.db.Exec(`INSERT INTO resenas (id, user_id, atractivo_id, comentario, puntaje, fecha)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.UserID, r.AtractivoID, r.Comentario, r.Puntaje, r.Fecha)
	if err != nil {
		return fmt.Errorf("failed to insert resena: %w", err)
	}
	return nil
}

// ExisteResena dice si el usuario ya reseñó el atractivo (una por usuario).
func (s *SQLiteStore) ExisteResena(userID, atractivoID string) (bool, error) {
	var id string
	err := s.db.QueryRow("SELECT id FROM resenas WHERE user_id = ? AND atractivo_id = ?", userID, atractivoID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check resena: %w", err)
	}
	return true, nil
}

func (s *SQLiteStore) ListResenas(f ResenaFiltro) ([]Resena, error) {
	query := `
        SELECT r.id, r.user_id, r.atractivo_id, r.comentario, r.puntaje, r.fecha, a.nombre
        FROM resenas r
        LEFT JOIN atractivos a ON r.atractivo_id = a.id
        WHERE 1=1`
	var args []any
	if f.UserID != "" {
		query += " AND r.user_id = ?"
		args = append(args, f.UserID)
	}
	if f.AtractivoID != "" {
		query += " AND r.atractivo_id = ?"
		args = append(args, f.AtractivoID)
	}
	query += " ORDER BY r.fecha DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query resenas: %w", err)
	}
	defer rows.Close()

	var resenas []Resena
	for rows.Next() {
		var r Resena
		var atractivoNombre sql.NullString
		if err := rows.Scan(&r.ID, &r.UserID, &r.AtractivoID, &r.Comentario, &r.Puntaje, &r.Fecha, &atractivoNombre); err != nil {
			return nil, fmt.Errorf("failed to scan resena row: %w", err)
		}
		r.AtractivoNombre = strPtr(atractivoNombre)
		resenas = append(resenas, r)
	}
	return resenas, rows.Err()
}

func (s *SQLiteStore) DeleteResena(id string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM resenas WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete resena: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}
