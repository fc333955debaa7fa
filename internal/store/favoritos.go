package store

import (
	"database/sql"
	"fmt"
	"time"
)

func (s *SQLiteStore) ExisteFavorito(userID, atractivoID string) (bool, error) {
	var uid string
	err := s.db.QueryRow("SELECT user_id FROM favoritos WHERE user_id = ? AND atractivo_id = ?", userID, atractivoID).Scan(&uid)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check favorito: %w", err)
	}
	return true, nil
}

func (s *SQLiteStore) CreateFavorito(userID, atractivoID string) error {
	_, err := s.db.Exec("INSERT INTO favoritos (user_id, atractivo_id, fecha) VALUES (?, ?, ?)",
		userID, atractivoID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert favorito: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListFavoritos(userID string) ([]Favorito, error) {
	query := `
        SELECT f.user_id, f.atractivo_id, f.fecha, a.nombre
        FROM favoritos f
        LEFT JOIN atractivos a ON f.atractivo_id = a.id`
	var args []any
	if userID != "" {
		query += " WHERE f.user_id = ?"
		args = append(args, userID)
	}
	query += " ORDER BY f.fecha DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query favoritos: %w", err)
	}
	defer rows.Close()

	var favoritos []Favorito
	for rows.Next() {
		var f Favorito
		var atractivoNombre sql.NullString
		if err := rows.Scan(&f.UserID, &f.AtractivoID, &f.Fecha, &atractivoNombre); err != nil {
			return nil, fmt.Errorf("failed to scan favorito row: %w", err)
		}
		f.AtractivoNombre = strPtr(atractivoNombre)
		favoritos = append(favoritos, f)
	}
	return favoritos, rows.Err()
}

func (s *SQLiteStore) DeleteFavorito(userID, atractivoID string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM favoritos WHERE atractivo_id = ? AND user_id = ?", atractivoID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorito: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}
