package store

import (
	"database/sql"
	"fmt"
)

func (s *SQLiteStore) ListUsuariosLocales(nombre string) ([]UsuarioLocal, error) {
	query := "SELECT user_id, nombre, rol, metadata FROM usuarios_locales WHERE 1=1"
	var args []any
	if nombre != "" {
		query += " AND nombre LIKE ?"
		args = append(args, "%"+nombre+"%")
	}
	query += " ORDER BY user_id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query usuarios locales: %w", err)
	}
	defer rows.Close()

	var usuarios []UsuarioLocal
	for rows.Next() {
		var u UsuarioLocal
		var metadata sql.NullString
		if err := rows.Scan(&u.UserID, &u.Nombre, &u.Rol, &metadata); err != nil {
			return nil, fmt.Errorf("failed to scan usuario local: %w", err)
		}
		u.Metadata = strPtr(metadata)
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

func (s *SQLiteStore) ExisteUsuarioLocal(userID string) (bool, error) {
	var id string
	err := s.db.QueryRow("SELECT user_id FROM usuarios_locales WHERE user_id = ?", userID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check usuario local: %w", err)
	}
	return true, nil
}

func (s *SQLiteStore) DeleteUsuarioLocal(userID string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM usuarios_locales WHERE user_id = ?", userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete usuario local: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (s *SQLiteStore) UpdateRolUsuarioLocal(userID, rol string) (bool, error) {
	res, err := s.db.Exec("UPDATE usuarios_locales SET rol = ? WHERE user_id = ?", rol, userID)
	if err != nil {
		return false, fmt.Errorf("failed to update rol: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}
