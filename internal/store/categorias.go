package store

import (
	"database/sql"
	"fmt"
)

func (s *SQLiteStore) CreateCategoria(nombre string) (*Categoria, error) {
	id, err := s.nextID("categoria", "cat")
	if err != nil {
		return nil, fmt.Errorf("failed to allocate categoria id: %w", err)
	}
	if _, err := s.db.Exec("INSERT INTO categorias (id, nombre) VALUES (?, ?)", id, nombre); err != nil {
		return nil, fmt.Errorf("failed to insert categoria: %w", err)
	}
	return &Categoria{ID: id, Nombre: nombre}, nil
}

func (s *SQLiteStore) GetCategoriaByID(id string) (*Categoria, error) {
	var c Categoria
	err := s.db.QueryRow("SELECT id, nombre FROM categorias WHERE id = ?", id).Scan(&c.ID, &c.Nombre)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get categoria: %w", err)
	}
	return &c, nil
}

func (s *SQLiteStore) ListCategorias(nombre string) ([]Categoria, error) {
	query := "SELECT id, nombre FROM categorias"
	var args []any
	if nombre != "" {
		query += " WHERE nombre LIKE ?"
		args = append(args, "%"+nombre+"%")
	}
	query += " ORDER BY CAST(SUBSTR(id, 4) AS INTEGER)"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categorias: %w", err)
	}
	defer rows.Close()

	var categorias []Categoria
	for rows.Next() {
		var c Categoria
		if err := rows.Scan(&c.ID, &c.Nombre); err != nil {
			return nil, fmt.Errorf("failed to scan categoria row: %w", err)
		}
		categorias = append(categorias, c)
	}
	return categorias, rows.Err()
}

func (s *SQLiteStore) UpdateCategoria(id, nombre string) (bool, error) {
	res, err := s.db.Exec("UPDATE categorias SET nombre = ? WHERE id = ?", nombre, id)
	if err != nil {
		return false, fmt.Errorf("failed to update categoria: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

// CategoriaEnUso indica si algún atractivo sigue apuntando a la categoría.
func (s *SQLiteStore) CategoriaEnUso(id string) (bool, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM atractivos WHERE categoria_id = ?", id).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count atractivos por categoria: %w", err)
	}
	return count > 0, nil
}

func (s *SQLiteStore) DeleteCategoria(id string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM categorias WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete categoria: %w", err)
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}
