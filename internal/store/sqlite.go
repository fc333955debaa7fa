package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err = store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS categorias (
        id TEXT PRIMARY KEY,
        nombre TEXT
    );

    CREATE TABLE IF NOT EXISTS empresas (
        id TEXT PRIMARY KEY,
        nombre TEXT,
        descripcion TEXT,
        email TEXT,
        telefono TEXT,
        sitio_web TEXT,
        direccion TEXT,
        latitud REAL,
        longitud REAL,
        img_url TEXT,
        tipo TEXT,
        categoria_id TEXT,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (categoria_id) REFERENCES categorias(id)
    );

    CREATE TABLE IF NOT EXISTS atractivos (
        id TEXT PRIMARY KEY,
        nombre TEXT,
        descripcion TEXT,
        empresa_id TEXT,
        categoria_id TEXT,
        latitud REAL,
        longitud REAL,
        direccion TEXT,
        img_url TEXT,
        creado_en DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (empresa_id) REFERENCES empresas(id),
        FOREIGN KEY (categoria_id) REFERENCES categorias(id)
    );

    CREATE TABLE IF NOT EXISTS rutas (
        id TEXT PRIMARY KEY,
        nombre TEXT,
        descripcion TEXT,
        creador_empresa_id TEXT,
        img_url TEXT,
        creada_en DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (creador_empresa_id) REFERENCES empresas(id)
    );

    CREATE TABLE IF NOT EXISTS rutas_atractivos (
        ruta_id TEXT,
        atractivo_id TEXT,
        orden INTEGER,
        PRIMARY KEY (ruta_id, atractivo_id),
        FOREIGN KEY (ruta_id) REFERENCES rutas(id),
        FOREIGN KEY (atractivo_id) REFERENCES atractivos(id)
    );

    CREATE TABLE IF NOT EXISTS resenas (
        id TEXT PRIMARY KEY,
        user_id TEXT,
        atractivo_id TEXT,
        comentario TEXT,
        puntaje INTEGER,
        fecha DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (atractivo_id) REFERENCES atractivos(id)
    );

    CREATE TABLE IF NOT EXISTS favoritos (
        user_id TEXT,
        atractivo_id TEXT,
        fecha DATETIME DEFAULT CURRENT_TIMESTAMP,
        PRIMARY KEY (user_id, atractivo_id),
        FOREIGN KEY (atractivo_id) REFERENCES atractivos(id)
    );

    CREATE TABLE IF NOT EXISTS usuarios_locales (
        user_id TEXT PRIMARY KEY,
        nombre TEXT,
        rol TEXT DEFAULT 'usuario',
        metadata TEXT
    );

    CREATE TABLE IF NOT EXISTS id_tracking (
        tipo TEXT NOT NULL,
        ultimo_numero INTEGER NOT NULL,
        PRIMARY KEY (tipo)
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

// nextID reserva el siguiente identificador con prefijo (emp1, atr3, cat2...)
// usando la tabla id_tracking como contador. Se ejecuta dentro de una
// transacción para que dos inserciones cercanas no reserven el mismo número.
func (s *SQLiteStore) nextID(tipo, prefijo string) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin id transaction: %w", err)
	}
	defer tx.Rollback()

	var nextNum int
	err = tx.QueryRow("SELECT ultimo_numero + 1 FROM id_tracking WHERE tipo = ?", tipo).Scan(&nextNum)
	if err == sql.ErrNoRows {
		nextNum = 1
		// Si nunca hubo contador, retomamos desde el id más alto ya presente.
		var lastID sql.NullString
		q := fmt.Sprintf("SELECT id FROM %s WHERE id LIKE ? ORDER BY CAST(SUBSTR(id, ?) AS INTEGER) DESC LIMIT 1", tablaPorTipo(tipo))
		if scanErr := tx.QueryRow(q, prefijo+"%", len(prefijo)+1).Scan(&lastID); scanErr == nil && lastID.Valid {
			var lastNum int
			if _, parseErr := fmt.Sscanf(lastID.String[len(prefijo):], "%d", &lastNum); parseErr == nil {
				nextNum = lastNum + 1
			}
		}
		if _, err = tx.Exec("INSERT INTO id_tracking (tipo, ultimo_numero) VALUES (?, ?)", tipo, nextNum); err != nil {
			return "", fmt.Errorf("failed to seed id counter: %w", err)
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to read id counter: %w", err)
	} else {
		if _, err = tx.Exec("UPDATE id_tracking SET ultimo_numero = ? WHERE tipo = ?", nextNum, tipo); err != nil {
			return "", fmt.Errorf("failed to advance id counter: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit id transaction: %w", err)
	}
	return fmt.Sprintf("%s%d", prefijo, nextNum), nil
}

func tablaPorTipo(tipo string) string {
	switch tipo {
	case "empresa":
		return "empresas"
	case "atractivo":
		return "atractivos"
	case "categoria":
		return "categorias"
	}
	return tipo + "s"
}
