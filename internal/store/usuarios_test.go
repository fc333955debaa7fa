package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Los usuarios locales entran por la sincronización externa, así que los
// tests los insertan directo en la tabla.
func sembrarUsuario(t *testing.T, s *SQLiteStore, userID, nombre, rol string) {
	t.Helper()
	_, err := s.db.Exec("INSERT INTO usuarios_locales (user_id, nombre, rol) VALUES (?, ?, ?)", userID, nombre, rol)
	require.NoError(t, err)
}

func TestUsuariosLocales(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	sembrarUsuario(t, s, "u1", "Ana Pérez", "usuario")
	sembrarUsuario(t, s, "u2", "Bruno Díaz", "usuario")

	usuarios, err := s.ListUsuariosLocales("")
	require.NoError(t, err)
	require.Len(t, usuarios, 2)
	assert.Equal(t, "u1", usuarios[0].UserID)

	filtrados, err := s.ListUsuariosLocales("Ana")
	require.NoError(t, err)
	require.Len(t, filtrados, 1)
	assert.Equal(t, "Ana Pérez", filtrados[0].Nombre)

	existe, err := s.ExisteUsuarioLocal("u1")
	require.NoError(t, err)
	assert.True(t, existe)

	ok, err := s.UpdateRolUsuarioLocal("u1", "admin")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DeleteUsuarioLocal("u2")
	require.NoError(t, err)
	assert.True(t, ok)

	existe, err = s.ExisteUsuarioLocal("u2")
	require.NoError(t, err)
	assert.False(t, existe)

	ok, err = s.DeleteUsuarioLocal("u2")
	require.NoError(t, err)
	assert.False(t, ok)
}
