package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Un fallo a mitad de la limpieza manual no debe dejar estado parcial: se
// tira la tabla favoritos para que el tercer DELETE de la cascada falle y se
// verifica que los pasos previos quedaron deshechos.
func TestDeleteAtractivoEsAtomico(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	a := &Atractivo{Nombre: "Laberinto"}
	require.NoError(t, s.CreateAtractivo(a))
	require.NoError(t, s.CreateResena(&Resena{
		UserID: "u1", AtractivoID: a.ID, Comentario: "Genial", Puntaje: 5,
	}))

	_, err = s.db.Exec("DROP TABLE favoritos")
	require.NoError(t, err)

	_, err = s.DeleteAtractivo(a.ID)
	require.Error(t, err)

	got, err := s.GetAtractivoByID(a.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "el atractivo sobrevive al fallo")

	resenas, err := s.ListResenas(ResenaFiltro{AtractivoID: a.ID})
	require.NoError(t, err)
	assert.Len(t, resenas, 1, "la reseña borrada dentro de la transacción vuelve con el rollback")
}

func TestDeleteEmpresaEsAtomico(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	e := &Empresa{Nombre: "Los Teros"}
	require.NoError(t, s.CreateEmpresa(e))
	a := &Atractivo{Nombre: "Laberinto", EmpresaID: &e.ID}
	require.NoError(t, s.CreateAtractivo(a))
	require.NoError(t, s.CreateResena(&Resena{
		UserID: "u1", AtractivoID: a.ID, Comentario: "Genial", Puntaje: 5,
	}))

	_, err = s.db.Exec("DROP TABLE favoritos")
	require.NoError(t, err)

	_, err = s.DeleteEmpresa(e.ID)
	require.Error(t, err)

	got, err := s.GetEmpresaByID(e.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)

	atractivo, err := s.GetAtractivoByID(a.ID)
	require.NoError(t, err)
	assert.NotNil(t, atractivo)

	resenas, err := s.ListResenas(ResenaFiltro{AtractivoID: a.ID})
	require.NoError(t, err)
	assert.Len(t, resenas, 1)
}
