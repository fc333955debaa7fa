package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turify.ar/turify-backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func str(s string) *string   { return &s }
func num(f float64) *float64 { return &f }

func crearEmpresa(t *testing.T, s *store.SQLiteStore, nombre string) *store.Empresa {
	t.Helper()
	e := &store.Empresa{Nombre: nombre}
	require.NoError(t, s.CreateEmpresa(e))
	return e
}

func crearAtractivo(t *testing.T, s *store.SQLiteStore, nombre string, empresaID, categoriaID *string) *store.Atractivo {
	t.Helper()
	a := &store.Atractivo{Nombre: nombre, EmpresaID: empresaID, CategoriaID: categoriaID}
	require.NoError(t, s.CreateAtractivo(a))
	return a
}

func TestIDsConPrefijoSecuenciales(t *testing.T) {
	s := newTestStore(t)

	e1 := crearEmpresa(t, s, "Rafting Sur")
	e2 := crearEmpresa(t, s, "Kayak Atuel")
	assert.Equal(t, "emp1", e1.ID)
	assert.Equal(t, "emp2", e2.ID)

	c, err := s.CreateCategoria("Aventura")
	require.NoError(t, err)
	assert.Equal(t, "cat1", c.ID)

	a := crearAtractivo(t, s, "Cañón del Atuel", nil, nil)
	assert.Equal(t, "atr1", a.ID)
}

func TestEmpresaCRUD(t *testing.T) {
	s := newTestStore(t)

	e := &store.Empresa{
		Nombre:    "Hostal del Río",
		Tipo:      str("Alojamiento"),
		Direccion: str("Av. Mitre 123, Centro, San Rafael"),
		Telefono:  str("260-1234"),
	}
	require.NoError(t, s.CreateEmpresa(e))

	got, err := s.GetEmpresaByID(e.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hostal del Río", got.Nombre)
	assert.Equal(t, "Alojamiento", *got.Tipo)

	got.Nombre = "Hostal del Río Nuevo"
	ok, err := s.UpdateEmpresa(got)
	require.NoError(t, err)
	assert.True(t, ok)

	lista, err := s.ListEmpresas(store.EmpresaFiltro{Nombre: "Nuevo"})
	require.NoError(t, err)
	require.Len(t, lista, 1)

	ok, err = s.DeleteEmpresa(e.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = s.GetEmpresaByID(e.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "una empresa borrada no se encuentra")
}

func TestDeleteEmpresaCascada(t *testing.T) {
	s := newTestStore(t)

	e := crearEmpresa(t, s, "Los Teros")
	a := crearAtractivo(t, s, "Laberinto de Borges", &e.ID, nil)

	require.NoError(t, s.CreateResena(&store.Resena{
		UserID: "u1", AtractivoID: a.ID, Comentario: "Excelente", Puntaje: 5,
	}))
	require.NoError(t, s.CreateFavorito("u1", a.ID))

	ruta := &store.Ruta{Nombre: "Ruta del vino"}
	require.NoError(t, s.CreateRuta(ruta, []store.RutaAtractivo{{ID: a.ID, Orden: 1}}))

	ok, err := s.DeleteEmpresa(e.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.GetAtractivoByID(a.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	resenas, err := s.ListResenas(store.ResenaFiltro{AtractivoID: a.ID})
	require.NoError(t, err)
	assert.Empty(t, resenas)

	favoritos, err := s.ListFavoritos("u1")
	require.NoError(t, err)
	assert.Empty(t, favoritos)

	atractivos, err := s.GetAtractivosDeRuta(ruta.ID)
	require.NoError(t, err)
	assert.Empty(t, atractivos)
}

func TestCategoriaEnUso(t *testing.T) {
	s := newTestStore(t)

	c, err := s.CreateCategoria("Paisajes")
	require.NoError(t, err)

	enUso, err := s.CategoriaEnUso(c.ID)
	require.NoError(t, err)
	assert.False(t, enUso)

	a := crearAtractivo(t, s, "Valle Grande", nil, &c.ID)

	enUso, err = s.CategoriaEnUso(c.ID)
	require.NoError(t, err)
	assert.True(t, enUso)

	_, err = s.DeleteAtractivo(a.ID)
	require.NoError(t, err)

	enUso, err = s.CategoriaEnUso(c.ID)
	require.NoError(t, err)
	assert.False(t, enUso)
}

func TestRutaConAtractivosOrdenados(t *testing.T) {
	s := newTestStore(t)

	a1 := crearAtractivo(t, s, "Primero", nil, nil)
	a2 := crearAtractivo(t, s, "Segundo", nil, nil)

	ruta := &store.Ruta{Nombre: "Circuito Atuel", Descripcion: str("Un día completo")}
	require.NoError(t, s.CreateRuta(ruta, []store.RutaAtractivo{
		{ID: a2.ID, Orden: 2},
		{ID: a1.ID, Orden: 1},
	}))
	assert.NotEmpty(t, ruta.ID)

	atractivos, err := s.GetAtractivosDeRuta(ruta.ID)
	require.NoError(t, err)
	require.Len(t, atractivos, 2)
	assert.Equal(t, "Primero", atractivos[0].Nombre)
	assert.Equal(t, "Segundo", atractivos[1].Nombre)
	assert.Equal(t, 1, *atractivos[0].Orden)
}

func TestUpdateRutaReemplazaAtractivos(t *testing.T) {
	s := newTestStore(t)

	a1 := crearAtractivo(t, s, "Viejo", nil, nil)
	a2 := crearAtractivo(t, s, "Nuevo", nil, nil)

	ruta := &store.Ruta{Nombre: "Circuito"}
	require.NoError(t, s.CreateRuta(ruta, []store.RutaAtractivo{{ID: a1.ID, Orden: 1}}))

	nombre := "Circuito renovado"
	require.NoError(t, s.UpdateRuta(ruta.ID, &nombre, nil, nil, []store.RutaAtractivo{{ID: a2.ID, Orden: 1}}))

	got, err := s.GetRutaByID(ruta.ID)
	require.NoError(t, err)
	assert.Equal(t, "Circuito renovado", got.Nombre)

	atractivos, err := s.GetAtractivosDeRuta(ruta.ID)
	require.NoError(t, err)
	require.Len(t, atractivos, 1)
	assert.Equal(t, "Nuevo", atractivos[0].Nombre)
}

func TestResenaUnicaPorUsuario(t *testing.T) {
	s := newTestStore(t)

	a := crearAtractivo(t, s, "Cañón del Atuel", nil, nil)

	existe, err := s.ExisteResena("u1", a.ID)
	require.NoError(t, err)
	assert.False(t, existe)

	require.NoError(t, s.CreateResena(&store.Resena{
		UserID: "u1", AtractivoID: a.ID, Comentario: "Hermoso", Puntaje: 5,
	}))

	existe, err = s.ExisteResena("u1", a.ID)
	require.NoError(t, err)
	assert.True(t, existe)

	resenas, err := s.ListResenas(store.ResenaFiltro{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, resenas, 1)
	require.NotNil(t, resenas[0].AtractivoNombre)
	assert.Equal(t, "Cañón del Atuel", *resenas[0].AtractivoNombre)
}

func TestFavoritos(t *testing.T) {
	s := newTestStore(t)

	a := crearAtractivo(t, s, "El Nihuil", nil, nil)

	require.NoError(t, s.CreateFavorito("u1", a.ID))

	existe, err := s.ExisteFavorito("u1", a.ID)
	require.NoError(t, err)
	assert.True(t, existe)

	favoritos, err := s.ListFavoritos("u1")
	require.NoError(t, err)
	require.Len(t, favoritos, 1)

	ok, err := s.DeleteFavorito("u1", a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DeleteFavorito("u1", a.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContextoFiltraPorDistrito(t *testing.T) {
	s := newTestStore(t)

	c, err := s.CreateCategoria("Alojamiento")
	require.NoError(t, err)

	e := &store.Empresa{
		Nombre:      "Cabañas del Valle",
		Direccion:   str("Ruta 173 km 12, Valle Grande, San Rafael"),
		CategoriaID: &c.ID,
	}
	require.NoError(t, s.CreateEmpresa(e))
	crearEmpresa(t, s, "Hostal Centro")

	resumenes, err := s.EmpresasParaContexto(store.ContextoFiltro{Distrito: "Valle Grande"})
	require.NoError(t, err)
	require.Len(t, resumenes, 1)
	assert.Equal(t, "Cabañas del Valle", resumenes[0].Nombre)
	require.NotNil(t, resumenes[0].Categoria)
	assert.Equal(t, "Alojamiento", *resumenes[0].Categoria)

	todos, err := s.EmpresasParaContexto(store.ContextoFiltro{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestContextoPorEmpresa(t *testing.T) {
	s := newTestStore(t)

	e := crearEmpresa(t, s, "Los Teros")
	crearAtractivo(t, s, "Laberinto", &e.ID, nil)
	crearAtractivo(t, s, "Suelto", nil, nil)

	resumenes, err := s.AtractivosParaContexto(store.ContextoFiltro{EmpresaID: e.ID})
	require.NoError(t, err)
	require.Len(t, resumenes, 1)
	assert.Equal(t, "Laberinto", resumenes[0].Nombre)
	require.NotNil(t, resumenes[0].Empresa)
	assert.Equal(t, "Los Teros", *resumenes[0].Empresa)
}
