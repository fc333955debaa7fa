package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turify.ar/turify-backend/internal/store"
)

func TestBuscarPorEntidadYTipo(t *testing.T) {
	s := newTestStore(t)

	hotel := &store.Empresa{Nombre: "Hotel Plaza", Tipo: str("Alojamiento")}
	require.NoError(t, s.CreateEmpresa(hotel))
	resto := &store.Empresa{Nombre: "Parrilla El Asador", Tipo: str("Gastronomía")}
	require.NoError(t, s.CreateEmpresa(resto))
	crearAtractivo(t, s, "Cañón del Atuel", nil, nil)

	resultado, err := s.Buscar(store.BusquedaFiltro{Entidad: "empresas", Tipo: "Alojamiento"})
	require.NoError(t, err)
	require.Len(t, resultado.Empresas, 1)
	assert.Equal(t, "Hotel Plaza", resultado.Empresas[0].Nombre)
	assert.Empty(t, resultado.Atractivos)
	assert.Empty(t, resultado.Rutas)

	// Sin entidad trae las tres secciones.
	resultado, err = s.Buscar(store.BusquedaFiltro{})
	require.NoError(t, err)
	assert.Len(t, resultado.Empresas, 2)
	assert.Len(t, resultado.Atractivos, 1)
}

func TestBuscarPorRadio(t *testing.T) {
	s := newTestStore(t)

	cerca := &store.Empresa{Nombre: "Cerca", Latitud: num(-34.61), Longitud: num(-68.33)}
	require.NoError(t, s.CreateEmpresa(cerca))
	lejos := &store.Empresa{Nombre: "Lejos", Latitud: num(-35.50), Longitud: num(-69.60)}
	require.NoError(t, s.CreateEmpresa(lejos))

	resultado, err := s.Buscar(store.BusquedaFiltro{
		Entidad: "empresas",
		Lat:     num(-34.60),
		Lng:     num(-68.33),
		RadioKm: num(10),
	})
	require.NoError(t, err)
	require.Len(t, resultado.Empresas, 1)
	assert.Equal(t, "Cerca", resultado.Empresas[0].Nombre)
}

func TestGetFiltros(t *testing.T) {
	s := newTestStore(t)

	c, err := s.CreateCategoria("Aventura")
	require.NoError(t, err)

	e := &store.Empresa{
		Nombre:    "Rafting Sur",
		Tipo:      str("Operador"),
		Direccion: str("Valle Grande, San Rafael"),
	}
	require.NoError(t, s.CreateEmpresa(e))

	a := &store.Atractivo{
		Nombre:      "Rápidos del Atuel",
		EmpresaID:   &e.ID,
		CategoriaID: &c.ID,
		Direccion:   str("Valle Grande"),
	}
	require.NoError(t, s.CreateAtractivo(a))

	filtros, err := s.GetFiltros()
	require.NoError(t, err)
	assert.Equal(t, []string{"Aventura"}, filtros.Categorias)
	assert.Equal(t, []string{"Operador"}, filtros.Empresas)
	assert.Equal(t, []string{"Rafting Sur"}, filtros.NombresEmpresas)
	// Las dos variantes de la misma dirección colapsan en la más completa.
	assert.Equal(t, []string{"Valle Grande, San Rafael"}, filtros.Ubicaciones)
}

func TestNormalizarDirecciones(t *testing.T) {
	got := store.NormalizarDirecciones([]string{
		"El Nihuil",
		"El Nihuil, San Rafael",
		"Centro",
		"Valle Grande, San Rafael",
	})
	assert.Equal(t, []string{"El Nihuil, San Rafael", "Centro", "Valle Grande, San Rafael"}, got)
}

func TestListUbicaciones(t *testing.T) {
	s := newTestStore(t)

	e := &store.Empresa{Nombre: "Hostal", Direccion: str("Centro, San Rafael"), Latitud: num(-34.6), Longitud: num(-68.3)}
	require.NoError(t, s.CreateEmpresa(e))
	a := &store.Atractivo{Nombre: "Mirador", Direccion: str("Cuadro Benegas, San Rafael")}
	require.NoError(t, s.CreateAtractivo(a))

	todas, err := s.ListUbicaciones("", "")
	require.NoError(t, err)
	assert.Len(t, todas, 2)

	soloEmpresas, err := s.ListUbicaciones("empresas", "")
	require.NoError(t, err)
	require.Len(t, soloEmpresas, 1)
	assert.Equal(t, "Centro, San Rafael", soloEmpresas[0].Direccion)
	assert.Equal(t, "empresas", soloEmpresas[0].Fuente)

	filtradas, err := s.ListUbicaciones("", "Benegas")
	require.NoError(t, err)
	require.Len(t, filtradas, 1)
	assert.Equal(t, "atractivos", filtradas[0].Fuente)
}

func TestGetEstadisticas(t *testing.T) {
	s := newTestStore(t)

	e := crearEmpresa(t, s, "Los Teros")
	a := crearAtractivo(t, s, "Laberinto", &e.ID, nil)
	require.NoError(t, s.CreateResena(&store.Resena{UserID: "u1", AtractivoID: a.ID, Comentario: "Genial", Puntaje: 4}))
	require.NoError(t, s.CreateRuta(&store.Ruta{Nombre: "Circuito"}, nil))

	est, err := s.GetEstadisticas()
	require.NoError(t, err)
	assert.Equal(t, 1, est.Empresas)
	assert.Equal(t, 1, est.Atractivos)
	assert.Equal(t, 1, est.Resenas)
	assert.Equal(t, 1, est.Rutas)
	assert.Equal(t, 0, est.Usuarios)
}
