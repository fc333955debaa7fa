package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turify.ar/turify-backend/internal/store"
)

// fakeCatalogo implementa Catalogo en memoria y registra el filtro recibido.
type fakeCatalogo struct {
	empresas      []store.EmpresaResumen
	atractivos    []store.AtractivoResumen
	empresasErr   error
	atractivosErr error
	ultimoFiltro  store.ContextoFiltro
}

func (f *fakeCatalogo) EmpresasParaContexto(filtro store.ContextoFiltro) ([]store.EmpresaResumen, error) {
	f.ultimoFiltro = filtro
	return f.empresas, f.empresasErr
}

func (f *fakeCatalogo) AtractivosParaContexto(filtro store.ContextoFiltro) ([]store.AtractivoResumen, error) {
	return f.atractivos, f.atractivosErr
}

func str(s string) *string { return &s }

func TestBuildContextVacio(t *testing.T) {
	svc := NewContextService(&fakeCatalogo{})
	got := svc.BuildContext(store.ContextoFiltro{})

	assert.Contains(t, got.Text, "INFORMACIÓN TURÍSTICA DE SAN RAFAEL, MENDOZA")
	assert.Contains(t, got.Text, "No hay empresas disponibles por el momento.")
	assert.Contains(t, got.Text, "No hay atractivos disponibles por el momento.")
	assert.Zero(t, got.TotalEmpresas)
	assert.Zero(t, got.TotalAtractivos)
}

func TestBuildContextAgrupaPorCategoria(t *testing.T) {
	catalogo := &fakeCatalogo{
		empresas: []store.EmpresaResumen{
			{Nombre: "Rafting Sur", Categoria: str("Aventura"), Tipo: str("Operador"), Telefono: str("260-1234")},
			{Nombre: "Hostal del Río", Categoria: nil, Descripcion: str("Alojamiento céntrico")},
			{Nombre: "Kayak Atuel", Categoria: str("Aventura")},
		},
		atractivos: []store.AtractivoResumen{
			{Nombre: "Cañón del Atuel", Categoria: str("Paisajes"), Empresa: nil, Direccion: str("Valle Grande")},
		},
	}
	svc := NewContextService(catalogo)
	got := svc.BuildContext(store.ContextoFiltro{})

	assert.Equal(t, 3, got.TotalEmpresas)
	assert.Equal(t, 1, got.TotalAtractivos)

	// La categoría conserva el orden de primera aparición y agrupa a las dos
	// empresas de Aventura bajo un solo encabezado.
	idxAventura := strings.Index(got.Text, "### Aventura")
	idxSinCategoria := strings.Index(got.Text, "### Sin categoría")
	require.GreaterOrEqual(t, idxAventura, 0)
	require.GreaterOrEqual(t, idxSinCategoria, 0)
	assert.Less(t, idxAventura, idxSinCategoria)
	assert.Equal(t, 1, strings.Count(got.Text, "### Aventura"))

	assert.Contains(t, got.Text, "- **Rafting Sur** (Operador). Teléfono: 260-1234")
	assert.Contains(t, got.Text, "- **Hostal del Río**: Alojamiento céntrico")
	assert.Contains(t, got.Text, "(Empresa: Sin empresa asociada)")
	assert.Contains(t, got.Text, ". Dirección: Valle Grande")
}

func TestBuildContextDegradaAnteErrores(t *testing.T) {
	catalogo := &fakeCatalogo{
		empresasErr: errors.New("db caída"),
		atractivos: []store.AtractivoResumen{
			{Nombre: "Laberinto de Borges", Categoria: str("Paseos"), Empresa: str("Los Teros")},
		},
	}
	svc := NewContextService(catalogo)
	got := svc.BuildContext(store.ContextoFiltro{})

	// La sección caída degrada a "sin datos" y la otra sigue completa.
	assert.Contains(t, got.Text, "No hay empresas disponibles por el momento.")
	assert.Contains(t, got.Text, "- **Laberinto de Borges** (Empresa: Los Teros)")
	assert.Zero(t, got.TotalEmpresas)
	assert.Equal(t, 1, got.TotalAtractivos)
}

func TestBuildContextPropagaFiltro(t *testing.T) {
	catalogo := &fakeCatalogo{}
	svc := NewContextService(catalogo)
	svc.BuildContext(store.ContextoFiltro{Distrito: "El Nihuil"})

	assert.Equal(t, "El Nihuil", catalogo.ultimoFiltro.Distrito)
}
