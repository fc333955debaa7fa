package core

import (
	"strings"

	"github.com/sirupsen/logrus"

	"turify.ar/turify-backend/internal/store"
)

const (
	categoriaSinAsignar = "Sin categoría"
	empresaSinAsignar   = "Sin empresa asociada"

	sinEmpresas   = "No hay empresas disponibles por el momento."
	sinAtractivos = "No hay atractivos disponibles por el momento."
)

// Catalogo es la vista de solo lectura del almacén que consume el armado de
// contexto.
type Catalogo interface {
	EmpresasParaContexto(f store.ContextoFiltro) ([]store.EmpresaResumen, error)
	AtractivosParaContexto(f store.ContextoFiltro) ([]store.AtractivoResumen, error)
}

type AssembledContext struct {
	Text            string
	TotalEmpresas   int
	TotalAtractivos int
}

// ContextService arma el bloque de texto con el que se fundamenta al
// asistente: empresas y atractivos agrupados por categoría.
type ContextService struct {
	catalogo Catalogo
}

func NewContextService(catalogo Catalogo) *ContextService {
	return &ContextService{catalogo: catalogo}
}

// BuildContext nunca falla: si una consulta al almacén se cae, la sección
// afectada degrada al texto de "sin datos" y la conversación sigue. El costo
// es que el asistente responde sin fundamento durante una caída del almacén.
func (s *ContextService) BuildContext(f store.ContextoFiltro) AssembledContext {
	empresas, err := s.catalogo.EmpresasParaContexto(f)
	if err != nil {
		logrus.WithError(err).Warn("No se pudieron cargar empresas para el contexto")
		empresas = nil
	}
	atractivos, err := s.catalogo.AtractivosParaContexto(f)
	if err != nil {
		logrus.WithError(err).Warn("No se pudieron cargar atractivos para el contexto")
		atractivos = nil
	}

	var b strings.Builder
	b.WriteString("INFORMACIÓN TURÍSTICA DE SAN RAFAEL, MENDOZA\n\n")
	b.WriteString("EMPRESAS TURÍSTICAS:\n\n")
	renderEmpresas(&b, empresas)
	b.WriteString("\nATRACTIVOS TURÍSTICOS:\n\n")
	renderAtractivos(&b, atractivos)

	return AssembledContext{
		Text:            strings.TrimSpace(b.String()),
		TotalEmpresas:   len(empresas),
		TotalAtractivos: len(atractivos),
	}
}

func renderEmpresas(b *strings.Builder, empresas []store.EmpresaResumen) {
	if len(empresas) == 0 {
		b.WriteString(sinEmpresas + "\n")
		return
	}
	grupos, orden := agrupar(len(empresas), func(i int) *string { return empresas[i].Categoria })
	for _, cat := range orden {
		b.WriteString("### " + cat + "\n")
		for _, i := range grupos[cat] {
			e := empresas[i]
			b.WriteString("- **" + e.Nombre + "**")
			if e.Tipo != nil {
				b.WriteString(" (" + *e.Tipo + ")")
			}
			if e.Descripcion != nil {
				b.WriteString(": " + *e.Descripcion)
			}
			escribirCampo(b, "Dirección", e.Direccion)
			escribirCampo(b, "Teléfono", e.Telefono)
			escribirCampo(b, "Email", e.Email)
			escribirCampo(b, "Sitio web", e.SitioWeb)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

func renderAtractivos(b *strings.Builder, atractivos []store.AtractivoResumen) {
	if len(atractivos) == 0 {
		b.WriteString(sinAtractivos + "\n")
		return
	}
	grupos, orden := agrupar(len(atractivos), func(i int) *string { return atractivos[i].Categoria })
	for _, cat := range orden {
		b.WriteString("### " + cat + "\n")
		for _, i := range grupos[cat] {
			a := atractivos[i]
			b.WriteString("- **" + a.Nombre + "**")
			empresa := empresaSinAsignar
			if a.Empresa != nil {
				empresa = *a.Empresa
			}
			b.WriteString(" (Empresa: " + empresa + ")")
			if a.Descripcion != nil {
				b.WriteString(": " + *a.Descripcion)
			}
			escribirCampo(b, "Dirección", a.Direccion)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

// agrupar arma índices por categoría resuelta, preservando el orden de
// primera aparición de cada categoría.
func agrupar(n int, categoria func(i int) *string) (map[string][]int, []string) {
	grupos := make(map[string][]int)
	var orden []string
	for i := 0; i < n; i++ {
		cat := categoriaSinAsignar
		if c := categoria(i); c != nil {
			cat = *c
		}
		if _, visto := grupos[cat]; !visto {
			orden = append(orden, cat)
		}
		grupos[cat] = append(grupos[cat], i)
	}
	return grupos, orden
}

func escribirCampo(b *strings.Builder, etiqueta string, valor *string) {
	if valor == nil || *valor == "" {
		return
	}
	b.WriteString(". " + etiqueta + ": " + *valor)
}
