package api

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"turify.ar/turify-backend/internal/store"
)

func parseFloatParam(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

func (h *APIHandler) BusquedaHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filtro := store.BusquedaFiltro{
		Tipo:      q.Get("tipo"),
		Categoria: q.Get("categoria"),
		Entidad:   q.Get("entidad"),
		Ubicacion: q.Get("ubicacion"),
		Lat:       parseFloatParam(q.Get("lat")),
		Lng:       parseFloatParam(q.Get("lng")),
		RadioKm:   parseFloatParam(q.Get("radio")),
	}

	resultado, err := h.dbStore.Buscar(filtro)
	if err != nil {
		logrus.WithError(err).Error("Error en búsqueda")
		respondError(w, http.StatusInternalServerError, "Error en búsqueda")
		return
	}
	respondJSON(w, http.StatusOK, resultado)
}

func (h *APIHandler) FiltrosHandler(w http.ResponseWriter, r *http.Request) {
	filtros, err := h.dbStore.GetFiltros()
	if err != nil {
		logrus.WithError(err).Error("Error al cargar filtros")
		respondError(w, http.StatusInternalServerError, "No se pudieron cargar los filtros")
		return
	}
	respondJSON(w, http.StatusOK, filtros)
}

func (h *APIHandler) UbicacionesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ubicaciones, err := h.dbStore.ListUbicaciones(q.Get("tipo"), q.Get("busqueda"))
	if err != nil {
		logrus.WithError(err).Error("Error al obtener ubicaciones")
		respondError(w, http.StatusInternalServerError, "Error al obtener ubicaciones")
		return
	}
	if ubicaciones == nil {
		ubicaciones = []store.Ubicacion{}
	}
	respondJSON(w, http.StatusOK, ubicaciones)
}

func (h *APIHandler) EstadisticasHandler(w http.ResponseWriter, r *http.Request) {
	est, err := h.dbStore.GetEstadisticas()
	if err != nil {
		logrus.WithError(err).Error("Error al obtener estadísticas")
		respondError(w, http.StatusInternalServerError, "Error al obtener estadísticas")
		return
	}
	respondJSON(w, http.StatusOK, est)
}
