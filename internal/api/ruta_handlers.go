package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"turify.ar/turify-backend/internal/store"
)

type RutaRequest struct {
	Nombre           *string               `json:"nombre"`
	Descripcion      *string               `json:"descripcion"`
	CreadorEmpresaID *string               `json:"creador_empresa_id"`
	ImgURL           *string               `json:"img_url"`
	Atractivos       []store.RutaAtractivo `json:"atractivos"`
}

func (h *APIHandler) CreateRutaHandler(w http.ResponseWriter, r *http.Request) {
	var req RutaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if req.Nombre == nil || *req.Nombre == "" || req.Descripcion == nil || req.CreadorEmpresaID == nil {
		respondError(w, http.StatusBadRequest, "Datos incompletos para crear la ruta")
		return
	}

	ruta := &store.Ruta{
		Nombre:           *req.Nombre,
		Descripcion:      req.Descripcion,
		CreadorEmpresaID: req.CreadorEmpresaID,
		ImgURL:           req.ImgURL,
	}
	if err := h.dbStore.CreateRuta(ruta, req.Atractivos); err != nil {
		logrus.WithError(err).Error("Error al crear ruta")
		respondError(w, http.StatusInternalServerError, "Error al crear ruta")
		return
	}
	respondJSON(w, http.StatusCreated, ruta)
}

func (h *APIHandler) ListRutasHandler(w http.ResponseWriter, r *http.Request) {
	rutas, err := h.dbStore.ListRutas(r.URL.Query().Get("nombre"))
	if err != nil {
		logrus.WithError(err).Error("Error al obtener rutas")
		respondError(w, http.StatusInternalServerError, "Error al obtener rutas")
		return
	}
	if rutas == nil {
		rutas = []store.Ruta{}
	}
	respondJSON(w, http.StatusOK, rutas)
}

func (h *APIHandler) GetRutaHandler(w http.ResponseWriter, r *http.Request) {
	ruta, err := h.dbStore.GetRutaByID(chi.URLParam(r, "id"))
	if err != nil {
		logrus.WithError(err).Error("Error al obtener ruta")
		respondError(w, http.StatusInternalServerError, "Error al obtener ruta")
		return
	}
	if ruta == nil {
		respondError(w, http.StatusNotFound, "Ruta no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, ruta)
}

func (h *APIHandler) GetAtractivosDeRutaHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ruta, err := h.dbStore.GetRutaByID(id)
	if err != nil {
		logrus.WithError(err).Error("Error al obtener ruta")
		respondError(w, http.StatusInternalServerError, "Error al obtener atractivos de la ruta")
		return
	}
	if ruta == nil {
		respondError(w, http.StatusNotFound, "Ruta no encontrada")
		return
	}

	atractivos, err := h.dbStore.GetAtractivosDeRuta(id)
	if err != nil {
		logrus.WithError(err).Error("Error al obtener atractivos de la ruta")
		respondError(w, http.StatusInternalServerError, "Error al obtener atractivos de la ruta")
		return
	}
	if atractivos == nil {
		atractivos = []store.Atractivo{}
	}
	respondJSON(w, http.StatusOK, atractivos)
}

func (h *APIHandler) UpdateRutaHandler(w http.ResponseWriter, r *http.Request) {
	var req RutaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if req.Nombre == nil && req.Descripcion == nil && req.CreadorEmpresaID == nil && req.Atractivos == nil {
		respondError(w, http.StatusBadRequest, "Datos incompletos para actualizar la ruta")
		return
	}

	id := chi.URLParam(r, "id")
	ruta, err := h.dbStore.GetRutaByID(id)
	if err != nil {
		logrus.WithError(err).Error("Error al actualizar ruta")
		respondError(w, http.StatusInternalServerError, "Error al actualizar ruta")
		return
	}
	if ruta == nil {
		respondError(w, http.StatusNotFound, "Ruta no encontrada")
		return
	}

	if err := h.dbStore.UpdateRuta(id, req.Nombre, req.Descripcion, req.CreadorEmpresaID, req.Atractivos); err != nil {
		logrus.WithError(err).Error("Error al actualizar ruta")
		respondError(w, http.StatusInternalServerError, "Error al actualizar ruta")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Ruta actualizada exitosamente"})
}

func (h *APIHandler) DeleteRutaHandler(w http.ResponseWriter, r *http.Request) {
	ok, err := h.dbStore.DeleteRuta(chi.URLParam(r, "id"))
	if err != nil {
		logrus.WithError(err).Error("Error al eliminar ruta")
		respondError(w, http.StatusInternalServerError, "Error al eliminar ruta")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Ruta no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Ruta eliminada exitosamente"})
}
