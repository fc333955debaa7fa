package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"turify.ar/turify-backend/internal/store"
)

type AtractivoRequest struct {
	Nombre      string   `json:"nombre"`
	Descripcion *string  `json:"descripcion"`
	EmpresaID   *string  `json:"empresa_id"`
	CategoriaID *string  `json:"categoria_id"`
	Latitud     *float64 `json:"latitud"`
	Longitud    *float64 `json:"longitud"`
	Direccion   *string  `json:"direccion"`
	ImgURL      *string  `json:"img_url"`
}

func (req *AtractivoRequest) completo() bool {
	return req.Nombre != "" && req.Descripcion != nil && req.EmpresaID != nil &&
		req.CategoriaID != nil && req.Latitud != nil && req.Longitud != nil && req.Direccion != nil
}

func (req *AtractivoRequest) aAtractivo() *store.Atractivo {
	return &store.Atractivo{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		EmpresaID:   req.EmpresaID,
		CategoriaID: req.CategoriaID,
		Latitud:     req.Latitud,
		Longitud:    req.Longitud,
		Direccion:   req.Direccion,
		ImgURL:      req.ImgURL,
	}
}

func (h *APIHandler) CreateAtractivoHandler(w http.ResponseWriter, r *http.Request) {
	var req AtractivoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if !req.completo() {
		respondError(w, http.StatusBadRequest, "Faltan campos requeridos")
		return
	}

	empresa, err := h.dbStore.GetEmpresaByID(*req.EmpresaID)
	if err != nil {
		logrus.WithError(err).Error("Error al verificar empresa")
		respondError(w, http.StatusInternalServerError, "Error al crear atractivo")
		return
	}
	if empresa == nil {
		respondError(w, http.StatusBadRequest, "La empresa especificada no existe")
		return
	}

	categoria, err := h.dbStore.GetCategoriaByID(*req.CategoriaID)
	if err != nil {
		logrus.WithError(err).Error("Error al verificar categoría")
		respondError(w, http.StatusInternalServerError, "Error al crear atractivo")
		return
	}
	if categoria == nil {
		respondError(w, http.StatusBadRequest, "La categoría especificada no existe")
		return
	}

	atractivo := req.aAtractivo()
	if err := h.dbStore.CreateAtractivo(atractivo); err != nil {
		logrus.WithError(err).Error("Error al crear atractivo")
		respondError(w, http.StatusInternalServerError, "Error al crear atractivo")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"id":      atractivo.ID,
		"nombre":  atractivo.Nombre,
		"mensaje": "Atractivo creado exitosamente",
	})
}

func (h *APIHandler) ListAtractivosHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	atractivos, err := h.dbStore.ListAtractivos(store.AtractivoFiltro{
		Nombre:      q.Get("nombre"),
		EmpresaID:   q.Get("empresa_id"),
		CategoriaID: q.Get("categoria_id"),
	})
	if err != nil {
		logrus.WithError(err).Error("Error al obtener atractivos")
		respondError(w, http.StatusInternalServerError, "Error al obtener atractivos")
		return
	}
	if atractivos == nil {
		atractivos = []store.Atractivo{}
	}
	respondJSON(w, http.StatusOK, atractivos)
}

func (h *APIHandler) GetAtractivoHandler(w http.ResponseWriter, r *http.Request) {
	atractivo, err := h.dbStore.GetAtractivoByID(chi.URLParam(r, "id"))
	if err != nil {
		logrus.WithError(err).Error("Error al obtener atractivo")
		respondError(w, http.StatusInternalServerError, "Error al obtener atractivo")
		return
	}
	if atractivo == nil {
		respondError(w, http.StatusNotFound, "Atractivo no encontrado")
		return
	}
	respondJSON(w, http.StatusOK, atractivo)
}

func (h *APIHandler) UpdateAtractivoHandler(w http.ResponseWriter, r *http.Request) {
	var req AtractivoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	atractivo := req.aAtractivo()
	atractivo.ID = chi.URLParam(r, "id")
	ok, err := h.dbStore.UpdateAtractivo(atractivo)
	if err != nil {
		logrus.WithError(err).Error("Error al actualizar atractivo")
		respondError(w, http.StatusInternalServerError, "Error al actualizar atractivo")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Atractivo no encontrado")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"id":      atractivo.ID,
		"mensaje": "Atractivo actualizado exitosamente",
	})
}

func (h *APIHandler) DeleteAtractivoHandler(w http.ResponseWriter, r *http.Request) {
	ok, err := h.dbStore.DeleteAtractivo(chi.URLParam(r, "id"))
	if err != nil {
		logrus.WithError(err).Error("Error al eliminar atractivo")
		respondError(w, http.StatusInternalServerError, "Error al eliminar atractivo")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Atractivo no encontrado")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Atractivo eliminado exitosamente"})
}
