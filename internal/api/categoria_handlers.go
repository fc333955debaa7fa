package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"turify.ar/turify-backend/internal/store"
)

type CategoriaRequest struct {
	Nombre string `json:"nombre"`
}

func (h *APIHandler) CreateCategoriaHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Nombre == "" {
		respondError(w, http.StatusBadRequest, "El nombre es requerido")
		return
	}

	categoria, err := h.dbStore.CreateCategoria(req.Nombre)
	if err != nil {
		logrus.WithError(err).Error("Error al crear categoría")
		respondError(w, http.StatusInternalServerError, "Error al crear categoría")
		return
	}
	respondJSON(w, http.StatusCreated, categoria)
}

func (h *APIHandler) ListCategoriasHandler(w http.ResponseWriter, r *http.Request) {
	categorias, err := h.dbStore.ListCategorias(r.URL.Query().Get("nombre"))
	if err != nil {
		logrus.WithError(err).Error("Error al obtener categorías")
		respondError(w, http.StatusInternalServerError, "Error al obtener categorías")
		return
	}
	if categorias == nil {
		categorias = []store.Categoria{}
	}
	respondJSON(w, http.StatusOK, categorias)
}

func (h *APIHandler) GetCategoriaHandler(w http.ResponseWriter, r *http.Request) {
	categoria, err := h.dbStore.GetCategoriaByID(chi.URLParam(r, "id"))
	if err != nil {
		logrus.WithError(err).Error("Error al obtener categoría")
		respondError(w, http.StatusInternalServerError, "Error al obtener categoría")
		return
	}
	if categoria == nil {
		respondError(w, http.StatusNotFound, "Categoría no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, categoria)
}

func (h *APIHandler) UpdateCategoriaHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Nombre == "" {
		respondError(w, http.StatusBadRequest, "El nombre es requerido")
		return
	}

	id := chi.URLParam(r, "id")
	ok, err := h.dbStore.UpdateCategoria(id, req.Nombre)
	if err != nil {
		logrus.WithError(err).Error("Error al actualizar categoría")
		respondError(w, http.StatusInternalServerError, "Error al actualizar categoría")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Categoría no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"id":      id,
		"nombre":  req.Nombre,
		"mensaje": "Categoría actualizada exitosamente",
	})
}

// DeleteCategoriaHandler rechaza el borrado mientras haya atractivos que
// referencien la categoría.
func (h *APIHandler) DeleteCategoriaHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	enUso, err := h.dbStore.CategoriaEnUso(id)
	if err != nil {
		logrus.WithError(err).Error("Error al eliminar categoría")
		respondError(w, http.StatusInternalServerError, "Error al eliminar categoría")
		return
	}
	if enUso {
		respondError(w, http.StatusBadRequest, "No se puede eliminar la categoría porque está siendo utilizada por atractivos")
		return
	}

	ok, err := h.dbStore.DeleteCategoria(id)
	if err != nil {
		logrus.WithError(err).Error("Error al eliminar categoría")
		respondError(w, http.StatusInternalServerError, "Error al eliminar categoría")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Categoría no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Categoría eliminada exitosamente"})
}
