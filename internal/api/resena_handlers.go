package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"turify.ar/turify-backend/internal/store"
)

type ResenaRequest struct {
	UserID      string `json:"user_id"`
	AtractivoID string `json:"atractivo_id"`
	Comentario  string `json:"comentario"`
	Puntaje     int    `json:"puntaje"`
}

func (h *APIHandler) CreateResenaHandler(w http.ResponseWriter, r *http.Request) {
	var req ResenaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if req.UserID == "" || req.AtractivoID == "" || req.Comentario == "" || req.Puntaje == 0 {
		respondError(w, http.StatusBadRequest, "Se requieren user_id, atractivo_id, comentario y puntaje")
		return
	}
	if req.Puntaje < 1 || req.Puntaje > 5 {
		respondError(w, http.StatusBadRequest, "El puntaje debe estar entre 1 y 5")
		return
	}

	atractivo, err := h.dbStore.GetAtractivoByID(req.AtractivoID)
	if err != nil {
		logrus.WithError(err).Error("Error al verificar atractivo")
		respondError(w, http.StatusInternalServerError, "Error al crear la reseña")
		return
	}
	if atractivo == nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("El atractivo con ID %s no existe", req.AtractivoID))
		return
	}

	existente, err := h.dbStore.ExisteResena(req.UserID, req.AtractivoID)
	if err != nil {
		logrus.WithError(err).Error("Error al verificar reseña existente")
		respondError(w, http.StatusInternalServerError, "Error al crear la reseña")
		return
	}
	if existente {
		respondError(w, http.StatusBadRequest, "Ya has reseñado este atractivo")
		return
	}

	resena := &store.Resena{
		UserID:      req.UserID,
		AtractivoID: req.AtractivoID,
		Comentario:  req.Comentario,
		Puntaje:     req.Puntaje,
	}
	if err := h.dbStore.CreateResena(resena); err != nil {
		logrus.WithError(err).Error("Error al crear reseña")
		respondError(w, http.StatusInternalServerError, "Error al crear la reseña")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"id":      resena.ID,
		"mensaje": "Reseña creada correctamente",
	})
}

func (h *APIHandler) ListResenasHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resenas, err := h.dbStore.ListResenas(store.ResenaFiltro{
		UserID:      q.Get("user_id"),
		AtractivoID: q.Get("atractivo_id"),
	})
	if err != nil {
		logrus.WithError(err).Error("Error al obtener reseñas")
		respondError(w, http.StatusInternalServerError, "Error al obtener reseñas")
		return
	}
	if resenas == nil {
		resenas = []store.Resena{}
	}
	respondJSON(w, http.StatusOK, resenas)
}

func (h *APIHandler) ListResenasDeAtractivoHandler(w http.ResponseWriter, r *http.Request) {
	resenas, err := h.dbStore.ListResenas(store.ResenaFiltro{
		AtractivoID: chi.URLParam(r, "atractivoID"),
	})
	if err != nil {
		logrus.WithError(err).Error("Error al obtener reseñas")
		respondError(w, http.StatusInternalServerError, "Error al obtener reseñas")
		return
	}
	if resenas == nil {
		resenas = []store.Resena{}
	}
	respondJSON(w, http.StatusOK, resenas)
}

func (h *APIHandler) DeleteResenaHandler(w http.ResponseWriter, r *http.Request) {
	ok, err := h.dbStore.DeleteResena(chi.URLParam(r, "id"))
	if err != nil {
		logrus.WithError(err).Error("Error al eliminar reseña")
		respondError(w, http.StatusInternalServerError, "Error al eliminar reseña")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Reseña no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Reseña eliminada correctamente"})
}
