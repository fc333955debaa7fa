package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"turify.ar/turify-backend/internal/store"
)

type FavoritoRequest struct {
	UserID string `json:"user_id"`
}

func (h *APIHandler) CreateFavoritoHandler(w http.ResponseWriter, r *http.Request) {
	var req FavoritoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id es requerido")
		return
	}
	atractivoID := chi.URLParam(r, "atractivoID")

	existe, err := h.dbStore.ExisteFavorito(req.UserID, atractivoID)
	if err != nil {
		logrus.WithError(err).Error("Error al verificar favorito")
		respondError(w, http.StatusInternalServerError, "Error al agregar favorito")
		return
	}
	if existe {
		respondError(w, http.StatusBadRequest, "El favorito ya existe")
		return
	}

	if err := h.dbStore.CreateFavorito(req.UserID, atractivoID); err != nil {
		logrus.WithError(err).Error("Error al agregar favorito")
		respondError(w, http.StatusInternalServerError, "Error al agregar favorito")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"mensaje": "Favorito agregado correctamente"})
}

func (h *APIHandler) ListFavoritosHandler(w http.ResponseWriter, r *http.Request) {
	favoritos, err := h.dbStore.ListFavoritos(r.URL.Query().Get("user_id"))
	if err != nil {
		logrus.WithError(err).Error("Error al obtener favoritos")
		respondError(w, http.StatusInternalServerError, "Error al obtener favoritos")
		return
	}
	if favoritos == nil {
		favoritos = []store.Favorito{}
	}
	respondJSON(w, http.StatusOK, favoritos)
}

func (h *APIHandler) DeleteFavoritoHandler(w http.ResponseWriter, r *http.Request) {
	var req FavoritoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id es requerido")
		return
	}

	ok, err := h.dbStore.DeleteFavorito(req.UserID, chi.URLParam(r, "atractivoID"))
	if err != nil {
		logrus.WithError(err).Error("Error al eliminar favorito")
		respondError(w, http.StatusInternalServerError, "Error al eliminar favorito")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Favorito no encontrado")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Favorito eliminado correctamente"})
}
