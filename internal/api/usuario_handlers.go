package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"turify.ar/turify-backend/internal/store"
)

func (h *APIHandler) ListUsuariosHandler(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.dbStore.ListUsuariosLocales(r.URL.Query().Get("nombre"))
	if err != nil {
		logrus.WithError(err).Error("Error al obtener usuarios")
		respondError(w, http.StatusInternalServerError, "Error al obtener usuarios")
		return
	}
	if usuarios == nil {
		usuarios = []store.UsuarioLocal{}
	}
	respondJSON(w, http.StatusOK, usuarios)
}

func (h *APIHandler) DeleteUsuarioHandler(w http.ResponseWriter, r *http.Request) {
	ok, err := h.dbStore.DeleteUsuarioLocal(chi.URLParam(r, "id"))
	if err != nil {
		logrus.WithError(err).Error("Error al eliminar usuario")
		respondError(w, http.StatusInternalServerError, "Error al eliminar usuario")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Usuario eliminado exitosamente"})
}

type RolRequest struct {
	Rol string `json:"rol"`
}

func (h *APIHandler) UpdateRolUsuarioHandler(w http.ResponseWriter, r *http.Request) {
	var req RolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Rol == "" {
		respondError(w, http.StatusBadRequest, "El campo 'rol' es requerido")
		return
	}

	userID := chi.URLParam(r, "id")
	existe, err := h.dbStore.ExisteUsuarioLocal(userID)
	if err != nil {
		logrus.WithError(err).Error("Error al actualizar rol")
		respondError(w, http.StatusInternalServerError, "Error al actualizar rol")
		return
	}
	if !existe {
		respondError(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}

	if _, err := h.dbStore.UpdateRolUsuarioLocal(userID, req.Rol); err != nil {
		logrus.WithError(err).Error("Error al actualizar rol")
		respondError(w, http.StatusInternalServerError, "Error al actualizar rol")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Rol actualizado correctamente"})
}
