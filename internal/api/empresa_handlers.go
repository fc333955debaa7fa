package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"turify.ar/turify-backend/internal/store"
)

type EmpresaRequest struct {
	Nombre      string   `json:"nombre"`
	Descripcion *string  `json:"descripcion"`
	Email       *string  `json:"email"`
	Telefono    *string  `json:"telefono"`
	SitioWeb    *string  `json:"sitio_web"`
	Direccion   *string  `json:"direccion"`
	Latitud     *float64 `json:"latitud"`
	Longitud    *float64 `json:"longitud"`
	ImgURL      *string  `json:"img_url"`
	Tipo        *string  `json:"tipo"`
	CategoriaID *string  `json:"categoria_id"`
}

func (req *EmpresaRequest) aEmpresa() *store.Empresa {
	return &store.Empresa{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Email:       req.Email,
		Telefono:    req.Telefono,
		SitioWeb:    req.SitioWeb,
		Direccion:   req.Direccion,
		Latitud:     req.Latitud,
		Longitud:    req.Longitud,
		ImgURL:      req.ImgURL,
		Tipo:        req.Tipo,
		CategoriaID: req.CategoriaID,
	}
}

func (h *APIHandler) CreateEmpresaHandler(w http.ResponseWriter, r *http.Request) {
	var req EmpresaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if req.Nombre == "" {
		respondError(w, http.StatusBadRequest, "El nombre es requerido")
		return
	}

	empresa := req.aEmpresa()
	if err := h.dbStore.CreateEmpresa(empresa); err != nil {
		logrus.WithError(err).Error("Error al crear empresa")
		respondError(w, http.StatusInternalServerError, "Error al crear empresa")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": empresa.ID, "nombre": empresa.Nombre})
}

func (h *APIHandler) ListEmpresasHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	empresas, err := h.dbStore.ListEmpresas(store.EmpresaFiltro{
		Nombre:      q.Get("nombre"),
		Tipo:        q.Get("tipo"),
		CategoriaID: q.Get("categoria_id"),
	})
	if err != nil {
		logrus.WithError(err).Error("Error al obtener empresas")
		respondError(w, http.StatusInternalServerError, "Error al obtener empresas")
		return
	}
	if empresas == nil {
		empresas = []store.Empresa{}
	}
	respondJSON(w, http.StatusOK, empresas)
}

func (h *APIHandler) GetEmpresaHandler(w http.ResponseWriter, r *http.Request) {
	empresa, err := h.dbStore.GetEmpresaByID(chi.URLParam(r, "id"))
	if err != nil {
		logrus.WithError(err).Error("Error al obtener empresa")
		respondError(w, http.StatusInternalServerError, "Error al obtener empresa")
		return
	}
	if empresa == nil {
		respondError(w, http.StatusNotFound, "Empresa no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, empresa)
}

func (h *APIHandler) UpdateEmpresaHandler(w http.ResponseWriter, r *http.Request) {
	var req EmpresaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	empresa := req.aEmpresa()
	empresa.ID = chi.URLParam(r, "id")
	ok, err := h.dbStore.UpdateEmpresa(empresa)
	if err != nil {
		logrus.WithError(err).Error("Error al actualizar empresa")
		respondError(w, http.StatusInternalServerError, "Error al actualizar empresa")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Empresa no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Empresa actualizada"})
}

func (h *APIHandler) DeleteEmpresaHandler(w http.ResponseWriter, r *http.Request) {
	ok, err := h.dbStore.DeleteEmpresa(chi.URLParam(r, "id"))
	if err != nil {
		logrus.WithError(err).Error("Error al eliminar empresa")
		respondError(w, http.StatusInternalServerError, "Error al eliminar empresa")
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "Empresa no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Empresa y sus atractivos eliminados exitosamente"})
}
