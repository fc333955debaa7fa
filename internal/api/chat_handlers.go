package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"turify.ar/turify-backend/internal/core"
	"turify.ar/turify-backend/internal/store"
)

type APIHandler struct {
	chatService *core.ChatService
	dbStore     *store.SQLiteStore
}

func NewAPIHandler(cs *core.ChatService, db *store.SQLiteStore) *APIHandler {
	return &APIHandler{chatService: cs, dbStore: db}
}

type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

func (h *APIHandler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Falta sessionId o message")
		return
	}

	reply, err := h.chatService.HandleMessage(r.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Falta sessionId o message")
			return
		}
		logrus.WithError(err).WithField("sessionId", req.SessionID).Error("Error en la conversación")
		respondError(w, http.StatusInternalServerError, "Error en la conversación")
		return
	}

	respondJSON(w, http.StatusOK, ChatResponse{Response: reply})
}

type ClearSessionRequest struct {
	SessionID string `json:"sessionId"`
}

// ClearSessionHandler es idempotente: limpiar una sesión inexistente también
// responde 200.
func (h *APIHandler) ClearSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req ClearSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		respondError(w, http.StatusBadRequest, "Falta sessionId")
		return
	}

	mensaje := "Sesión limpiada exitosamente"
	if !h.chatService.ClearSession(req.SessionID) {
		mensaje = "Sesión no encontrada"
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": mensaje})
}

func (h *APIHandler) ChatStatsHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.chatService.Stats())
}

type ChatContextResponse struct {
	Contexto        string `json:"contexto"`
	TotalEmpresas   int    `json:"totalEmpresas"`
	TotalAtractivos int    `json:"totalAtractivos"`
	Distrito        string `json:"distrito,omitempty"`
}

// ChatContextHandler expone el contexto armado, para diagnóstico.
func (h *APIHandler) ChatContextHandler(w http.ResponseWriter, r *http.Request) {
	distrito := r.URL.Query().Get("distrito")
	assembled := h.chatService.ContextSnapshot(distrito)
	respondJSON(w, http.StatusOK, ChatContextResponse{
		Contexto:        assembled.Text,
		TotalEmpresas:   assembled.TotalEmpresas,
		TotalAtractivos: assembled.TotalAtractivos,
		Distrito:        distrito,
	})
}
