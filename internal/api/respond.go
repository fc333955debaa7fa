package api

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("No se pudo codificar la respuesta")
	}
}

func respondError(w http.ResponseWriter, status int, mensaje string) {
	respondJSON(w, status, map[string]string{"error": mensaje})
}
