package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"turify.ar/turify-backend/internal/store"
)

var (
	// ErrInvalidInput indica que falta sessionId o message.
	ErrInvalidInput = errors.New("session id and message are required")
	// ErrUpstream indica que la llamada al asistente falló.
	ErrUpstream = errors.New("assistant request failed")
)

// maxHistoryTurns acota la ventana de historia que viaja al asistente: el
// par semilla siempre se conserva y del resto sólo los más recientes, para
// que una sesión larga no infle cada petición sin límite.
const maxHistoryTurns = 40

// ChatService es el enrutador de conversaciones: por cada mensaje entrante
// decide si abre una conversación nueva sembrada con contexto o continúa una
// existente, reinyectando contexto fresco cuando el mensaje lo amerita.
type ChatService struct {
	registry   *SessionRegistry
	contexto   *ContextService
	assistant  Assistant
	classifier Classifier
}

func NewChatService(registry *SessionRegistry, contexto *ContextService, assistant Assistant, classifier Classifier) *ChatService {
	return &ChatService{
		registry:   registry,
		contexto:   contexto,
		assistant:  assistant,
		classifier: classifier,
	}
}

func (s *ChatService) HandleMessage(ctx context.Context, sessionID, message string) (string, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(message) == "" {
		return "", ErrInvalidInput
	}

	outgoing := message
	history, ok := s.registry.History(sessionID)
	if !ok {
		// Conversación nueva: semilla con persona + contexto completo. El
		// contexto se arma antes de insertar; CreateIfAbsent resuelve la
		// carrera entre dos primeros mensajes simultáneos adoptando la
		// conversación que ganó.
		assembled := s.contexto.BuildContext(store.ContextoFiltro{})
		seed := []Turn{
			{Role: RoleUser, Text: personaPrompt + "\n\n" + assembled.Text},
			{Role: RoleModel, Text: saludoInicial},
		}
		var created bool
		history, created = s.registry.CreateIfAbsent(sessionID, seed)
		if created {
			logrus.WithField("sessionId", sessionID).Info("Sesión de chat creada")
		}
	} else {
		intent := s.classifier.Classify(message)
		if intent.NeedsContext {
			assembled := s.contexto.BuildContext(store.ContextoFiltro{Distrito: intent.Distrito})
			outgoing = marcadorContexto + "\n" + assembled.Text + "\n\nConsulta del usuario: " + message
			logrus.WithFields(logrus.Fields{
				"sessionId": sessionID,
				"distrito":  intent.Distrito,
			}).Debug("Contexto reinyectado en la conversación")
		}
	}

	reply, err := s.assistant.Complete(ctx, ventana(history), outgoing)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if !s.registry.AppendExchange(sessionID, outgoing, reply) {
		logrus.WithField("sessionId", sessionID).Warn("La sesión fue desalojada durante el intercambio")
	}
	return reply, nil
}

// ventana conserva el par semilla completo (persona + saludo) y los últimos
// maxHistoryTurns turnos. Como los intercambios se agregan de a pares, el
// recorte arranca en un turno de usuario y la alternancia user/model que la
// semilla estableció se mantiene.
func ventana(history []Turn) []Turn {
	if len(history) <= maxHistoryTurns+2 {
		return history
	}
	acotada := make([]Turn, 0, maxHistoryTurns+2)
	acotada = append(acotada, history[:2]...)
	acotada = append(acotada, history[len(history)-maxHistoryTurns:]...)
	return acotada
}

// ClearSession borra la conversación; es la única vía para forzar un
// refresco de contexto de una sesión viva.
func (s *ChatService) ClearSession(sessionID string) bool {
	return s.registry.Delete(sessionID)
}

type ChatStats struct {
	ActiveSessions int       `json:"activeSessions"`
	Timestamp      time.Time `json:"timestamp"`
}

func (s *ChatService) Stats() ChatStats {
	return ChatStats{
		ActiveSessions: s.registry.Len(),
		Timestamp:      time.Now(),
	}
}

// ContextSnapshot expone el contexto armado para diagnóstico.
func (s *ChatService) ContextSnapshot(distrito string) AssembledContext {
	return s.contexto.BuildContext(store.ContextoFiltro{Distrito: distrito})
}
