package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordClassifier(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{
			name:    "saludo sin palabras clave",
			message: "Hola, ¿cómo estás?",
			want:    Intent{},
		},
		{
			name:    "palabra disparadora",
			message: "¿Me recomendás un restaurante?",
			want:    Intent{NeedsContext: true},
		},
		{
			name:    "disparadora en mayúsculas",
			message: "QUIERO UN HOTEL",
			want:    Intent{NeedsContext: true},
		},
		{
			name:    "mención de distrito",
			message: "¿Qué puedo hacer en Valle Grande?",
			want:    Intent{NeedsContext: true, Distrito: "Valle Grande"},
		},
		{
			name:    "distrito en minúsculas",
			message: "busco cabañas en el nihuil",
			want:    Intent{NeedsContext: true, Distrito: "El Nihuil"},
		},
		{
			name:    "distrito desconocido se ignora",
			message: "quiero comer en Malargüe",
			want:    Intent{NeedsContext: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.message))
		})
	}
}
