package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTurns() []Turn {
	return []Turn{
		{Role: RoleUser, Text: "instrucciones"},
		{Role: RoleModel, Text: "hola"},
	}
}

func TestCreateIfAbsent(t *testing.T) {
	r := NewSessionRegistry(time.Hour, 10)
	defer r.Stop()

	turns, created := r.CreateIfAbsent("s1", seedTurns())
	require.True(t, created)
	require.Len(t, turns, 2)
	assert.Equal(t, 1, r.Len())
}

func TestCreateIfAbsentAdoptsExisting(t *testing.T) {
	r := NewSessionRegistry(time.Hour, 10)
	defer r.Stop()

	r.CreateIfAbsent("s1", seedTurns())
	require.True(t, r.AppendExchange("s1", "pregunta", "respuesta"))

	// Un segundo sembrado con la sesión ya viva no pisa la conversación.
	turns, created := r.CreateIfAbsent("s1", []Turn{{Role: RoleUser, Text: "otra semilla"}})
	assert.False(t, created)
	require.Len(t, turns, 4)
	assert.Equal(t, "pregunta", turns[2].Text)
}

func TestAppendExchangeOnMissingSession(t *testing.T) {
	r := NewSessionRegistry(time.Hour, 10)
	defer r.Stop()

	assert.False(t, r.AppendExchange("nunca-creada", "a", "b"))
}

func TestHistoryReturnsCopy(t *testing.T) {
	r := NewSessionRegistry(time.Hour, 10)
	defer r.Stop()

	r.CreateIfAbsent("s1", seedTurns())
	turns, ok := r.History("s1")
	require.True(t, ok)
	turns[0].Text = "mutado"

	turns2, ok := r.History("s1")
	require.True(t, ok)
	assert.Equal(t, "instrucciones", turns2[0].Text)
}

func TestDeleteReportsExistence(t *testing.T) {
	r := NewSessionRegistry(time.Hour, 10)
	defer r.Stop()

	r.CreateIfAbsent("s1", seedTurns())
	assert.True(t, r.Delete("s1"))
	assert.False(t, r.Delete("s1"))
	assert.Equal(t, 0, r.Len())
}

func TestEvictsLeastActiveAtCapacity(t *testing.T) {
	r := NewSessionRegistry(time.Hour, 2)
	defer r.Stop()

	r.CreateIfAbsent("vieja", seedTurns())
	time.Sleep(5 * time.Millisecond)
	r.CreateIfAbsent("media", seedTurns())
	time.Sleep(5 * time.Millisecond)

	// Tocar "vieja" la vuelve la más activa; "media" queda como víctima.
	_, ok := r.History("vieja")
	require.True(t, ok)

	r.CreateIfAbsent("nueva", seedTurns())
	assert.Equal(t, 2, r.Len())

	_, ok = r.History("media")
	assert.False(t, ok)
	_, ok = r.History("vieja")
	assert.True(t, ok)
	_, ok = r.History("nueva")
	assert.True(t, ok)
}

func TestBarrerOciosas(t *testing.T) {
	r := NewSessionRegistry(time.Minute, 10)
	defer r.Stop()

	r.CreateIfAbsent("ociosa", seedTurns())
	r.CreateIfAbsent("activa", seedTurns())

	r.mu.Lock()
	r.sesiones["ociosa"].lastActive = time.Now().Add(-2 * time.Minute)
	r.mu.Unlock()

	r.barrerOciosas()

	_, ok := r.History("ociosa")
	assert.False(t, ok)
	_, ok = r.History("activa")
	assert.True(t, ok)
}
