package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-pro/pkg/session"
)

func TestStore_CreateYGet(t *testing.T) {
	store := session.NewStore(time.Minute, time.Minute)
	defer store.Stop()

	sid := store.Create(42)
	require.NotEmpty(t, sid)

	userID, ok := store.Get(sid)
	require.True(t, ok)
	assert.Equal(t, 42, userID)

	// Cada sesión recibe un id distinto.
	other := store.Create(42)
	assert.NotEqual(t, sid, other)
}

func TestStore_GetSesionInexistente(t *testing.T) {
	store := session.NewStore(time.Minute, time.Minute)
	defer store.Stop()

	_, ok := store.Get("no-existe")
	assert.False(t, ok)
}

// Una sesión vencida cuenta como inexistente aunque el janitor no haya corrido.
func TestStore_SesionExpiradaNoResuelve(t *testing.T) {
	store := session.NewStore(10*time.Millisecond, time.Hour)
	defer store.Stop()

	sid := store.Create(7)
	time.Sleep(30 * time.Millisecond)

	_, ok := store.Get(sid)
	assert.False(t, ok)
}

func TestStore_DestroyInvalidaLaSesion(t *testing.T) {
	store := session.NewStore(time.Minute, time.Minute)
	defer store.Stop()

	sid := store.Create(7)
	store.Destroy(sid)

	_, ok := store.Get(sid)
	assert.False(t, ok)

	// Destroy de un id desconocido es un no-op.
	store.Destroy("no-existe")
}
