package identity

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureIdentity_CreatesOnce(t *testing.T) {
	sut := NewManager(NewMemoryStore())

	first, err := sut.EnsureIdentity(context.Background(), "session-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, "cart_"))

	second, err := sut.EnsureIdentity(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, first, second, "identity is stable across calls")
}

func TestEnsureIdentity_NeverRegeneratesStoredIdentity(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.PutIfAbsent(context.Background(), "session-1", "cart_existing")
	require.NoError(t, err)

	sut := NewManager(store)
	id, err := sut.EnsureIdentity(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, "cart_existing", id)
}

func TestEnsureIdentity_DistinctSessions(t *testing.T) {
	sut := NewManager(NewMemoryStore())

	a, err := sut.EnsureIdentity(context.Background(), "session-a")
	require.NoError(t, err)
	b, err := sut.EnsureIdentity(context.Background(), "session-b")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "identities are never shared between sessions")
}

func TestEnsureIdentity_ConcurrentCallsAgree(t *testing.T) {
	sut := NewManager(NewMemoryStore())

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := sut.EnsureIdentity(context.Background(), "session-1")
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id, "a lost create race falls back to the stored winner")
	}
}
