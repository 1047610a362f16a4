// internal/session/cache_test.go
package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentreq-client/internal/common/database"
	"talentreq-client/internal/models"
)

func newTestCache(t *testing.T) *Cache {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { client.Close() })
	return NewCache(client)
}

func TestCache_SaveAndLoad(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	snap := models.SessionSnapshot{
		SessionID:   "sess-42",
		JobResponse: testRoster("sess-42"),
	}

	require.NoError(t, cache.Save(ctx, snap))

	loaded, err := cache.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "sess-42", loaded.SessionID)
	require.NotNil(t, loaded.JobResponse)
	assert.Equal(t, "REQ-1", loaded.JobResponse.JobDesc.RequisitionID)
	require.Len(t, loaded.JobResponse.Talents, 1)
	assert.Equal(t, "Dana Smith", loaded.JobResponse.Talents[0].EmployeeName)
}

func TestCache_LoadEmpty(t *testing.T) {
	cache := newTestCache(t)

	loaded, err := cache.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCache_Clear(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, models.SessionSnapshot{SessionID: "sess-1"}))
	require.NoError(t, cache.Clear(ctx))

	loaded, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_LogoutClearsCache(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	creds := &MemoryCredentials{}
	store := NewStore(Dependencies{
		Credentials: creds,
		Backend:     &fakeAuthBackend{token: "token-abc"},
		Cache:       cache,
	})

	require.NoError(t, store.Login(ctx, "dana@acme.example", "hunter2"))
	gen := store.BeginSelection()
	require.True(t, store.CommitSelection(ctx, gen, testRoster("sess-42")))

	loaded, err := cache.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	require.NoError(t, store.Logout(ctx))

	loaded, err = cache.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_InitLoadsCachedScreening(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, models.SessionSnapshot{
		SessionID:   "sess-42",
		JobResponse: testRoster("sess-42"),
	}))

	store := NewStore(Dependencies{
		Credentials: &MemoryCredentials{},
		Backend:     &fakeAuthBackend{},
		Cache:       cache,
	})

	require.NoError(t, store.Init(ctx))
	assert.Equal(t, "sess-42", store.SessionID())
	require.NotNil(t, store.Roster())
}
