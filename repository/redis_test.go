package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qpost/go-qpost-server/types"
)

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, func() {
		client.Close()
		mr.Close()
	}
}

func TestLoadAllEmptyState(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	repo := NewRedisMailRepository(client)
	mails, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, mails)
	assert.Empty(t, mails)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	repo := NewRedisMailRepository(client)
	ctx := context.Background()

	sent := []*types.Mail{
		{
			ID:        "1693526400000-abc",
			From:      "Q38",
			To:        "Q09",
			Subject:   "Hi",
			Message:   "hello",
			Priority:  types.PriorityHigh,
			Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			IsRead:    false,
		},
		{
			ID:        "1693526400001-def",
			From:      "Q09",
			To:        "Q38",
			Subject:   "Re: Hi",
			Message:   "hello back",
			Priority:  types.PriorityNormal,
			Timestamp: time.Date(2026, 8, 1, 12, 1, 0, 0, time.UTC),
			IsRead:    true,
		},
	}

	require.NoError(t, repo.SaveAll(ctx, sent))
	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, sent, loaded)

	// save(load()) must not change collection contents
	require.NoError(t, repo.SaveAll(ctx, loaded))
	again, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestLoadAllCorruptBlob(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, MailCollectionKey, "{not json[", 0).Err())

	repo := NewRedisMailRepository(client)
	_, err := repo.LoadAll(ctx)
	assert.ErrorIs(t, err, types.ErrCorruptState)
}

func TestSaveAllOverwrites(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	repo := NewRedisMailRepository(client)
	ctx := context.Background()

	first := []*types.Mail{{ID: "a", From: "Q38", To: "Q09", Subject: "s", Message: "m", Priority: types.PriorityNormal, Timestamp: time.Now().UTC()}}
	second := []*types.Mail{}

	require.NoError(t, repo.SaveAll(ctx, first))
	require.NoError(t, repo.SaveAll(ctx, second))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
