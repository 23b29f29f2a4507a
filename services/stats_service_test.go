package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	ms, repo, cleanup := setupMailService(t)
	defer cleanup()
	ctx := context.Background()

	ss := NewStatsService(repo)

	stats, err := ss.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Unread)

	first := sendTestMail(t, ms, "Q38", "Q09", "one")
	sendTestMail(t, ms, "Q09", "Q38", "two")
	require.NoError(t, ms.MarkAsRead(ctx, first.ID, "Q09"))

	stats, err = ss.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Unread)
}
