package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfplace/pdfplace/models"
)

func TestHistoryService_ListAndClear(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.storages.History.Append(ctx, models.DownloadEvent{
		ID:           "evt-1",
		RecordID:     "rec-1",
		Filename:     "physics.pdf",
		Category:     models.CategoryNCERT,
		DownloadedAt: time.Now(),
		SizeBytes:    1024,
	})
	require.NoError(t, err)

	events, err := env.services.History.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "physics.pdf", events[0].Filename)

	require.NoError(t, env.services.History.Clear(ctx))

	events, err = env.services.History.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}
