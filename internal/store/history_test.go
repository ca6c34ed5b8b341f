package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/models"
)

func testEvent(id string) models.DownloadEvent {
	return models.DownloadEvent{
		ID:           id,
		RecordID:     "rec-" + id,
		Filename:     id + ".pdf",
		Category:     models.CategoryNCERT,
		DownloadedAt: time.Now(),
		SizeBytes:    512,
	}
}

func TestDownloadHistoryLog_AppendNewestFirst(t *testing.T) {
	log := NewDownloadHistoryLog(NewMemoryKV(0), logger.Nop())
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, testEvent("1")))
	require.NoError(t, log.Append(ctx, testEvent("2")))

	events, err := log.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "2", events[0].ID)
	assert.Equal(t, "1", events[1].ID)
}

func TestDownloadHistoryLog_CapEvictsOldest(t *testing.T) {
	log := NewDownloadHistoryLog(NewMemoryKV(0), logger.Nop())
	ctx := context.Background()

	for i := 0; i < downloadHistoryLimit+5; i++ {
		require.NoError(t, log.Append(ctx, testEvent(fmt.Sprintf("%d", i))))
	}

	events, err := log.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, downloadHistoryLimit)

	// Newest entry survives at the front, the five oldest are gone.
	assert.Equal(t, fmt.Sprintf("%d", downloadHistoryLimit+4), events[0].ID)
	assert.Equal(t, "5", events[len(events)-1].ID)
}

func TestDownloadHistoryLog_ListMissingKey(t *testing.T) {
	log := NewDownloadHistoryLog(NewMemoryKV(0), logger.Nop())

	events, err := log.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDownloadHistoryLog_Clear(t *testing.T) {
	log := NewDownloadHistoryLog(NewMemoryKV(0), logger.Nop())
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, testEvent("1")))
	require.NoError(t, log.Clear(ctx))

	events, err := log.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}
