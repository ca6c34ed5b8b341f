package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/models"
)

// downloadHistoryLimit caps the persisted download log: inserting beyond it
// evicts the oldest entries.
const downloadHistoryLimit = 100

// DownloadHistoryLog is the append-bounded persisted log of download
// events, newest first, capped at downloadHistoryLimit entries.
type DownloadHistoryLog struct {
	kv     KeyValue
	logger *logger.Logger
}

func NewDownloadHistoryLog(kv KeyValue, log *logger.Logger) *DownloadHistoryLog {
	return &DownloadHistoryLog{kv: kv, logger: log}
}

// Append prepends the event and persists the trimmed log. Events beyond the
// cap fall off the old end.
func (l *DownloadHistoryLog) Append(ctx context.Context, event models.DownloadEvent) error {
	events, err := l.List(ctx)
	if err != nil {
		return fmt.Errorf("load download history: %w", err)
	}

	events = append([]models.DownloadEvent{event}, events...)
	if len(events) > downloadHistoryLimit {
		events = events[:downloadHistoryLimit]
	}

	encoded, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode download history: %w", err)
	}

	if err = l.kv.Set(ctx, KeyDownloadHistory, string(encoded)); err != nil {
		l.logger.Err(err).
			Str("func", "DownloadHistoryLog.Append").
			Str("record_id", event.RecordID).
			Msg("failed to persist download history")
		return fmt.Errorf("persist download history: %w", err)
	}

	return nil
}

// List returns all logged events, newest first. A missing entry is an empty
// log, not an error.
func (l *DownloadHistoryLog) List(ctx context.Context) ([]models.DownloadEvent, error) {
	value, err := l.kv.Get(ctx, KeyDownloadHistory)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read download history: %w", err)
	}

	var events []models.DownloadEvent
	if err := json.Unmarshal([]byte(value), &events); err != nil {
		return nil, fmt.Errorf("decode download history: %w", err)
	}

	return events, nil
}

// Clear removes the whole history entry.
func (l *DownloadHistoryLog) Clear(ctx context.Context) error {
	if err := l.kv.Delete(ctx, KeyDownloadHistory); err != nil {
		return fmt.Errorf("clear download history: %w", err)
	}
	return nil
}
