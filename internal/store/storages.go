package store

import (
	"context"
	"fmt"

	"github.com/pdfplace/pdfplace/internal/config"
	"github.com/pdfplace/pdfplace/internal/logger"
)

// Storages groups all storage components into a single value that can be
// passed around the service layer.
type Storages struct {
	// KV is the underlying key-value repository; exposed for components
	// that persist their own entries.
	KV KeyValue

	// Records is the live in-memory catalog.
	Records *RecordStore

	// Catalog is the persistence adapter mapping Records onto KV.
	Catalog *CatalogPersistence

	// History is the capped download event log.
	History *DownloadHistoryLog

	// Comments is the feedback log.
	Comments *CommentLog

	// Session is the persisted login state.
	Session *SessionStore
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in
//     cfg.Storage.DB.DSN, creating the database file if it does not yet
//     exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh key-value
//     repository.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg *config.Config, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKeyValue(db, cfg.Storage.MaxValueBytes, log)

	return &Storages{
		KV:       kv,
		Records:  NewRecordStore(),
		Catalog:  NewCatalogPersistence(kv, cfg.Storage.PersistedCeilingBytes, cfg.Storage.PerRecordPersistBytes, log),
		History:  NewDownloadHistoryLog(kv, log),
		Comments: NewCommentLog(kv, log),
		Session:  NewSessionStore(kv, cfg.Session.TokenSignKey, cfg.Session.TokenIssuer, log),
	}, nil
}
