package service

import (
	"testing"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/internal/quota"
	"github.com/pdfplace/pdfplace/internal/store"
	"github.com/pdfplace/pdfplace/internal/validators"
)

// testEnv is a full service stack on top of an in-memory key-value store.
type testEnv struct {
	kv       *store.MemoryKV
	storages *store.Storages
	services *Services
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithLimits(t, 1<<20, 1<<10, quota.DefaultLimits())
}

// newTestEnvWithLimits builds the stack with explicit persistence ceilings
// and quota limits so tests can force degradation and rejection paths.
func newTestEnvWithLimits(t *testing.T, ceilingBytes, perRecordBytes int64, limits quota.Limits) *testEnv {
	t.Helper()

	log := logger.Nop()
	kv := store.NewMemoryKV(0)
	storages := &store.Storages{
		KV:       kv,
		Records:  store.NewRecordStore(),
		Catalog:  store.NewCatalogPersistence(kv, ceilingBytes, perRecordBytes, log),
		History:  store.NewDownloadHistoryLog(kv, log),
		Comments: store.NewCommentLog(kv, log),
		Session:  store.NewSessionStore(kv, "test-key", "pdfplace", log),
	}

	auth := NewAuthService(storages.Session, log)
	services := &Services{
		Auth: auth,
		Catalog: NewCatalogService(
			storages.Records,
			storages.Catalog,
			storages.History,
			validators.NewDocumentValidator(),
			limits,
			auth,
			log,
		),
		History:  NewHistoryService(storages.History, log),
		Feedback: NewFeedbackService(storages.Comments, validators.NewFeedbackValidator(), auth, log),
	}

	return &testEnv{kv: kv, storages: storages, services: services}
}
