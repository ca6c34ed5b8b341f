package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/internal/pdf"
	"github.com/pdfplace/pdfplace/internal/quota"
	"github.com/pdfplace/pdfplace/internal/store"
	"github.com/pdfplace/pdfplace/internal/validators"
	"github.com/pdfplace/pdfplace/models"
)

func loginAdmin(t *testing.T, env *testEnv) {
	t.Helper()
	_, err := env.services.Auth.Login(context.Background(), "admin@pdfplace.com", "admin123")
	require.NoError(t, err)
}

func testUpload(filename string, category models.Category) models.Upload {
	return models.Upload{
		Filename: filename,
		Category: category,
		Content:  pdf.Placeholder(filename),
	}
}

func TestCatalogService_UploadRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.Catalog.Upload(context.Background(), testUpload("a.pdf", models.CategoryNCERT))
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCatalogService_Upload(t *testing.T) {
	env := newTestEnv(t)
	loginAdmin(t, env)
	ctx := context.Background()

	record, err := env.services.Catalog.Upload(ctx, testUpload("notes.pdf", models.CategoryPWNotes))
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "notes.pdf", record.Filename)
	assert.Equal(t, models.CategoryPWNotes, record.Category)
	assert.Equal(t, models.ResidencyFull, record.Residency)
	assert.NotZero(t, record.SizeBytes)

	listed := env.services.Catalog.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, record.ID, listed[0].ID)
}

func TestCatalogService_UploadRejectsNonPDF(t *testing.T) {
	env := newTestEnv(t)
	loginAdmin(t, env)

	_, err := env.services.Catalog.Upload(context.Background(), models.Upload{
		Filename: "notes.pdf",
		Category: models.CategoryNCERT,
		Content:  []byte("not a pdf at all"),
	})
	assert.ErrorIs(t, err, validators.ErrNotPDF)
}

func TestCatalogService_UploadQuotaRejection(t *testing.T) {
	// Record ceiling below the placeholder's encoded size forces rejection.
	limits := quota.Limits{
		MaxRecordBytes: 16,
		MaxTotalBytes:  1 << 20,
		WarningRatio:   0.8,
		CriticalRatio:  0.9,
	}
	env := newTestEnvWithLimits(t, 1<<20, 1<<10, limits)
	loginAdmin(t, env)

	_, err := env.services.Catalog.Upload(context.Background(), testUpload("big.pdf", models.CategoryOthers))
	assert.ErrorIs(t, err, quota.ErrRecordTooLarge)
	assert.Empty(t, env.services.Catalog.List(context.Background()))
}

func TestCatalogService_UploadTotalQuotaRejection(t *testing.T) {
	content := pdf.Placeholder("a.pdf")
	encoded := quota.EncodedSize(int64(len(content)))

	// Total quota fits one upload but not two.
	limits := quota.Limits{
		MaxRecordBytes: encoded,
		MaxTotalBytes:  encoded + encoded/2,
		WarningRatio:   0.8,
		CriticalRatio:  0.9,
	}
	env := newTestEnvWithLimits(t, 1<<20, 1<<20, limits)
	loginAdmin(t, env)
	ctx := context.Background()

	_, err := env.services.Catalog.Upload(ctx, testUpload("a.pdf", models.CategoryOthers))
	require.NoError(t, err)

	_, err = env.services.Catalog.Upload(ctx, testUpload("b.pdf", models.CategoryOthers))
	assert.ErrorIs(t, err, quota.ErrQuotaExceeded)
}

func TestCatalogService_DownloadCountsAndLogs(t *testing.T) {
	env := newTestEnv(t)
	loginAdmin(t, env)
	ctx := context.Background()

	record, err := env.services.Catalog.Upload(ctx, testUpload("notes.pdf", models.CategoryNCERT))
	require.NoError(t, err)

	result, err := env.services.Catalog.Download(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "notes.pdf", result.Filename)
	assert.False(t, result.Placeholder)
	assert.Equal(t, pdf.Placeholder("notes.pdf"), result.Content)

	listed := env.services.Catalog.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(1), listed[0].DownloadCount)

	events, err := env.services.History.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, record.ID, events[0].RecordID)
	assert.Equal(t, "notes.pdf", events[0].Filename)
}

func TestCatalogService_DownloadMissingRecord(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.Catalog.Download(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCatalogService_DownloadAbsentPayloadServesPlaceholder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.storages.Records.Replace([]models.Record{{
		ID:        "ghost",
		Filename:  "ghost.pdf",
		Category:  models.CategoryOthers,
		SizeBytes: 123,
		Residency: models.ResidencyAbsent,
	}})

	result, err := env.services.Catalog.Download(ctx, "ghost")
	require.NoError(t, err)
	assert.True(t, result.Placeholder)
	assert.Contains(t, string(result.Content), "ghost.pdf")
}

func TestCatalogService_DeleteRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)

	err := env.services.Catalog.Delete(context.Background(), "any")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCatalogService_DeleteAndClearAll(t *testing.T) {
	env := newTestEnv(t)
	loginAdmin(t, env)
	ctx := context.Background()

	a, err := env.services.Catalog.Upload(ctx, testUpload("a.pdf", models.CategoryNCERT))
	require.NoError(t, err)
	_, err = env.services.Catalog.Upload(ctx, testUpload("b.pdf", models.CategoryPYQs))
	require.NoError(t, err)

	require.NoError(t, env.services.Catalog.Delete(ctx, a.ID))
	assert.Len(t, env.services.Catalog.List(ctx), 1)

	err = env.services.Catalog.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	require.NoError(t, env.services.Catalog.ClearAll(ctx))
	assert.Empty(t, env.services.Catalog.List(ctx))

	// The persisted copy is empty too.
	loaded, err := env.storages.Catalog.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCatalogService_SearchAndFilter(t *testing.T) {
	env := newTestEnv(t)
	loginAdmin(t, env)
	ctx := context.Background()

	_, err := env.services.Catalog.Upload(ctx, testUpload("physics-notes.pdf", models.CategoryPWNotes))
	require.NoError(t, err)
	_, err = env.services.Catalog.Upload(ctx, testUpload("chemistry-notes.pdf", models.CategoryPWNotes))
	require.NoError(t, err)
	_, err = env.services.Catalog.Upload(ctx, testUpload("mock-01.pdf", models.CategoryMockTest))
	require.NoError(t, err)

	found := env.services.Catalog.Search(ctx, "PHYSICS")
	require.Len(t, found, 1)
	assert.Equal(t, "physics-notes.pdf", found[0].Filename)

	assert.Len(t, env.services.Catalog.Search(ctx, ""), 3)
	assert.Empty(t, env.services.Catalog.Search(ctx, "biology"))

	notes := env.services.Catalog.FilterByCategory(ctx, models.CategoryPWNotes)
	assert.Len(t, notes, 2)
	assert.Empty(t, env.services.Catalog.FilterByCategory(ctx, models.CategoryNCERT))
}

func TestCatalogService_Usage(t *testing.T) {
	env := newTestEnv(t)
	loginAdmin(t, env)
	ctx := context.Background()

	report := env.services.Catalog.Usage(ctx)
	assert.Zero(t, report.UsedBytes)
	assert.Equal(t, quota.BandNormal, report.Band)

	record, err := env.services.Catalog.Upload(ctx, testUpload("a.pdf", models.CategoryNCERT))
	require.NoError(t, err)

	report = env.services.Catalog.Usage(ctx)
	assert.Equal(t, quota.EncodedSize(record.SizeBytes), report.UsedBytes)
	assert.Greater(t, report.Ratio, 0.0)
}

func TestCatalogService_ExportList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.Catalog.ExportList(ctx)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	loginAdmin(t, env)
	_, err = env.services.Catalog.Upload(ctx, testUpload("a.pdf", models.CategoryNCERT))
	require.NoError(t, err)

	out, err := env.services.Catalog.ExportList(ctx)
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(out, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "a.pdf", entries[0]["filename"])
	assert.Equal(t, "NCERT", entries[0]["category"])
}

func TestCatalogService_BootstrapReconcilesResidency(t *testing.T) {
	// Persistence ceiling forces the stripped tier: the payload survives
	// only in the session mirror.
	limits := quota.DefaultLimits()
	env := newTestEnvWithLimits(t, 512, 64, limits)
	loginAdmin(t, env)
	ctx := context.Background()

	record, err := env.services.Catalog.Upload(ctx, testUpload("big.pdf", models.CategoryOthers))
	require.NoError(t, err)

	listed := env.services.Catalog.List(ctx)
	require.Len(t, listed, 1)
	require.Equal(t, models.ResidencySessionOnly, listed[0].Residency)

	// Re-bootstrap within the same process: the mirror restores the payload.
	require.NoError(t, env.services.Catalog.Bootstrap(ctx))
	listed = env.services.Catalog.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, models.ResidencyFull, listed[0].Residency)
	assert.NotEmpty(t, listed[0].Payload)

	// A fresh process has an empty mirror: the payload is gone for good.
	log := logger.Nop()
	freshRecords := store.NewRecordStore()
	freshPersistence := store.NewCatalogPersistence(env.kv, 512, 64, log)
	fresh := NewCatalogService(
		freshRecords,
		freshPersistence,
		env.storages.History,
		validators.NewDocumentValidator(),
		limits,
		env.services.Auth,
		log,
	)

	require.NoError(t, fresh.Bootstrap(ctx))
	listed = fresh.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, record.ID, listed[0].ID)
	assert.Equal(t, models.ResidencyAbsent, listed[0].Residency)
	assert.Empty(t, listed[0].Payload)

	// Downloading the absent record still works via the placeholder.
	result, err := fresh.Download(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, result.Placeholder)
}
