package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/internal/pdf"
	"github.com/pdfplace/pdfplace/internal/quota"
	"github.com/pdfplace/pdfplace/internal/store"
	"github.com/pdfplace/pdfplace/internal/validators"
	"github.com/pdfplace/pdfplace/models"
)

type catalogService struct {
	records     *store.RecordStore
	persistence *store.CatalogPersistence
	history     *store.DownloadHistoryLog
	validator   validators.Validator
	limits      quota.Limits
	session     SessionProvider
	logger      *logger.Logger
}

func NewCatalogService(
	records *store.RecordStore,
	persistence *store.CatalogPersistence,
	history *store.DownloadHistoryLog,
	validator validators.Validator,
	limits quota.Limits,
	session SessionProvider,
	log *logger.Logger,
) CatalogService {
	return &catalogService{
		records:     records,
		persistence: persistence,
		history:     history,
		validator:   validator,
		limits:      limits,
		session:     session,
		logger:      log,
	}
}

func (c *catalogService) Bootstrap(ctx context.Context) error {
	loaded, err := c.persistence.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	// Session-only records were persisted without their payload. If the
	// mirror still holds it (same process re-bootstrap) the record is
	// restored to full fidelity; otherwise the payload is gone for good.
	for i := range loaded {
		if loaded[i].Residency != models.ResidencySessionOnly {
			continue
		}
		if payload, ok := c.persistence.MirrorPayload(loaded[i].ID); ok {
			loaded[i].Payload = payload
			loaded[i].Residency = models.ResidencyFull
			continue
		}
		loaded[i].Residency = models.ResidencyAbsent
	}

	c.records.Replace(loaded)
	c.logger.Info().
		Int("records", len(loaded)).
		Msg("catalog loaded")
	return nil
}

func (c *catalogService) Upload(ctx context.Context, upload models.Upload) (models.Record, error) {
	if !c.session.Current().IsAdmin {
		return models.Record{}, ErrPermissionDenied
	}

	if err := c.validator.Validate(ctx, upload); err != nil {
		return models.Record{}, fmt.Errorf("validate upload: %w", err)
	}

	candidate := quota.EncodedSize(int64(len(upload.Content)))
	usage := quota.CatalogUsage(c.records.All())
	if err := c.limits.AdmitUpload(candidate, usage); err != nil {
		return models.Record{}, err
	}

	record := models.Record{
		ID:         newID(),
		Filename:   upload.Filename,
		Category:   upload.Category.Normalize(),
		SizeBytes:  int64(len(upload.Content)),
		UploadedAt: time.Now(),
		Payload:    models.EncodePayload(upload.Content),
		Residency:  models.ResidencyFull,
	}

	if err := c.records.Insert(record); err != nil {
		return models.Record{}, fmt.Errorf("insert record: %w", err)
	}

	c.persist(ctx)
	c.logger.Info().
		Str("id", record.ID).
		Str("filename", record.Filename).
		Int64("size", record.SizeBytes).
		Msg("document uploaded")
	return record, nil
}

func (c *catalogService) Download(ctx context.Context, id string) (DownloadResult, error) {
	record, ok := c.records.FindByID(id)
	if !ok {
		return DownloadResult{}, fmt.Errorf("%w: id=%s", ErrRecordNotFound, id)
	}

	result := DownloadResult{Filename: record.Filename}

	payload := record.Payload
	if payload == "" {
		payload, _ = c.persistence.MirrorPayload(id)
	}
	if payload != "" {
		content, err := models.DecodePayload(payload)
		if err != nil {
			return DownloadResult{}, fmt.Errorf("decode payload: %w", err)
		}
		result.Content = content
	} else {
		result.Content = pdf.Placeholder(record.Filename)
		result.Placeholder = true
	}

	if err := c.records.Update(id, func(r *models.Record) {
		r.DownloadCount++
	}); err != nil {
		return DownloadResult{}, fmt.Errorf("update download count: %w", err)
	}
	c.persist(ctx)

	event := models.DownloadEvent{
		ID:           newID(),
		RecordID:     record.ID,
		Filename:     record.Filename,
		Category:     record.Category,
		DownloadedAt: time.Now(),
		SizeBytes:    record.SizeBytes,
	}
	if err := c.history.Append(ctx, event); err != nil {
		// A full history log never blocks the download itself.
		c.logger.Warn().Err(err).
			Str("func", "catalogService.Download").
			Msg("failed to log download event")
	}

	return result, nil
}

func (c *catalogService) Delete(ctx context.Context, id string) error {
	if !c.session.Current().IsAdmin {
		return ErrPermissionDenied
	}

	removed, err := c.records.Remove(id)
	if err != nil {
		return fmt.Errorf("%w: id=%s", ErrRecordNotFound, id)
	}

	c.persist(ctx)
	c.logger.Info().
		Str("id", removed.ID).
		Str("filename", removed.Filename).
		Msg("document deleted")
	return nil
}

func (c *catalogService) ClearAll(ctx context.Context) error {
	if !c.session.Current().IsAdmin {
		return ErrPermissionDenied
	}

	removed := c.records.Clear()
	c.persist(ctx)
	c.logger.Info().
		Int("records", len(removed)).
		Msg("catalog cleared")
	return nil
}

func (c *catalogService) List(_ context.Context) []models.Record {
	return c.records.All()
}

func (c *catalogService) Search(_ context.Context, query string) []models.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.records.All()
	}

	var out []models.Record
	for _, rec := range c.records.All() {
		if strings.Contains(strings.ToLower(rec.Filename), query) {
			out = append(out, rec)
		}
	}
	return out
}

func (c *catalogService) FilterByCategory(_ context.Context, category models.Category) []models.Record {
	var out []models.Record
	for _, rec := range c.records.All() {
		if rec.Category == category {
			out = append(out, rec)
		}
	}
	return out
}

func (c *catalogService) Usage(_ context.Context) UsageReport {
	used := quota.CatalogUsage(c.records.All())
	ratio := c.limits.UsageRatio(used)
	return UsageReport{
		UsedBytes:  used,
		LimitBytes: c.limits.MaxTotalBytes,
		Ratio:      ratio,
		Band:       c.limits.Classify(ratio),
	}
}

// exportEntry is the shape of one record in the exported files list.
type exportEntry struct {
	Filename   string `json:"filename"`
	Category   string `json:"category"`
	UploadDate string `json:"upload_date"`
	Size       string `json:"size"`
	Downloads  int64  `json:"downloads"`
}

func (c *catalogService) ExportList(_ context.Context) ([]byte, error) {
	if !c.session.Current().IsAdmin {
		return nil, ErrPermissionDenied
	}

	records := c.records.All()
	entries := make([]exportEntry, len(records))
	for i, rec := range records {
		entries[i] = exportEntry{
			Filename:   rec.Filename,
			Category:   rec.Category.DisplayName(),
			UploadDate: rec.UploadedAt.Format(time.RFC3339),
			Size:       FormatFileSize(rec.SizeBytes),
			Downloads:  rec.DownloadCount,
		}
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode files list: %w", err)
	}
	return out, nil
}

// persist walks the catalog down the persistence ladder and applies the
// resulting residency back onto the live records. Persistence failure is
// never fatal to the calling operation.
func (c *catalogService) persist(ctx context.Context) {
	result, err := c.persistence.Save(ctx, c.records.All())
	if err != nil {
		c.logger.Warn().Err(err).
			Str("func", "catalogService.persist").
			Msg("catalog could not be persisted, in-memory state kept")
	}
	if result.Degraded() {
		c.logger.Warn().
			Str("tier", result.Tier.String()).
			Msg("catalog persisted at reduced fidelity")
	}

	for id, residency := range result.Residency {
		updateErr := c.records.Update(id, func(r *models.Record) {
			r.Residency = residency
		})
		if updateErr != nil {
			c.logger.Warn().Err(updateErr).
				Str("func", "catalogService.persist").
				Str("id", id).
				Msg("failed to apply persisted residency")
		}
	}
}

func newID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
