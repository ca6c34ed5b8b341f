package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/models"
)

// Stable keys of the persisted key-value entries.
const (
	KeyCatalog         = "catalog"
	KeyDownloadHistory = "downloadHistory"
	KeyComments        = "comments"
	KeySession         = "session"
)

// SaveTier identifies the fidelity level at which a catalog save landed.
type SaveTier int

const (
	// TierFull: every record persisted with its full payload.
	TierFull SaveTier = iota + 1

	// TierStripped: records whose encoded payload exceeds the per-record
	// threshold were persisted without it; the rest kept their payloads.
	TierStripped

	// TierMetadataOnly: no payloads persisted at all.
	TierMetadataOnly
)

func (t SaveTier) String() string {
	switch t {
	case TierFull:
		return "full"
	case TierStripped:
		return "stripped"
	case TierMetadataOnly:
		return "metadata-only"
	default:
		return "unknown"
	}
}

// SaveResult describes the outcome of one walk down the persistence ladder.
type SaveResult struct {
	// Tier is the fidelity level the save landed on.
	Tier SaveTier

	// Residency maps each record id to the residency that was persisted
	// for it. The caller applies these to the live catalog so in-memory
	// state always matches the persisted (possibly truncated) metadata.
	Residency map[string]models.PayloadResidency
}

// Degraded reports whether the save landed below full fidelity. The caller
// surfaces this as a non-fatal warning.
func (r SaveResult) Degraded() bool {
	return r.Tier != TierFull
}

// CatalogPersistence maps the in-memory catalog onto the size-constrained
// key-value store, degrading through three fidelity tiers instead of ever
// failing the save, and keeps the unconstrained session mirror that serves
// payload reads for the lifetime of the process.
type CatalogPersistence struct {
	kv             KeyValue
	ceilingBytes   int64
	perRecordBytes int64
	logger         *logger.Logger

	mirrorMu sync.RWMutex
	mirror   map[string]models.Record
}

// NewCatalogPersistence constructs the adapter. ceilingBytes is the size
// budget for the encoded catalog value; perRecordBytes is the encoded
// payload size above which a single record is stripped at Tier 2.
func NewCatalogPersistence(kv KeyValue, ceilingBytes, perRecordBytes int64, log *logger.Logger) *CatalogPersistence {
	return &CatalogPersistence{
		kv:             kv,
		ceilingBytes:   ceilingBytes,
		perRecordBytes: perRecordBytes,
		mirror:         make(map[string]models.Record),
		logger:         log,
	}
}

// Save persists the catalog at the highest fidelity tier that fits.
//
// Tier 1 keeps every payload inline when the whole encoding fits under the
// ceiling. Tier 2 strips only the records whose encoded payload exceeds the
// per-record threshold. Tier 3 persists metadata only. A write failure at
// any tier drops to Tier 3; only a Tier 3 write failure surfaces as an
// error, and even that leaves the in-memory state intact, so callers treat
// it as a warning.
//
// Regardless of tier, the session mirror is updated first to hold the full
// record set, payloads included. It is never degraded.
func (p *CatalogPersistence) Save(ctx context.Context, records []models.Record) (SaveResult, error) {
	log := p.logger

	mirror := make(map[string]models.Record, len(records))
	for _, rec := range records {
		mirror[rec.ID] = rec
	}
	p.mirrorMu.Lock()
	p.mirror = mirror
	p.mirrorMu.Unlock()

	// Tier 1: full payloads.
	full := make([]models.Record, len(records))
	for i, rec := range records {
		full[i] = persistedForm(rec, false)
	}
	encoded, err := json.Marshal(full)
	if err != nil {
		return SaveResult{}, fmt.Errorf("encode catalog: %w", err)
	}

	if int64(len(encoded)) <= p.ceilingBytes {
		setErr := p.kv.Set(ctx, KeyCatalog, string(encoded))
		if setErr == nil {
			return SaveResult{Tier: TierFull, Residency: residencyOf(full)}, nil
		}
		log.Warn().Err(setErr).
			Str("func", "CatalogPersistence.Save").
			Msg("full-payload write failed, falling back to metadata-only")
		return p.saveMetadataOnly(ctx, records)
	}

	// Tier 2: strip oversized payloads.
	stripped := make([]models.Record, len(records))
	for i, rec := range records {
		stripped[i] = persistedForm(rec, int64(len(rec.Payload)) > p.perRecordBytes)
	}
	encoded, err = json.Marshal(stripped)
	if err != nil {
		return SaveResult{}, fmt.Errorf("encode stripped catalog: %w", err)
	}

	if int64(len(encoded)) <= p.ceilingBytes {
		setErr := p.kv.Set(ctx, KeyCatalog, string(encoded))
		if setErr == nil {
			log.Debug().
				Str("func", "CatalogPersistence.Save").
				Int("records", len(records)).
				Msg("catalog persisted with oversized payloads stripped")
			return SaveResult{Tier: TierStripped, Residency: residencyOf(stripped)}, nil
		}
		log.Warn().Err(setErr).
			Str("func", "CatalogPersistence.Save").
			Msg("stripped write failed, falling back to metadata-only")
	}

	return p.saveMetadataOnly(ctx, records)
}

// saveMetadataOnly is Tier 3: every record persisted without its payload.
func (p *CatalogPersistence) saveMetadataOnly(ctx context.Context, records []models.Record) (SaveResult, error) {
	meta := make([]models.Record, len(records))
	for i, rec := range records {
		meta[i] = persistedForm(rec, true)
	}
	encoded, err := json.Marshal(meta)
	if err != nil {
		return SaveResult{}, fmt.Errorf("encode catalog metadata: %w", err)
	}

	result := SaveResult{Tier: TierMetadataOnly, Residency: residencyOf(meta)}
	if setErr := p.kv.Set(ctx, KeyCatalog, string(encoded)); setErr != nil {
		p.logger.Err(setErr).
			Str("func", "CatalogPersistence.saveMetadataOnly").
			Msg("metadata-only write failed")
		return result, fmt.Errorf("persist catalog metadata: %w", setErr)
	}

	return result, nil
}

// Load reads the persisted catalog, producing records with whatever
// residency was persisted. Returns an empty catalog when no entry exists.
// The caller reconciles the result against the session mirror to restore
// full residency where the mirror still holds the payload.
func (p *CatalogPersistence) Load(ctx context.Context) ([]models.Record, error) {
	value, err := p.kv.Get(ctx, KeyCatalog)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read persisted catalog: %w", err)
	}

	var records []models.Record
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("decode persisted catalog: %w", err)
	}

	for i := range records {
		records[i].Category = records[i].Category.Normalize()
		if records[i].Residency == "" {
			// Entries written before residency existed: infer from content.
			if records[i].Payload != "" {
				records[i].Residency = models.ResidencyFull
			} else {
				records[i].Residency = models.ResidencyAbsent
			}
		}
	}

	return records, nil
}

// MirrorPayload returns the full payload held by the session mirror for the
// given record id, if any.
func (p *CatalogPersistence) MirrorPayload(id string) (string, bool) {
	p.mirrorMu.RLock()
	defer p.mirrorMu.RUnlock()

	rec, ok := p.mirror[id]
	if !ok || rec.Payload == "" {
		return "", false
	}
	return rec.Payload, true
}

// persistedForm returns the shape of rec that goes into the persisted
// encoding. Absent records stay absent; stripped or payload-less records
// are tagged session-only; everything else keeps its payload inline and is
// tagged full.
func persistedForm(rec models.Record, strip bool) models.Record {
	if rec.Residency == models.ResidencyAbsent {
		rec.Payload = ""
		return rec
	}
	if strip || rec.Payload == "" {
		return rec.StripPayload()
	}
	rec.Residency = models.ResidencyFull
	return rec
}

func residencyOf(records []models.Record) map[string]models.PayloadResidency {
	out := make(map[string]models.PayloadResidency, len(records))
	for _, rec := range records {
		out[rec.ID] = rec.Residency
	}
	return out
}

