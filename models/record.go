package models

import "time"

// Category classifies a cataloged document. The set is fixed; values read
// from persisted storage that are not in the set normalize to CategoryOthers
// for display.
type Category string

const (
	CategoryNCERT    Category = "ncert"
	CategoryPYQs     Category = "pyqs"
	CategoryMockTest Category = "mocktest"
	CategoryPWNotes  Category = "pw-notes"
	CategoryKGSNotes Category = "kgs-notes"
	CategoryOthers   Category = "others"
)

var categoryDisplayNames = map[Category]string{
	CategoryNCERT:    "NCERT",
	CategoryPYQs:     "PYQs",
	CategoryMockTest: "Mock Test",
	CategoryPWNotes:  "PW Notes",
	CategoryKGSNotes: "KGS Notes",
	CategoryOthers:   "Others",
}

// Normalize maps any unrecognized category value to CategoryOthers.
func (c Category) Normalize() Category {
	if _, ok := categoryDisplayNames[c]; ok {
		return c
	}
	return CategoryOthers
}

// DisplayName returns the human-readable label for the category.
func (c Category) DisplayName() string {
	return categoryDisplayNames[c.Normalize()]
}

// PayloadResidency tracks where a record's binary payload currently lives.
type PayloadResidency string

const (
	// ResidencyFull means the payload is held in the persisted store.
	ResidencyFull PayloadResidency = "full"

	// ResidencySessionOnly means the payload was stripped from the persisted
	// form and survives only in the in-process session mirror.
	ResidencySessionOnly PayloadResidency = "session_only"

	// ResidencyAbsent means the payload is gone: it was session-only and the
	// process that held the mirror has since restarted. The record cannot be
	// downloaded or previewed with real content until re-uploaded.
	ResidencyAbsent PayloadResidency = "absent"
)

// Record is a single cataloged document.
// It is the primary persistence model of the catalog.
type Record struct {
	// ID is the opaque unique identifier of the record. Assigned at
	// creation, immutable, never reused even after deletion.
	ID string `json:"id"`

	// Filename is the display name of the document. Non-empty, never used
	// as a key.
	Filename string `json:"filename"`

	// Category is the document's catalog category.
	Category Category `json:"category"`

	// SizeBytes is the logical (decoded) size of the underlying binary
	// payload. This is the ground-truth size; the encoded size is derived
	// from it on demand.
	SizeBytes int64 `json:"size"`

	// UploadedAt is the creation time of the record. Immutable.
	UploadedAt time.Time `json:"upload_timestamp"`

	// DownloadCount is the number of completed downloads of this record.
	// Monotonically non-decreasing while the record exists.
	DownloadCount int64 `json:"download_count"`

	// Payload is the base64 data-URI encoding of the document content.
	// Empty in the persisted copy when the record degraded to session-only
	// residency; the session mirror keeps the full value for the lifetime
	// of the process.
	Payload string `json:"file_data,omitempty"`

	// Residency records where the authoritative payload currently lives.
	Residency PayloadResidency `json:"residency"`
}

// HasPayload reports whether real document content is reachable for this
// record, either inline or via the session mirror.
func (r *Record) HasPayload() bool {
	return r.Residency != ResidencyAbsent
}

// StripPayload returns a copy of the record with the inline payload cleared
// and residency downgraded to session-only. Used when persisting a record
// whose payload exceeds the per-record persistence threshold, and by the
// metadata-only fallback tier for every record.
func (r Record) StripPayload() Record {
	r.Payload = ""
	r.Residency = ResidencySessionOnly
	return r
}
