package models

import "time"

// DownloadEvent is a single entry of the download history log.
//
// RecordID is a weak reference: the record may have been deleted since the
// download happened. Filename, Category and SizeBytes are denormalized
// copies so the entry stays displayable after the record is gone.
type DownloadEvent struct {
	// ID is the opaque unique identifier of the event.
	ID string `json:"id"`

	// RecordID is the identifier of the downloaded record at the time of
	// the download.
	RecordID string `json:"record_id"`

	// Filename is the record's display name, copied at download time.
	Filename string `json:"filename"`

	// Category is the record's category, copied at download time.
	Category Category `json:"category"`

	// DownloadedAt is the time the download completed.
	DownloadedAt time.Time `json:"download_date"`

	// SizeBytes is the record's logical payload size, copied at download
	// time.
	SizeBytes int64 `json:"size"`
}
