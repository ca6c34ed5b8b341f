// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pdfplace Authors

package service

import (
	"context"

	"github.com/pdfplace/pdfplace/internal/quota"
	"github.com/pdfplace/pdfplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UsageReport is a point-in-time snapshot of catalog storage consumption.
type UsageReport struct {
	// UsedBytes is the encoded size of every payload-bearing record.
	UsedBytes int64

	// LimitBytes is the configured total storage ceiling.
	LimitBytes int64

	// Ratio is UsedBytes/LimitBytes, in [0, 1] under normal operation.
	Ratio float64

	// Band is the pressure classification of Ratio.
	Band quota.Band
}

// DownloadResult is the outcome of a completed download.
type DownloadResult struct {
	// Filename is the display name to save the content under.
	Filename string

	// Content is the raw document bytes. When the real payload is no
	// longer available this is a generated placeholder document.
	Content []byte

	// Placeholder reports whether Content is a placeholder rather than the
	// originally uploaded document.
	Placeholder bool
}

// SessionProvider exposes the active session to services that gate
// operations on identity or privileges.
type SessionProvider interface {
	// Current returns the active session; the zero value means logged out.
	Current() models.Session
}

// AuthService manages login state. Credentials are checked against a local
// account list; the resulting session is persisted so it survives restarts.
type AuthService interface {
	SessionProvider

	// Login authenticates the email/password pair, activates the resulting
	// session and persists it. Returns ErrInvalidCredentials when the pair
	// matches no account.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Logout deactivates and erases the persisted session. Calling it while
	// logged out is a no-op.
	Logout(ctx context.Context) error

	// Restore rehydrates the session persisted by a previous process, if
	// any. A missing or unverifiable entry leaves the state logged out
	// without error.
	Restore(ctx context.Context) (models.Session, error)
}

// CatalogService manages the document catalog: uploads, downloads,
// deletion and storage accounting. All mutations persist the catalog
// through the tiered degradation ladder, so a full storage area degrades
// fidelity instead of failing the operation.
type CatalogService interface {
	// Bootstrap rehydrates the live catalog from the persisted copy and
	// reconciles payload residency against the session mirror. Called once
	// at startup before any other catalog operation.
	Bootstrap(ctx context.Context) error

	// Upload validates the document, checks it against quota limits, adds
	// it to the catalog and persists. Admin only. Returns the new record.
	Upload(ctx context.Context, upload models.Upload) (models.Record, error)

	// Download resolves the record's content (falling back to the session
	// mirror, then to a placeholder), increments its download counter and
	// appends a history event. Open to all users.
	Download(ctx context.Context, id string) (DownloadResult, error)

	// Delete removes the record and persists the shrunken catalog. Admin
	// only.
	Delete(ctx context.Context, id string) error

	// ClearAll removes every record and persists the empty catalog. Admin
	// only.
	ClearAll(ctx context.Context) error

	// List returns the catalog newest-first.
	List(ctx context.Context) []models.Record

	// Search returns the records whose filename contains the query,
	// case-insensitively. An empty query returns the whole catalog.
	Search(ctx context.Context, query string) []models.Record

	// FilterByCategory returns the records in the given category.
	FilterByCategory(ctx context.Context, category models.Category) []models.Record

	// Usage reports current storage consumption and its pressure band.
	Usage(ctx context.Context) UsageReport

	// ExportList renders the catalog metadata as a JSON document for
	// download. Admin only.
	ExportList(ctx context.Context) ([]byte, error)
}

// HistoryService exposes the download history log.
type HistoryService interface {
	// List returns logged download events, newest first.
	List(ctx context.Context) ([]models.DownloadEvent, error)

	// Clear erases the whole history.
	Clear(ctx context.Context) error
}

// FeedbackService manages user feedback. Submitting requires a login;
// moderation requires admin privileges.
type FeedbackService interface {
	// Submit validates and stores a new comment authored by the current
	// user. Returns ErrNotLoggedIn when no session is active.
	Submit(ctx context.Context, category models.CommentCategory, text string) (models.Comment, error)

	// List returns all comments, newest first.
	List(ctx context.Context) ([]models.Comment, error)

	// SetStatus moves a comment through the moderation workflow. Admin
	// only.
	SetStatus(ctx context.Context, id string, status models.CommentStatus) error

	// Delete removes a comment. Admin only.
	Delete(ctx context.Context, id string) error
}
