package service

import (
	"github.com/pdfplace/pdfplace/internal/config"
	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/internal/quota"
	"github.com/pdfplace/pdfplace/internal/store"
	"github.com/pdfplace/pdfplace/internal/validators"
)

// Services groups the application services into a single value passed to
// the presentation layer.
type Services struct {
	Auth     AuthService
	Catalog  CatalogService
	History  HistoryService
	Feedback FeedbackService
}

// NewServices wires the service layer on top of the storage layer.
func NewServices(storages *store.Storages, cfg *config.Config, log *logger.Logger) *Services {
	limits := quota.Limits{
		MaxRecordBytes: cfg.Quota.MaxRecordBytes,
		MaxTotalBytes:  cfg.Quota.MaxTotalBytes,
		WarningRatio:   cfg.Quota.WarningRatio,
		CriticalRatio:  cfg.Quota.CriticalRatio,
	}

	auth := NewAuthService(storages.Session, log)

	return &Services{
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
}
