package service

import (
	"context"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/internal/store"
	"github.com/pdfplace/pdfplace/models"
)

type historyService struct {
	history *store.DownloadHistoryLog
	logger  *logger.Logger
}

func NewHistoryService(history *store.DownloadHistoryLog, log *logger.Logger) HistoryService {
	return &historyService{history: history, logger: log}
}

func (h *historyService) List(ctx context.Context) ([]models.DownloadEvent, error) {
	return h.history.List(ctx)
}

func (h *historyService) Clear(ctx context.Context) error {
	if err := h.history.Clear(ctx); err != nil {
		return err
	}
	h.logger.Info().Msg("download history cleared")
	return nil
}
