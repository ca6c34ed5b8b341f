package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/internal/store"
	"github.com/pdfplace/pdfplace/internal/validators"
	"github.com/pdfplace/pdfplace/models"
)

type feedbackService struct {
	comments  *store.CommentLog
	validator validators.Validator
	session   SessionProvider
	logger    *logger.Logger
}

func NewFeedbackService(comments *store.CommentLog, validator validators.Validator, session SessionProvider, log *logger.Logger) FeedbackService {
	return &feedbackService{
		comments:  comments,
		validator: validator,
		session:   session,
		logger:    log,
	}
}

func (f *feedbackService) Submit(ctx context.Context, category models.CommentCategory, text string) (models.Comment, error) {
	current := f.session.Current()
	if !current.LoggedIn() {
		return models.Comment{}, ErrNotLoggedIn
	}

	comment := models.Comment{
		ID:        newID(),
		Author:    current.CurrentUser,
		Category:  category,
		Text:      text,
		CreatedAt: time.Now(),
		Status:    models.CommentPending,
	}

	if err := f.validator.Validate(ctx, comment); err != nil {
		return models.Comment{}, fmt.Errorf("validate comment: %w", err)
	}

	if err := f.comments.Append(ctx, comment); err != nil {
		return models.Comment{}, fmt.Errorf("store comment: %w", err)
	}

	f.logger.Info().
		Str("id", comment.ID).
		Str("category", string(comment.Category)).
		Msg("comment submitted")
	return comment, nil
}

func (f *feedbackService) List(ctx context.Context) ([]models.Comment, error) {
	return f.comments.List(ctx)
}

func (f *feedbackService) SetStatus(ctx context.Context, id string, status models.CommentStatus) error {
	if !f.session.Current().IsAdmin {
		return ErrPermissionDenied
	}
	return f.comments.UpdateStatus(ctx, id, status)
}

func (f *feedbackService) Delete(ctx context.Context, id string) error {
	if !f.session.Current().IsAdmin {
		return ErrPermissionDenied
	}
	return f.comments.Delete(ctx, id)
}
