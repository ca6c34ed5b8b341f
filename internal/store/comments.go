package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/models"
)

// CommentLog is the persisted feedback log, newest first. Unlike the
// download history it is unbounded; feedback volume is tiny compared to
// document payloads.
type CommentLog struct {
	kv     KeyValue
	logger *logger.Logger
}

func NewCommentLog(kv KeyValue, log *logger.Logger) *CommentLog {
	return &CommentLog{kv: kv, logger: log}
}

// Append prepends the comment and persists the log.
func (l *CommentLog) Append(ctx context.Context, comment models.Comment) error {
	comments, err := l.List(ctx)
	if err != nil {
		return fmt.Errorf("load comments: %w", err)
	}

	comments = append([]models.Comment{comment}, comments...)
	return l.persist(ctx, comments)
}

// List returns all comments, newest first. A missing entry is an empty log.
func (l *CommentLog) List(ctx context.Context) ([]models.Comment, error) {
	value, err := l.kv.Get(ctx, KeyComments)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}

	var comments []models.Comment
	if err := json.Unmarshal([]byte(value), &comments); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	return comments, nil
}

// UpdateStatus sets the moderation status of the comment with the given id.
// Returns ErrCommentNotFound if no such comment exists.
func (l *CommentLog) UpdateStatus(ctx context.Context, id string, status models.CommentStatus) error {
	comments, err := l.List(ctx)
	if err != nil {
		return fmt.Errorf("load comments: %w", err)
	}

	for i := range comments {
		if comments[i].ID == id {
			comments[i].Status = status
			return l.persist(ctx, comments)
		}
	}

	return fmt.Errorf("%w: id=%s", ErrCommentNotFound, id)
}

// Delete removes the comment with the given id. Returns ErrCommentNotFound
// if no such comment exists.
func (l *CommentLog) Delete(ctx context.Context, id string) error {
	comments, err := l.List(ctx)
	if err != nil {
		return fmt.Errorf("load comments: %w", err)
	}

	for i := range comments {
		if comments[i].ID == id {
			comments = append(comments[:i], comments[i+1:]...)
			return l.persist(ctx, comments)
		}
	}

	return fmt.Errorf("%w: id=%s", ErrCommentNotFound, id)
}

func (l *CommentLog) persist(ctx context.Context, comments []models.Comment) error {
	encoded, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("encode comments: %w", err)
	}

	if err = l.kv.Set(ctx, KeyComments, string(encoded)); err != nil {
		l.logger.Err(err).
			Str("func", "CommentLog.persist").
			Msg("failed to persist comments")
		return fmt.Errorf("persist comments: %w", err)
	}

	return nil
}
