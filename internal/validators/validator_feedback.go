package validators

import (
	"context"
	"strings"

	"github.com/pdfplace/pdfplace/models"
)

// FeedbackValidator validates submitted comments: author and text must be
// non-blank. The category is normalized elsewhere; any value is accepted
// here.
type FeedbackValidator struct {
}

func NewFeedbackValidator() Validator {
	return &FeedbackValidator{}
}

func (v *FeedbackValidator) Validate(_ context.Context, obj any) error {
	switch value := obj.(type) {
	case models.Comment:
		return v.validateComment(value)
	case *models.Comment:
		return v.validateComment(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *FeedbackValidator) validateComment(comment models.Comment) error {
	if strings.TrimSpace(comment.Author) == "" {
		return ErrEmptyAuthor
	}
	if strings.TrimSpace(comment.Text) == "" {
		return ErrEmptyFeedback
	}
	return nil
}
