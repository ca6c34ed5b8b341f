package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfplace/pdfplace/internal/store"
	"github.com/pdfplace/pdfplace/internal/validators"
	"github.com/pdfplace/pdfplace/models"
)

func TestFeedbackService_SubmitRequiresLogin(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.Feedback.Submit(context.Background(), models.CommentBug, "broken preview")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestFeedbackService_Submit(t *testing.T) {
	env := newTestEnv(t)
	loginAdmin(t, env)
	ctx := context.Background()

	comment, err := env.services.Feedback.Submit(ctx, models.CommentSuggestion, "add bookmarks")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "admin@pdfplace.com", comment.Author)
	assert.Equal(t, models.CommentPending, comment.Status)

	listed, err := env.services.Feedback.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "add bookmarks", listed[0].Text)
}

func TestFeedbackService_SubmitBlankText(t *testing.T) {
	env := newTestEnv(t)
	loginAdmin(t, env)

	_, err := env.services.Feedback.Submit(context.Background(), models.CommentGeneral, "   ")
	assert.ErrorIs(t, err, validators.ErrEmptyFeedback)
}

func TestFeedbackService_ModerationRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.ErrorIs(t, env.services.Feedback.SetStatus(ctx, "x", models.CommentReviewed), ErrPermissionDenied)
	assert.ErrorIs(t, env.services.Feedback.Delete(ctx, "x"), ErrPermissionDenied)
}

func TestFeedbackService_Moderation(t *testing.T) {
	env := newTestEnv(t)
	loginAdmin(t, env)
	ctx := context.Background()

	comment, err := env.services.Feedback.Submit(ctx, models.CommentFeature, "dark mode")
	require.NoError(t, err)

	require.NoError(t, env.services.Feedback.SetStatus(ctx, comment.ID, models.CommentResolved))
	listed, err := env.services.Feedback.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CommentResolved, listed[0].Status)

	require.NoError(t, env.services.Feedback.Delete(ctx, comment.ID))
	listed, err = env.services.Feedback.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	assert.ErrorIs(t, env.services.Feedback.Delete(ctx, comment.ID), store.ErrCommentNotFound)
}
