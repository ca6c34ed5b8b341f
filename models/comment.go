package models

import "time"

// CommentCategory classifies a feedback comment.
type CommentCategory string

const (
	CommentSuggestion CommentCategory = "suggestion"
	CommentBug        CommentCategory = "bug"
	CommentFeature    CommentCategory = "feature"
	CommentGeneral    CommentCategory = "general"
)

// CommentStatus is the moderation state of a comment. Only administrators
// may change it.
type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentReviewed CommentStatus = "reviewed"
	CommentResolved CommentStatus = "resolved"
)

// Comment is a categorized feedback entry left by a user.
type Comment struct {
	// ID is the opaque unique identifier of the comment.
	ID string `json:"id"`

	// Author is the identity of the user that left the comment.
	Author string `json:"user"`

	// Category classifies the feedback.
	Category CommentCategory `json:"category"`

	// Text is the feedback body. Never empty.
	Text string `json:"text"`

	// CreatedAt is the submission time.
	CreatedAt time.Time `json:"date"`

	// Status is the moderation state, defaulting to CommentPending.
	Status CommentStatus `json:"status"`
}
