package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/models"
)

const testSignKey = "test-sign-key"

func TestSessionStore_SaveLoadRoundTrip(t *testing.T) {
	s := NewSessionStore(NewMemoryKV(0), testSignKey, "pdfplace", logger.Nop())
	ctx := context.Background()

	want := models.Session{CurrentUser: "admin@pdfplace.com", IsAdmin: true}
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.LoggedIn())
}

func TestSessionStore_LoadMissing(t *testing.T) {
	s := NewSessionStore(NewMemoryKV(0), testSignKey, "pdfplace", logger.Nop())

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_TamperedTokenRejected(t *testing.T) {
	kv := NewMemoryKV(0)
	s := NewSessionStore(kv, testSignKey, "pdfplace", logger.Nop())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.Session{CurrentUser: "ak763145918@gmail.com"}))

	token, err := kv.Get(ctx, KeySession)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, KeySession, token+"x"))

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_WrongKeyRejected(t *testing.T) {
	kv := NewMemoryKV(0)
	ctx := context.Background()

	signer := NewSessionStore(kv, "other-key", "pdfplace", logger.Nop())
	require.NoError(t, signer.Save(ctx, models.Session{CurrentUser: "admin@pdfplace.com", IsAdmin: true}))

	verifier := NewSessionStore(kv, testSignKey, "pdfplace", logger.Nop())
	_, err := verifier.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_WrongIssuerRejected(t *testing.T) {
	kv := NewMemoryKV(0)
	ctx := context.Background()

	signer := NewSessionStore(kv, testSignKey, "someone-else", logger.Nop())
	require.NoError(t, signer.Save(ctx, models.Session{CurrentUser: "admin@pdfplace.com"}))

	verifier := NewSessionStore(kv, testSignKey, "pdfplace", logger.Nop())
	_, err := verifier.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_Clear(t *testing.T) {
	s := NewSessionStore(NewMemoryKV(0), testSignKey, "pdfplace", logger.Nop())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.Session{CurrentUser: "admin@pdfplace.com"}))
	require.NoError(t, s.Clear(ctx))

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
