package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/models"
)

// SessionStore persists the login state under the session key as a signed
// JWT. The signature guards the entry against accidental or casual edits;
// a token that fails verification rehydrates to logged-out rather than
// granting whatever it claims.
type SessionStore struct {
	kv      KeyValue
	signKey []byte
	issuer  string
	logger  *logger.Logger
}

type sessionClaims struct {
	IsAdmin bool `json:"adm"`
	jwt.RegisteredClaims
}

func NewSessionStore(kv KeyValue, signKey, issuer string, log *logger.Logger) *SessionStore {
	return &SessionStore{
		kv:      kv,
		signKey: []byte(signKey),
		issuer:  issuer,
		logger:  log,
	}
}

// Save signs and persists the session.
func (s *SessionStore) Save(ctx context.Context, session models.Session) error {
	claims := sessionClaims{
		IsAdmin: session.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  session.CurrentUser,
			Issuer:   s.issuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	if err = s.kv.Set(ctx, KeySession, token); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}

// Load reads and verifies the persisted session. Returns ErrSessionNotFound
// when no session exists or when the token fails verification.
func (s *SessionStore) Load(ctx context.Context) (models.Session, error) {
	value, err := s.kv.Get(ctx, KeySession)
	if errors.Is(err, ErrKeyNotFound) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("read session: %w", err)
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(value, &claims, func(*jwt.Token) (any, error) {
		return s.signKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(s.issuer))
	if err != nil || !token.Valid {
		s.logger.Warn().Err(err).
			Str("func", "SessionStore.Load").
			Msg("persisted session token failed verification, treating as logged out")
		return models.Session{}, ErrSessionNotFound
	}

	return models.Session{
		CurrentUser: claims.Subject,
		IsAdmin:     claims.IsAdmin,
	}, nil
}

// Clear removes the persisted session.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
