package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/internal/store"
	"github.com/pdfplace/pdfplace/models"
)

// account is a locally provisioned login.
type account struct {
	email        string
	passwordHash []byte
	admin        bool
}

type authService struct {
	accounts []account
	sessions *store.SessionStore
	logger   *logger.Logger

	// current is read by UI commands and permission checks on their own
	// goroutines.
	currentMu sync.RWMutex
	current   models.Session
}

// NewAuthService constructs the auth service with the built-in demo
// accounts. Passwords are bcrypt-hashed at construction so the comparison
// path matches a real credential store.
func NewAuthService(sessions *store.SessionStore, log *logger.Logger) AuthService {
	return &authService{
		accounts: []account{
			newAccount("admin@pdfplace.com", "admin123", true),
			newAccount("ak763145918@gmail.com", "76730", true),
		},
		sessions: sessions,
		logger:   log,
	}
}

func newAccount(email, password string, admin bool) account {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		// Only possible for passwords beyond bcrypt's 72-byte limit.
		panic(fmt.Sprintf("hash account password: %v", err))
	}
	return account{email: email, passwordHash: hash, admin: admin}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	for _, acc := range a.accounts {
		if acc.email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
			break
		}

		session := models.Session{CurrentUser: acc.email, IsAdmin: acc.admin}
		a.setCurrent(session)
		if err := a.sessions.Save(ctx, session); err != nil {
			// Login still succeeds; only restart persistence is lost.
			a.logger.Warn().Err(err).
				Str("func", "authService.Login").
				Msg("failed to persist session")
		}

		a.logger.Info().
			Str("user", acc.email).
			Bool("admin", acc.admin).
			Msg("login successful")
		return session, nil
	}

	return models.Session{}, ErrInvalidCredentials
}

func (a *authService) Logout(ctx context.Context) error {
	a.setCurrent(models.Session{})
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	return nil
}

func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	a.setCurrent(session)
	a.logger.Info().
		Str("user", session.CurrentUser).
		Msg("session restored")
	return session, nil
}

func (a *authService) Current() models.Session {
	a.currentMu.RLock()
	defer a.currentMu.RUnlock()

	return a.current
}

func (a *authService) setCurrent(session models.Session) {
	a.currentMu.Lock()
	defer a.currentMu.Unlock()

	a.current = session
}
