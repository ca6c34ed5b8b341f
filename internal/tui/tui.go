package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdfplace/pdfplace/internal/logger"
	"github.com/pdfplace/pdfplace/internal/service"
)

// ErrUserQuit reports that the user closed the program from the UI.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, log *logger.Logger) *TUI {
	return &TUI{services: services, logger: log}
}

// Run drives the whole UI: the login screen, then the catalog screen, and
// back to login after a logout. Returns ErrUserQuit when the user exits.
func (t *TUI) Run(ctx context.Context) error {
	for {
		if !t.services.Auth.Current().LoggedIn() {
			if err := t.loginFlow(ctx); err != nil {
				return err
			}
		}

		logout, err := t.mainLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return ErrUserQuit
		}
	}
}

func (t *TUI) loginFlow(ctx context.Context) error {
	model := NewLoginModel(ctx, t.services.Auth)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(*LoginModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) mainLoop(ctx context.Context) (logout bool, err error) {
	model := newCatalogModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(catalogModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
