package tui

import (
	"github.com/pdfplace/pdfplace/internal/service"
	"github.com/pdfplace/pdfplace/models"
)

type loginResult struct {
	session models.Session
	err     error
}

type catalogLoadedMsg struct {
	records []models.Record
	usage   service.UsageReport
	err     error
}

type downloadDoneMsg struct {
	result service.DownloadResult
	path   string
	err    error
}

type uploadDoneMsg struct {
	record models.Record
	err    error
}

type deleteDoneMsg struct {
	err error
}

type clearDoneMsg struct {
	err error
}

type historyLoadedMsg struct {
	events []models.DownloadEvent
	err    error
}

type historyClearedMsg struct {
	err error
}

type commentsLoadedMsg struct {
	comments []models.Comment
	err      error
}

type feedbackDoneMsg struct {
	err error
}

type moderationDoneMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}
