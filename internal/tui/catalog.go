package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdfplace/pdfplace/internal/quota"
	"github.com/pdfplace/pdfplace/internal/service"
	"github.com/pdfplace/pdfplace/models"
)

// downloadDelay mimics the short transfer animation of the original app so
// a download does not feel instantaneous.
const downloadDelay = 500 * time.Millisecond

type catalogTab int

const (
	tabFiles catalogTab = iota
	tabDownloads
	tabFeedback
)

var tabNames = []string{"Files", "Downloads", "Feedback"}

// filterableCategories drives the category filter cycle on the files tab.
// The leading empty value means "all categories".
var filterableCategories = []models.Category{
	"",
	models.CategoryNCERT,
	models.CategoryPYQs,
	models.CategoryMockTest,
	models.CategoryPWNotes,
	models.CategoryKGSNotes,
	models.CategoryOthers,
}

var feedbackCategories = []models.CommentCategory{
	models.CommentSuggestion,
	models.CommentBug,
	models.CommentFeature,
	models.CommentGeneral,
}

type catalogModel struct {
	ctx      context.Context
	services *service.Services

	tab     catalogTab
	loading bool
	status  string
	errMsg  string
	logout  bool

	// Files tab.
	records     []models.Record
	usage       service.UsageReport
	idx         int
	filterIdx   int
	searching   bool
	searchInput textinput.Model
	downloading bool
	previewing  bool

	// Upload form.
	uploading    bool
	uploadInput  textinput.Model
	uploadCatIdx int
	uploadSaving bool
	confirmClear bool

	// Downloads tab.
	events             []models.DownloadEvent
	downloadsFilterIdx int

	// Feedback tab.
	comments       []models.Comment
	writingComment bool
	commentCatIdx  int
	commentArea    textarea.Model
	commentSaving  bool
	commentIdx     int
}

func newCatalogModel(ctx context.Context, services *service.Services) catalogModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "search by filename"
	searchInput.CharLimit = 64
	searchInput.Width = 40

	uploadInput := textinput.New()
	uploadInput.Placeholder = "/path/to/document.pdf"
	uploadInput.CharLimit = 256
	uploadInput.Width = 50

	commentArea := textarea.New()
	commentArea.Placeholder = "your feedback"
	commentArea.SetWidth(50)
	commentArea.SetHeight(4)

	return catalogModel{
		ctx:         ctx,
		services:    services,
		loading:     true,
		searchInput: searchInput,
		uploadInput: uploadInput,
		commentArea: commentArea,
	}
}

func (m catalogModel) Init() tea.Cmd {
	return m.cmdLoadCatalog()
}

func (m catalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.records = msg.records
		m.usage = msg.usage
		m.clampIdx()
		return m, nil

	case downloadDoneMsg:
		m.downloading = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Download failed: %v", msg.err)
			return m, nil
		}
		if msg.result.Placeholder {
			m.status = fmt.Sprintf("Original content unavailable, saved placeholder to %s", msg.path)
		} else {
			m.status = fmt.Sprintf("Downloaded: %s", msg.path)
		}
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCatalog()

	case uploadDoneMsg:
		m.uploadSaving = false
		if msg.err != nil {
			m.errMsg = uploadErrorMessage(msg.err)
			return m, nil
		}
		m.uploading = false
		m.uploadInput.SetValue("")
		m.status = fmt.Sprintf("Uploaded: %s", msg.record.Filename)
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCatalog()

	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Document deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCatalog()

	case clearDoneMsg:
		m.confirmClear = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Clear failed: %v", msg.err)
			return m, nil
		}
		m.status = "All files have been cleared"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCatalog()

	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.events = msg.events
		return m, nil

	case historyClearedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Clear failed: %v", msg.err)
			return m, nil
		}
		m.status = "Download history cleared"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadHistory()

	case commentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.comments = msg.comments
		if m.commentIdx >= len(m.comments) {
			m.commentIdx = len(m.comments) - 1
		}
		if m.commentIdx < 0 {
			m.commentIdx = 0
		}
		return m, nil

	case feedbackDoneMsg:
		m.commentSaving = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Submit failed: %v", msg.err)
			return m, nil
		}
		m.writingComment = false
		m.commentArea.SetValue("")
		m.status = "Thank you for your feedback!"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadComments()

	case moderationDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Moderation failed: %v", msg.err)
			return m, nil
		}
		m.status = "Comment updated"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadComments()

	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Export failed: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Files list exported to %s (copied to clipboard)", msg.path)
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateForms(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.uploading {
		return m.updateUploadForm(keyMsg)
	}
	if m.writingComment {
		return m.updateCommentForm(keyMsg)
	}
	if m.searching {
		return m.updateSearch(keyMsg)
	}
	if m.confirmClear {
		return m.updateConfirmClear(keyMsg)
	}
	if m.previewing {
		return m.updatePreview(keyMsg)
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "ctrl+l":
		m.logout = true
		return m, m.cmdLogout()
	case "tab":
		m.tab = (m.tab + 1) % catalogTab(len(tabNames))
		m.status = ""
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadTab()
	}

	switch m.tab {
	case tabFiles:
		return m.updateFilesTab(keyMsg)
	case tabDownloads:
		return m.updateDownloadsTab(keyMsg)
	case tabFeedback:
		return m.updateFeedbackTab(keyMsg)
	}
	return m, nil
}

func (m catalogModel) updateFilesTab(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.records)-1 {
			m.idx++
		}
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "p":
		if _, ok := m.currentRecord(); !ok {
			m.status = "No documents"
			return m, nil
		}
		m.previewing = true
		return m, nil
	case "f":
		m.filterIdx = (m.filterIdx + 1) % len(filterableCategories)
		m.loading = true
		return m, m.cmdLoadCatalog()
	case "enter", "d":
		record, ok := m.currentRecord()
		if !ok {
			m.status = "No documents"
			return m, nil
		}
		if m.downloading {
			return m, nil
		}
		m.downloading = true
		m.status = fmt.Sprintf("Downloading %s...", record.Filename)
		return m, m.cmdDownload(record.ID)
	case "u":
		if !m.services.Auth.Current().IsAdmin {
			m.errMsg = "Upload permission denied. Admin access required."
			return m, nil
		}
		m.uploading = true
		m.uploadCatIdx = 0
		m.uploadInput.Focus()
		return m, textinput.Blink
	case "ctrl+d":
		record, ok := m.currentRecord()
		if !ok {
			m.status = "No documents"
			return m, nil
		}
		return m, m.cmdDelete(record.ID)
	case "ctrl+x":
		if !m.services.Auth.Current().IsAdmin {
			m.errMsg = "Admin access required"
			return m, nil
		}
		m.confirmClear = true
		return m, nil
	case "e":
		return m, m.cmdExport()
	}
	return m, nil
}

func (m catalogModel) updateDownloadsTab(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "ctrl+x":
		return m, m.cmdClearHistory()
	case "f":
		m.downloadsFilterIdx = (m.downloadsFilterIdx + 1) % len(filterableCategories)
	}
	return m, nil
}

func (m catalogModel) updatePreview(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "p", "q":
		m.previewing = false
	case "enter", "d":
		record, ok := m.currentRecord()
		if !ok || m.downloading {
			return m, nil
		}
		m.previewing = false
		m.downloading = true
		m.status = fmt.Sprintf("Downloading %s...", record.Filename)
		return m, m.cmdDownload(record.ID)
	}
	return m, nil
}

func (m catalogModel) updateFeedbackTab(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	admin := m.services.Auth.Current().IsAdmin

	switch keyMsg.String() {
	case "up", "k":
		if m.commentIdx > 0 {
			m.commentIdx--
		}
	case "down", "j":
		if m.commentIdx < len(m.comments)-1 {
			m.commentIdx++
		}
	case "n":
		m.writingComment = true
		m.commentCatIdx = 0
		m.commentArea.Focus()
		return m, textarea.Blink
	case "m":
		if !admin {
			m.errMsg = "Admin access required"
			return m, nil
		}
		comment, ok := m.currentComment()
		if !ok {
			return m, nil
		}
		return m, m.cmdSetCommentStatus(comment.ID, nextStatus(comment.Status))
	case "ctrl+d":
		if !admin {
			m.errMsg = "Admin access required"
			return m, nil
		}
		comment, ok := m.currentComment()
		if !ok {
			return m, nil
		}
		return m, m.cmdDeleteComment(comment.ID)
	}
	return m, nil
}

func (m catalogModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.loading = true
		return m, m.cmdLoadCatalog()
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.loading = true
		return m, m.cmdLoadCatalog()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(keyMsg)
	return m, cmd
}

func (m catalogModel) updateConfirmClear(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		return m, m.cmdClearAll()
	case "n", "esc":
		m.confirmClear = false
	}
	return m, nil
}

func (m catalogModel) updateUploadForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.uploading = false
		m.uploadSaving = false
		m.uploadInput.Blur()
		return m, nil
	case "left":
		if m.uploadCatIdx > 0 {
			m.uploadCatIdx--
		}
		return m, nil
	case "right":
		if m.uploadCatIdx < len(filterableCategories)-2 {
			m.uploadCatIdx++
		}
		return m, nil
	case "enter":
		if m.uploadSaving {
			return m, nil
		}
		path := strings.TrimSpace(m.uploadInput.Value())
		if path == "" {
			m.errMsg = "Please enter a file path"
			return m, nil
		}
		m.errMsg = ""
		m.uploadSaving = true
		category := filterableCategories[m.uploadCatIdx+1]
		return m, m.cmdUpload(path, category)
	}

	var cmd tea.Cmd
	m.uploadInput, cmd = m.uploadInput.Update(keyMsg)
	return m, cmd
}

func (m catalogModel) updateCommentForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.writingComment = false
		m.commentSaving = false
		m.commentArea.Blur()
		return m, nil
	case "left":
		if m.commentCatIdx > 0 {
			m.commentCatIdx--
		}
		return m, nil
	case "right":
		if m.commentCatIdx < len(feedbackCategories)-1 {
			m.commentCatIdx++
		}
		return m, nil
	case "ctrl+s":
		if m.commentSaving {
			return m, nil
		}
		text := strings.TrimSpace(m.commentArea.Value())
		if text == "" {
			m.errMsg = "Please enter your feedback"
			return m, nil
		}
		m.errMsg = ""
		m.commentSaving = true
		return m, m.cmdSubmitFeedback(feedbackCategories[m.commentCatIdx], text)
	}

	var cmd tea.Cmd
	m.commentArea, cmd = m.commentArea.Update(keyMsg)
	return m, cmd
}

// updateForms forwards non-key messages (cursor blinks) to whichever input
// is active.
func (m catalogModel) updateForms(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.uploading:
		m.uploadInput, cmd = m.uploadInput.Update(msg)
	case m.writingComment:
		m.commentArea, cmd = m.commentArea.Update(msg)
	case m.searching:
		m.searchInput, cmd = m.searchInput.Update(msg)
	}
	return m, cmd
}

func (m *catalogModel) clampIdx() {
	if m.idx >= len(m.records) {
		m.idx = len(m.records) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m catalogModel) currentRecord() (models.Record, bool) {
	if len(m.records) == 0 || m.idx >= len(m.records) {
		return models.Record{}, false
	}
	return m.records[m.idx], true
}

func (m catalogModel) currentComment() (models.Comment, bool) {
	if len(m.comments) == 0 || m.commentIdx >= len(m.comments) {
		return models.Comment{}, false
	}
	return m.comments[m.commentIdx], true
}

func nextStatus(status models.CommentStatus) models.CommentStatus {
	switch status {
	case models.CommentPending:
		return models.CommentReviewed
	case models.CommentReviewed:
		return models.CommentResolved
	default:
		return models.CommentPending
	}
}

func uploadErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, quota.ErrRecordTooLarge):
		return "File too large: the 50 MB per-document limit would be exceeded"
	case errors.Is(err, quota.ErrQuotaExceeded):
		return "Not enough storage space: delete some documents first"
	default:
		return fmt.Sprintf("Upload failed: %v", err)
	}
}

// ---- commands ----

func (m catalogModel) cmdLoadCatalog() tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog
	query := strings.TrimSpace(m.searchInput.Value())
	category := filterableCategories[m.filterIdx]

	return func() tea.Msg {
		var records []models.Record
		switch {
		case query != "":
			records = catalog.Search(ctx, query)
		case category != "":
			records = catalog.FilterByCategory(ctx, category)
		default:
			records = catalog.List(ctx)
		}
		return catalogLoadedMsg{records: records, usage: catalog.Usage(ctx)}
	}
}

func (m catalogModel) cmdLoadTab() tea.Cmd {
	switch m.tab {
	case tabDownloads:
		return m.cmdLoadHistory()
	case tabFeedback:
		return m.cmdLoadComments()
	default:
		return m.cmdLoadCatalog()
	}
}

func (m catalogModel) cmdDownload(id string) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog

	// Short artificial delay before the actual transfer, like the
	// original app's loading overlay.
	return tea.Tick(downloadDelay, func(time.Time) tea.Msg {
		result, err := catalog.Download(ctx, id)
		if err != nil {
			return downloadDoneMsg{err: err}
		}

		path := filepath.Join(".", result.Filename)
		if err := os.WriteFile(path, result.Content, 0o644); err != nil {
			return downloadDoneMsg{err: err}
		}
		return downloadDoneMsg{result: result, path: path}
	})
}

func (m catalogModel) cmdUpload(path string, category models.Category) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog

	return func() tea.Msg {
		content, err := os.ReadFile(path)
		if err != nil {
			return uploadDoneMsg{err: err}
		}

		record, err := catalog.Upload(ctx, models.Upload{
			Filename: filepath.Base(path),
			Category: category,
			Content:  content,
		})
		return uploadDoneMsg{record: record, err: err}
	}
}

func (m catalogModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog
	return func() tea.Msg {
		return deleteDoneMsg{err: catalog.Delete(ctx, id)}
	}
}

func (m catalogModel) cmdClearAll() tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog
	return func() tea.Msg {
		return clearDoneMsg{err: catalog.ClearAll(ctx)}
	}
}

func (m catalogModel) cmdExport() tea.Cmd {
	ctx := m.ctx
	catalog := m.services.Catalog

	return func() tea.Msg {
		out, err := catalog.ExportList(ctx)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		path := fmt.Sprintf("pdf-files-list-%s.json", time.Now().Format("2006-01-02"))
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return exportDoneMsg{err: err}
		}

		// Best effort: a headless terminal may have no clipboard.
		_ = clipboard.WriteAll(string(out))

		return exportDoneMsg{path: path}
	}
}

func (m catalogModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	history := m.services.History
	return func() tea.Msg {
		events, err := history.List(ctx)
		return historyLoadedMsg{events: events, err: err}
	}
}

func (m catalogModel) cmdClearHistory() tea.Cmd {
	ctx := m.ctx
	history := m.services.History
	return func() tea.Msg {
		return historyClearedMsg{err: history.Clear(ctx)}
	}
}

func (m catalogModel) cmdLoadComments() tea.Cmd {
	ctx := m.ctx
	feedback := m.services.Feedback
	return func() tea.Msg {
		comments, err := feedback.List(ctx)
		return commentsLoadedMsg{comments: comments, err: err}
	}
}

func (m catalogModel) cmdSubmitFeedback(category models.CommentCategory, text string) tea.Cmd {
	ctx := m.ctx
	feedback := m.services.Feedback
	return func() tea.Msg {
		_, err := feedback.Submit(ctx, category, text)
		return feedbackDoneMsg{err: err}
	}
}

func (m catalogModel) cmdSetCommentStatus(id string, status models.CommentStatus) tea.Cmd {
	ctx := m.ctx
	feedback := m.services.Feedback
	return func() tea.Msg {
		return moderationDoneMsg{err: feedback.SetStatus(ctx, id, status)}
	}
}

func (m catalogModel) cmdDeleteComment(id string) tea.Cmd {
	ctx := m.ctx
	feedback := m.services.Feedback
	return func() tea.Msg {
		return moderationDoneMsg{err: feedback.Delete(ctx, id)}
	}
}

func (m catalogModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		_ = auth.Logout(ctx)
		return tea.Quit()
	}
}
