package tui

import (
	"fmt"
	"strings"

	"github.com/pdfplace/pdfplace/internal/quota"
	"github.com/pdfplace/pdfplace/internal/service"
	"github.com/pdfplace/pdfplace/models"
)

func (m catalogModel) View() string {
	title := titleStyle.Render("PDF PLACE") + "  " + m.tabBar()

	var data string
	switch {
	case m.loading:
		data = "Loading..."
	case m.uploading:
		data = m.viewUploadForm()
	case m.writingComment:
		data = m.viewCommentForm()
	case m.confirmClear:
		data = "Delete ALL documents? This cannot be undone.\n\ny: yes    n: cancel"
	case m.previewing:
		data = m.viewPreview()
	default:
		switch m.tab {
		case tabFiles:
			data = m.viewFiles()
		case tabDownloads:
			data = m.viewDownloads()
		case tabFeedback:
			data = m.viewFeedback()
		}
	}

	if m.errMsg != "" {
		data += "\n\n" + errorStyle.Render(m.errMsg)
	} else if m.status != "" {
		data += "\n\n" + m.status
	}

	return renderPage(title, data, m.hotKeys())
}

func (m catalogModel) tabBar() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if catalogTab(i) == m.tab {
			parts = append(parts, "["+name+"]")
		} else {
			parts = append(parts, helpStyle.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

func (m catalogModel) viewFiles() string {
	var b strings.Builder

	b.WriteString(m.usageLine())
	b.WriteString("\n")
	if query := strings.TrimSpace(m.searchInput.Value()); query != "" {
		b.WriteString(fmt.Sprintf("Search: %q\n", query))
	}
	if category := filterableCategories[m.filterIdx]; category != "" {
		b.WriteString("Category: " + category.DisplayName() + "\n")
	}
	b.WriteString("\n")

	if m.searching {
		b.WriteString("Search: " + m.searchInput.View() + "\n\n")
	}

	if len(m.records) == 0 {
		b.WriteString("No documents found")
		return b.String()
	}

	for i, record := range m.records {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s  %d downloads",
			cursor,
			fitText(record.Filename, 36),
			record.Category.DisplayName(),
			service.FormatFileSize(record.SizeBytes),
			record.DownloadCount,
		)
		if record.Residency == models.ResidencyAbsent {
			line += helpStyle.Render("  (content unavailable)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m catalogModel) usageLine() string {
	line := fmt.Sprintf("Storage: %s of %s (%.0f%%)",
		service.FormatFileSize(m.usage.UsedBytes),
		service.FormatFileSize(m.usage.LimitBytes),
		m.usage.Ratio*100,
	)

	switch m.usage.Band {
	case quota.BandCritical:
		return criticalStyle.Render(line + " — storage almost full")
	case quota.BandWarning:
		return warningStyle.Render(line + " — storage running low")
	default:
		return line
	}
}

func (m catalogModel) viewDownloads() string {
	var b strings.Builder

	category := filterableCategories[m.downloadsFilterIdx]
	if category != "" {
		b.WriteString("Category: " + category.DisplayName() + "\n\n")
	}

	shown := 0
	for _, event := range m.events {
		if category != "" && event.Category.Normalize() != category {
			continue
		}
		shown++
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			event.DownloadedAt.Format("2006-01-02 15:04"),
			fitText(event.Filename, 36),
			event.Category.DisplayName(),
			service.FormatFileSize(event.SizeBytes),
		))
	}
	if shown == 0 {
		b.WriteString("No downloads yet")
	}
	return strings.TrimRight(b.String(), "\n")
}

// viewPreview is the document detail screen. A terminal cannot render the
// PDF itself, so this shows the full metadata and whether the binary
// content is still reachable.
func (m catalogModel) viewPreview() string {
	record, ok := m.currentRecord()
	if !ok {
		return "No documents"
	}

	var b strings.Builder
	b.WriteString("DOCUMENT PREVIEW\n\n")
	b.WriteString(fmt.Sprintf("Filename:  %s\n", record.Filename))
	b.WriteString(fmt.Sprintf("Category:  %s\n", record.Category.DisplayName()))
	b.WriteString(fmt.Sprintf("Size:      %s\n", service.FormatFileSize(record.SizeBytes)))
	b.WriteString(fmt.Sprintf("Uploaded:  %s\n", record.UploadedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Downloads: %d\n", record.DownloadCount))

	if record.Residency == models.ResidencyAbsent {
		b.WriteString("\n" + warningStyle.Render("Original content is unavailable. Downloading serves a placeholder."))
	} else {
		b.WriteString("\nContent available for download.")
	}
	return b.String()
}

func (m catalogModel) viewFeedback() string {
	if len(m.comments) == 0 {
		return "No feedback yet"
	}

	var b strings.Builder
	for i, comment := range m.comments {
		cursor := "  "
		if i == m.commentIdx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s[%s] %s (%s) — %s\n",
			cursor,
			comment.Status,
			comment.Author,
			comment.Category,
			comment.CreatedAt.Format("2006-01-02"),
		))
		b.WriteString("    " + fitText(comment.Text, 60) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m catalogModel) viewUploadForm() string {
	var b strings.Builder
	b.WriteString("UPLOAD DOCUMENT\n\n")
	b.WriteString("File path: " + m.uploadInput.View() + "\n\n")
	b.WriteString("Category:  " + m.categoryPicker() + "\n")
	if m.uploadSaving {
		b.WriteString("\nUploading...")
	}
	return b.String()
}

func (m catalogModel) categoryPicker() string {
	parts := make([]string, 0, len(filterableCategories)-1)
	for i, category := range filterableCategories[1:] {
		name := category.DisplayName()
		if i == m.uploadCatIdx {
			parts = append(parts, "["+name+"]")
		} else {
			parts = append(parts, helpStyle.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

func (m catalogModel) viewCommentForm() string {
	parts := make([]string, 0, len(feedbackCategories))
	for i, category := range feedbackCategories {
		name := string(category)
		if i == m.commentCatIdx {
			parts = append(parts, "["+name+"]")
		} else {
			parts = append(parts, helpStyle.Render(name))
		}
	}

	var b strings.Builder
	b.WriteString("SUBMIT FEEDBACK\n\n")
	b.WriteString("Category: " + strings.Join(parts, " ") + "\n\n")
	b.WriteString(m.commentArea.View())
	if m.commentSaving {
		b.WriteString("\nSubmitting...")
	}
	return b.String()
}

func (m catalogModel) hotKeys() string {
	switch {
	case m.uploading:
		return "enter: upload | left/right: category | esc: cancel"
	case m.writingComment:
		return "ctrl+s: submit | left/right: category | esc: cancel"
	case m.searching:
		return "enter: apply | esc: reset"
	case m.confirmClear:
		return "y: confirm | n: cancel"
	case m.previewing:
		return "enter: download | esc: close"
	}

	admin := m.services.Auth.Current().IsAdmin

	switch m.tab {
	case tabDownloads:
		return "tab: next view | f: filter | ctrl+x: clear history | ctrl+l: logout | q: quit"
	case tabFeedback:
		keys := "tab: next view | n: new feedback"
		if admin {
			keys += " | m: advance status | ctrl+d: delete"
		}
		return keys + " | ctrl+l: logout | q: quit"
	default:
		keys := "tab: next view | enter: download | p: preview | /: search | f: filter"
		if admin {
			keys += " | u: upload | ctrl+d: delete | ctrl+x: clear all | e: export"
		}
		return keys + " | ctrl+l: logout | q: quit"
	}
}
