package tui

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

var htmlTag = regexp.MustCompile(`<[^>]*>`)

type detailModel struct {
	post      models.Post
	author    *models.User
	authorErr error
}

// plainText renders the rich-text description for a terminal.
func plainText(description string) string {
	text := htmlTag.ReplaceAllString(description, " ")
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

func (m detailModel) authorName() string {
	switch {
	case m.author != nil:
		return m.author.Name
	case m.authorErr != nil:
		return "не удалось загрузить (" + humanizeError(m.authorErr) + ")"
	default:
		return "загрузка..."
	}
}

func (m detailModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Категория:  %s\n", m.post.Category)
	fmt.Fprintf(&b, "Автор:      %s\n", m.authorName())
	fmt.Fprintf(&b, "Создана:    %s\n", formatTime(m.post.CreatedAt))
	fmt.Fprintf(&b, "Обновлена:  %s\n", formatTime(m.post.UpdatedAt))
	fmt.Fprintf(&b, "Обложка:    %s\n", valueOrDash(&m.post.Thumbnail))
	b.WriteString("\n")
	b.WriteString(plainText(m.post.Description))

	return renderPage(titleStyle.Render(m.post.Title), b.String(), "c: копир. ссылку на обложку  esc: назад")
}
