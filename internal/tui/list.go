package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/models"
	"github.com/charmbracelet/bubbles/spinner"
)

const listTitleWidth = 48

type listModel struct {
	items   []models.Post
	idx     int
	loading bool
	spinner spinner.Model
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Post, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Post{}, false
	}
	return m.items[m.idx], true
}

func (m *listModel) setItems(posts []models.Post) {
	m.items = posts
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m listModel) View(filter string) string {
	var b strings.Builder

	header := titleStyle.Render("Go Blog") + "  " + categoryStyle.Render(filter)
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.items) == 0:
		b.WriteString("Нет публикаций\n")
	default:
		for i, post := range m.items {
			line := fmt.Sprintf("%-14s %s", "["+post.Category+"]", fitText(post.Title, listTitleWidth))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
