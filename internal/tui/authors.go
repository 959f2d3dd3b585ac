package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

type authorsModel struct {
	users   []models.User
	idx     int
	loading bool
}

func (m authorsModel) current() (models.User, bool) {
	if len(m.users) == 0 || m.idx < 0 || m.idx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.idx], true
}

func (m authorsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case len(m.users) == 0:
		b.WriteString("Нет авторов")
	default:
		for i, u := range m.users {
			line := fmt.Sprintf("%-24s %3d публ.", fitText(u.Name, 24), u.Posts)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	return renderPage(titleStyle.Render("АВТОРЫ"), strings.TrimRight(b.String(), "\n"), "enter: публикации автора  esc: назад")
}
