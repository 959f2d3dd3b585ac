package tui

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	pageIndent = "  "
	quitHint   = "q: выход"
)

var pageDivider = strings.Repeat("─", 54)

// renderPage lays out title, an indented body and the hotkey footer.
// A blank body renders as a single dash.
func renderPage(title, data, hotKeys string) string {
	body := []string{"-"}
	if strings.TrimSpace(data) != "" {
		body = strings.Split(data, "\n")
	}

	lines := make([]string, 0, len(body)+8)
	lines = append(lines, title, pageIndent+pageDivider, "")
	for _, line := range body {
		lines = append(lines, pageIndent+line)
	}
	lines = append(lines, "", pageIndent+pageDivider)
	if strings.TrimSpace(hotKeys) != "" {
		lines = append(lines, pageIndent+hotKeys)
	}
	lines = append(lines, pageIndent+quitHint)

	return strings.Join(lines, "\n")
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// fitText cuts v to max runes, ending with "..." when there is room for it.
func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	runes := []rune(v)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02.01.2006 15:04")
}
