package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>Hello <b>world</b></p>", "Hello world"},
		{"<p>Fish &amp; chips</p>\n<p>daily</p>", "Fish & chips daily"},
		{"no markup", "no markup"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, plainText(tt.in))
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Урожай...", fitText("Урожай года", 9))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "abcdef", fitText("abcdef", 0))
}

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, "", humanizeError(nil))
	assert.Equal(t, "Не найдено", humanizeError(fmt.Errorf("%w: post not found", adapter.ErrNotFound)))
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", humanizeError(errors.New("Get \"http://x\": context deadline exceeded")))
	assert.Equal(t, "boom", humanizeError(errors.New("boom")))
}

func TestRenderPage_EmptyData(t *testing.T) {
	out := renderPage("TITLE", "  ", "")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "  -\n")
	assert.Contains(t, out, "q: выход")
}
