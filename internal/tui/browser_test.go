package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBrowser(t *testing.T) (browserModel, *mock.MockBlogClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockBlogClient(ctrl)
	m := newBrowserModel(context.Background(), client, models.NewAppBuildInfo("v1.0.0", "2026-10-17", "abc123"))
	return m, client
}

func press(m browserModel, k tea.KeyMsg) (browserModel, tea.Cmd) {
	next, cmd := m.Update(k)
	return next.(browserModel), cmd
}

func send(m browserModel, msg tea.Msg) browserModel {
	next, _ := m.Update(msg)
	return next.(browserModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect выполняет команду и раскрывает tea.BatchMsg
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func findPostsLoaded(t *testing.T, msgs []tea.Msg) postsLoadedMsg {
	t.Helper()
	for _, msg := range msgs {
		if loaded, ok := msg.(postsLoadedMsg); ok {
			return loaded
		}
	}
	t.Fatalf("postsLoadedMsg not found in %v", msgs)
	return postsLoadedMsg{}
}

var testPosts = []models.Post{
	{ID: "p-1", Title: "Harvest", Category: models.CategoryAgriculture, Creator: "u-1", Thumbnail: "field0190.png"},
	{ID: "p-2", Title: "Markets", Category: models.CategoryBusiness, Creator: "u-2"},
}

// ── Loading ─────────────────────────────────────────────────────────────────

func TestBrowser_InitLoadsAllPosts(t *testing.T) {
	m, client := newTestBrowser(t)
	client.EXPECT().ListPosts(gomock.Any()).Return(testPosts, nil)

	loaded := findPostsLoaded(t, collect(m.Init()))
	m = send(m, loaded)

	assert.False(t, m.list.loading)
	assert.Len(t, m.list.items, 2)
	assert.Contains(t, m.View(), "Harvest")
	assert.Contains(t, m.View(), "все категории")
}

func TestBrowser_LoadErrorShowsOverlay(t *testing.T) {
	m, _ := newTestBrowser(t)

	m = send(m, postsLoadedMsg{err: errors.New("dial tcp 127.0.0.1:8080: connection refused")})
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "Сервер недоступен")

	// пока открыт оверлей, остальные клавиши игнорируются
	m, _ = press(m, runes("a"))
	assert.Equal(t, screenList, m.screen)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.overlay)
}

func TestBrowser_ClampsCursorOnReload(t *testing.T) {
	m, _ := newTestBrowser(t)
	m = send(m, postsLoadedMsg{posts: testPosts})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.list.idx)

	m = send(m, postsLoadedMsg{posts: testPosts[:1]})
	assert.Equal(t, 0, m.list.idx)
}

// ── Category filter ─────────────────────────────────────────────────────────

func TestBrowser_CategoryCycle(t *testing.T) {
	m, client := newTestBrowser(t)
	m.list.loading = false

	client.EXPECT().ListPostsByCategory(gomock.Any(), models.CategoryAgriculture).Return(testPosts[:1], nil)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.categoryIdx)
	assert.True(t, m.list.loading)

	m = send(m, findPostsLoaded(t, collect(cmd)))
	assert.Len(t, m.list.items, 1)
	assert.Contains(t, m.View(), models.CategoryAgriculture)
}

func TestBrowser_CategoryWrapsAround(t *testing.T) {
	m, _ := newTestBrowser(t)
	last := len(models.PostCategories) - 1

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, last, m.categoryIdx)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, -1, m.categoryIdx)
	assert.Equal(t, "все категории", m.filterLabel())
}

// ── Detail ──────────────────────────────────────────────────────────────────

func TestBrowser_DetailResolvesAuthor(t *testing.T) {
	m, client := newTestBrowser(t)
	m = send(m, postsLoadedMsg{posts: testPosts})

	client.EXPECT().GetUser(gomock.Any(), "u-1").Return(models.User{ID: "u-1", Name: "Ann"}, nil)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDetail, m.screen)
	assert.Contains(t, m.View(), "загрузка...")

	m = send(m, cmd())
	require.NotNil(t, m.detail.author)
	assert.Contains(t, m.View(), "Ann")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, m.screen)
}

func TestBrowser_DetailIgnoresStaleAuthor(t *testing.T) {
	m, _ := newTestBrowser(t)
	m.detail = detailModel{post: testPosts[0]}

	m = send(m, authorLoadedMsg{user: models.User{ID: "u-2", Name: "Bob"}})
	assert.Nil(t, m.detail.author)

	m = send(m, authorLoadedMsg{err: adapter.ErrNotFound})
	assert.Contains(t, m.detail.authorName(), "Не найдено")
}

// ── Authors ─────────────────────────────────────────────────────────────────

func TestBrowser_AuthorsFilterPosts(t *testing.T) {
	m, client := newTestBrowser(t)
	m.list.loading = false
	m.categoryIdx = 2

	authors := []models.User{{ID: "u-1", Name: "Ann", Posts: 1}, {ID: "u-2", Name: "Bob", Posts: 1}}
	client.EXPECT().ListAuthors(gomock.Any()).Return(authors, nil)
	client.EXPECT().ListPostsByCreator(gomock.Any(), "u-2").Return(testPosts[1:], nil)

	m, cmd := press(m, runes("a"))
	require.Equal(t, screenAuthors, m.screen)
	m = send(m, cmd())
	assert.Contains(t, m.View(), "Bob")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, -1, m.categoryIdx)
	assert.Equal(t, "автор: Bob", m.filterLabel())

	m = send(m, findPostsLoaded(t, collect(cmd)))
	assert.Len(t, m.list.items, 1)
}

func TestBrowser_EscClearsAuthorFilter(t *testing.T) {
	m, client := newTestBrowser(t)
	m.creator = &models.User{ID: "u-1", Name: "Ann"}

	client.EXPECT().ListPosts(gomock.Any()).Return(testPosts, nil)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.creator)
	findPostsLoaded(t, collect(cmd))
}

// ── Clipboard ───────────────────────────────────────────────────────────────

func TestBrowser_CopyThumbnailURL(t *testing.T) {
	m, client := newTestBrowser(t)
	m = send(m, postsLoadedMsg{posts: testPosts})

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	client.EXPECT().UploadURL("field0190.png").Return("http://localhost:8080/uploads/field0190.png")

	m, cmd := press(m, runes("c"))
	m = send(m, cmd())

	assert.Equal(t, "http://localhost:8080/uploads/field0190.png", copied)
	assert.Contains(t, m.status, "Скопировано")

	m = send(m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestBrowser_CopyWithoutThumbnail(t *testing.T) {
	m, _ := newTestBrowser(t)
	m = send(m, postsLoadedMsg{posts: testPosts})
	m.copyText = func(string) error {
		t.Fatal("clipboard must not be touched")
		return nil
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := press(m, runes("c"))
	m = send(m, cmd())

	require.NotNil(t, m.overlay)
	assert.Contains(t, m.overlay.message, "Markets")
}

// ── Misc screens ────────────────────────────────────────────────────────────

func TestBrowser_BuildInfo(t *testing.T) {
	m, _ := newTestBrowser(t)

	m, _ = press(m, runes("i"))
	view := m.View()
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, "abc123")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, m.screen)
}

func TestBrowser_Quit(t *testing.T) {
	m, _ := newTestBrowser(t)

	_, cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestNew_RequiresClient(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, nil)
	assert.ErrorIs(t, err, errNoBlogClient)
}
