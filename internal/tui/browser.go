package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

type screen int

const (
	screenList screen = iota
	screenDetail
	screenAuthors
	screenBuildInfo
)

type browserModel struct {
	ctx    context.Context
	client adapter.BlogClient
	info   models.AppBuildInfo

	screen  screen
	list    listModel
	detail  detailModel
	authors authorsModel
	overlay *errorOverlayModel
	status  string

	// categoryIdx indexes models.PostCategories; -1 shows every category.
	categoryIdx int
	creator     *models.User

	copyText func(string) error
}

func newBrowserModel(ctx context.Context, client adapter.BlogClient, info models.AppBuildInfo) browserModel {
	return browserModel{
		ctx:         ctx,
		client:      client,
		info:        info,
		list:        newListModel(),
		categoryIdx: -1,
		copyText:    clipboard.WriteAll,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadPosts())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case postsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
			return m, nil
		}
		m.list.setItems(msg.posts)
		return m, nil
	case authorLoadedMsg:
		if msg.err != nil {
			m.detail.authorErr = msg.err
			return m, nil
		}
		if msg.user.ID == m.detail.post.Creator {
			user := msg.user
			m.detail.author = &user
		}
		return m, nil
	case authorsLoadedMsg:
		m.authors.loading = false
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
			return m, nil
		}
		m.authors.users = msg.users
		m.authors.idx = 0
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
			return m, nil
		}
		m.status = "Скопировано: " + msg.text
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m browserModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(msg)
	case screenAuthors:
		return m.updateAuthors(msg)
	case screenBuildInfo:
		if key.Matches(msg, keys.esc) {
			m.screen = screenList
		}
		return m, nil
	default:
		return m.updateList(msg)
	}
}

func (m browserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.list.moveUp()
	case key.Matches(msg, keys.down):
		m.list.moveDown()
	case key.Matches(msg, keys.enter):
		post, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{post: post}
		m.screen = screenDetail
		return m, m.cmdLoadAuthor(post.Creator)
	case key.Matches(msg, keys.nextCat):
		return m.setCategory(m.categoryIdx + 1)
	case key.Matches(msg, keys.prevCat):
		return m.setCategory(m.categoryIdx - 1)
	case key.Matches(msg, keys.esc):
		if m.creator == nil {
			return m, nil
		}
		m.creator = nil
		return m.reload()
	case key.Matches(msg, keys.refresh):
		return m.reload()
	case key.Matches(msg, keys.authors):
		m.screen = screenAuthors
		m.authors = authorsModel{loading: true}
		return m, m.cmdLoadAuthors()
	case key.Matches(msg, keys.copy):
		post, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopyThumbnail(post)
	case key.Matches(msg, keys.buildInfo):
		m.screen = screenBuildInfo
	}

	return m, nil
}

func (m browserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyThumbnail(m.detail.post)
	}
	return m, nil
}

func (m browserModel) updateAuthors(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
	case key.Matches(msg, keys.up):
		if m.authors.idx > 0 {
			m.authors.idx--
		}
	case key.Matches(msg, keys.down):
		if m.authors.idx < len(m.authors.users)-1 {
			m.authors.idx++
		}
	case key.Matches(msg, keys.enter):
		user, ok := m.authors.current()
		if !ok {
			return m, nil
		}
		m.creator = &user
		m.categoryIdx = -1
		m.screen = screenList
		return m.reload()
	}
	return m, nil
}

// setCategory wraps idx into [-1, len(PostCategories)) and drops the
// author filter.
func (m browserModel) setCategory(idx int) (tea.Model, tea.Cmd) {
	n := len(models.PostCategories)
	switch {
	case idx >= n:
		idx = -1
	case idx < -1:
		idx = n - 1
	}

	m.categoryIdx = idx
	m.creator = nil
	return m.reload()
}

func (m browserModel) reload() (tea.Model, tea.Cmd) {
	m.list.loading = true
	m.list.idx = 0
	return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadPosts())
}

func (m browserModel) filterLabel() string {
	switch {
	case m.creator != nil:
		return "автор: " + m.creator.Name
	case m.categoryIdx >= 0:
		return models.PostCategories[m.categoryIdx]
	default:
		return "все категории"
	}
}

func (m browserModel) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}

	var out string
	switch m.screen {
	case screenDetail:
		out = m.detail.View()
	case screenAuthors:
		out = m.authors.View()
	case screenBuildInfo:
		out = renderBuildInfoWindow(m.info)
	default:
		out = m.list.View(m.filterLabel()) + "\n" +
			helpStyle.Render("↑/↓ выбор  enter открыть  tab/shift+tab категория  a авторы  c копир. обложку  r обновить  i о программе  q выход")
	}

	if m.status != "" {
		out += "\n\n" + m.status
	}

	return appStyle.Render(out)
}

// ── commands ──

func (m browserModel) cmdLoadPosts() tea.Cmd {
	ctx, client := m.ctx, m.client
	creator := m.creator
	category := ""
	if m.categoryIdx >= 0 {
		category = models.PostCategories[m.categoryIdx]
	}

	return func() tea.Msg {
		var (
			posts []models.Post
			err   error
		)
		switch {
		case creator != nil:
			posts, err = client.ListPostsByCreator(ctx, creator.ID)
		case category != "":
			posts, err = client.ListPostsByCategory(ctx, category)
		default:
			posts, err = client.ListPosts(ctx)
		}
		return postsLoadedMsg{posts: posts, err: err}
	}
}

func (m browserModel) cmdLoadAuthor(userID string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		user, err := client.GetUser(ctx, userID)
		return authorLoadedMsg{user: user, err: err}
	}
}

func (m browserModel) cmdLoadAuthors() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		users, err := client.ListAuthors(ctx)
		return authorsLoadedMsg{users: users, err: err}
	}
}

func (m browserModel) cmdCopyThumbnail(post models.Post) tea.Cmd {
	if post.Thumbnail == "" {
		return func() tea.Msg {
			return copiedMsg{err: fmt.Errorf("у публикации %q нет обложки", post.Title)}
		}
	}

	link := m.client.UploadURL(post.Thumbnail)
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(link); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{text: link}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
