// Package ui implements the interactive terminal browser over the
// catalog and playlist services. It is a pure consumer of the service
// layer and never touches the repositories directly.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/quietgrove/jukebox/internal/models"
	"github.com/quietgrove/jukebox/internal/services"
	"github.com/quietgrove/jukebox/internal/shared"
)

// ViewState represents the current view in the browser.
type ViewState int

const (
	CatalogView ViewState = iota
	PlaylistListView
	PlaylistDetailView
)

// Model represents the browser application state.
type Model struct {
	view      ViewState
	catalog   services.Catalog
	playlists services.Playlists

	width  int
	height int

	mediaList    list.Model
	playlistList list.Model
	memberList   list.Model
	selected     *models.Playlist

	err  error
	help help.Model
	keys keyMap
}

type catalogFetchedMsg struct {
	media []models.Media
	err   error
}

type playlistsFetchedMsg struct {
	playlists []*models.Playlist
	err       error
}

type membersFetchedMsg struct {
	playlist *models.Playlist
	err      error
}

// NewModel creates a new browser model with the provided services.
func NewModel(catalog services.Catalog, playlists services.Playlists) *Model {
	return &Model{
		view:      CatalogView,
		catalog:   catalog,
		playlists: playlists,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init loads the catalog and playlist listings.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCatalog(), m.fetchPlaylists())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.mediaList.SetSize(msg.Width-4, msg.Height-8)
		m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		m.memberList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case CatalogView:
			return m.handleCatalogKeys(msg)
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case PlaylistDetailView:
			return m.handlePlaylistDetailKeys(msg)
		}

	case catalogFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.media))
		for i, entry := range msg.media {
			items[i] = mediaItem{media: entry}
		}
		m.mediaList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.mediaList.Title = "Library"
		m.mediaList.SetSize(m.width-4, m.height-8)
		return m, nil

	case playlistsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.playlists))
		for i, pl := range msg.playlists {
			items[i] = playlistItem{playlist: pl}
		}
		m.playlistList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.playlistList.Title = "Playlists"
		m.playlistList.SetSize(m.width-4, m.height-8)
		return m, nil

	case membersFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = PlaylistListView
			return m, nil
		}
		m.selected = msg.playlist
		items := make([]list.Item, len(msg.playlist.Items()))
		for i, entry := range msg.playlist.Items() {
			items[i] = mediaItem{media: entry}
		}
		m.memberList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.memberList.Title = fmt.Sprintf("Items in %q", msg.playlist.Name())
		m.memberList.SetSize(m.width-4, m.height-8)
		m.view = PlaylistDetailView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case CatalogView:
		return m.renderList(m.mediaList, []key.Binding{m.keys.toggle, m.keys.quit})
	case PlaylistListView:
		return m.renderList(m.playlistList, []key.Binding{m.keys.enter, m.keys.toggle, m.keys.quit})
	case PlaylistDetailView:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m *Model) handleCatalogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.view = PlaylistListView
		return m, nil
	}

	var cmd tea.Cmd
	m.mediaList, cmd = m.mediaList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "esc":
		m.view = CatalogView
		return m, nil
	case "enter":
		selected := m.playlistList.SelectedItem()
		if selected != nil {
			if pl, ok := selected.(playlistItem); ok {
				return m, m.fetchMembers(pl.playlist.ID())
			}
		}
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlaylistDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PlaylistListView
		m.selected = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.memberList, cmd = m.memberList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case CatalogView:
		m.mediaList, cmd = m.mediaList.Update(msg)
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case PlaylistDetailView:
		m.memberList, cmd = m.memberList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchCatalog() tea.Cmd {
	return func() tea.Msg {
		media, err := m.catalog.GetAllMedia()
		return catalogFetchedMsg{media: media, err: err}
	}
}

func (m *Model) fetchPlaylists() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.playlists.GetAllPlaylists()
		return playlistsFetchedMsg{playlists: playlists, err: err}
	}
}

func (m *Model) fetchMembers(playlistID int64) tea.Cmd {
	return func() tea.Msg {
		playlist, err := m.playlists.GetPlaylistByID(playlistID)
		return membersFetchedMsg{playlist: playlist, err: err}
	}
}

func (m *Model) renderList(l list.Model, helpKeys []key.Binding) string {
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", l.View(), helpView)
}

func (m *Model) renderDetail() string {
	total := shared.FormatDuration(models.TotalDuration(m.selected.Items()))
	footer := styles.help.Render(fmt.Sprintf("total %s", total))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", m.memberList.View(), footer, helpView)
}
