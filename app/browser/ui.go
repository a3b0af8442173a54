package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/RacoonMediaServer/rms-catalog/internal/model"
	"github.com/RacoonMediaServer/rms-catalog/internal/navigation"
	"github.com/RacoonMediaServer/rms-catalog/internal/selection"
	"github.com/RacoonMediaServer/rms-catalog/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const narrowBreakpoint = 110

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	focusedStyle  = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("39")).Foreground(lipgloss.Color("0"))
	selectedStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("178"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// browserModel is a thin bubbletea shell: every behavior lives in the
// session, the model only translates keys and renders state.
type browserModel struct {
	session *session.Session
	notices *noticeLog

	search string
	width  int
	height int
	err    error
}

func newBrowserModel(browseSession *session.Session, notices *noticeLog) browserModel {
	return browserModel{session: browseSession, notices: notices}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	focus := m.session.Focus

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyTab:
		m.navigate("Tab")
	case tea.KeyShiftTab:
		m.navigate("ShiftTab")
	case tea.KeyLeft:
		m.navigate("ArrowLeft")
	case tea.KeyRight:
		m.navigate("ArrowRight")
	case tea.KeyUp:
		m.navigate("ArrowUp")
	case tea.KeyDown:
		m.navigate("ArrowDown")

	case tea.KeyEsc:
		if focus.IsSearchFocused() {
			m.search = m.session.Filters.Query
			focus.SelectFirstChannel()
			break
		}
		_, m.err = m.session.GoBack(ctx)

	case tea.KeyEnter:
		if focus.IsSearchFocused() {
			_, m.err = m.session.SetQuery(ctx, m.search)
			focus.SelectFirstChannel()
			break
		}
		m.activate(ctx)

	case tea.KeyBackspace:
		if focus.IsSearchFocused() && len(m.search) > 0 {
			m.search = m.search[:len(m.search)-1]
		}

	case tea.KeySpace:
		if m.session.Selection.Mode() {
			if ch := m.focusedChannel(); ch != nil {
				m.session.Selection.Toggle(ch.ID)
			}
		}

	case tea.KeyRunes:
		if focus.IsSearchFocused() {
			m.search += string(msg.Runes)
			break
		}
		return m.handleHotkey(ctx, msg.String())
	}

	return m, nil
}

func (m browserModel) handleHotkey(ctx context.Context, key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "/":
		m.search = ""
		m.session.Focus.FocusSearch()
	case "m":
		next := (m.session.Filters.ViewMode + 1) % 5
		_, m.err = m.session.SwitchViewMode(ctx, next)
	case "s":
		next := (m.session.Filters.Sort + 1) % 3
		_, m.err = m.session.SetSort(ctx, next)
	case "v":
		m.session.Selection.SetMode(!m.session.Selection.Mode())
	case "f":
		m.err = m.session.BulkAction(ctx, selection.ActionFavorite)
	case "F":
		m.err = m.session.BulkAction(ctx, selection.ActionUnfavorite)
	case "h":
		m.err = m.session.BulkAction(ctx, selection.ActionHide)
	case "u":
		m.err = m.session.BulkAction(ctx, selection.ActionUnhide)
	case "w":
		m.err = m.session.BulkAction(ctx, selection.ActionWhitelist)
	case "r":
		m.err = m.session.Loader.RefreshAll(ctx, "requested by user")
		if m.err == nil {
			_, m.err = m.session.Load(ctx, false)
		}
	}

	return m, nil
}

func (m *browserModel) navigate(key string) {
	loader := m.session.Loader
	load := m.session.Focus.Navigate(
		key,
		loader.ChannelCount(),
		loader.ReachedEnd(),
		false,
		false,
		m.width > 0 && m.width < narrowBreakpoint,
		m.session.Filters.Page,
	)
	if load {
		_, m.err = m.session.LoadMore(context.Background())
	}
}

func (m *browserModel) activate(ctx context.Context) {
	ch := m.focusedChannel()
	if ch == nil {
		return
	}

	if ch.IsDrillable() {
		_, m.err = m.session.DrillIn(ctx, ch)
		return
	}

	if err := m.session.Watch(ctx, ch.ID); err != nil {
		m.err = err
		return
	}
	m.notices.Info(fmt.Sprintf("Playing '%s'", ch.Name))
}

func (m *browserModel) focusedChannel() *model.Channel {
	channels := m.session.Loader.Channels()
	focus := m.session.Focus.Focus
	if focus < 0 || focus >= len(channels) {
		return nil
	}
	return channels[focus]
}

func (m browserModel) View() string {
	if m.width == 0 {
		m.width = 120
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.renderGrid())
	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m browserModel) renderHeader() string {
	title := titleStyle.Render(strings.ToUpper(m.session.Filters.ViewMode.String()))

	crumbs := ""
	if path := m.session.Nav.Path(); len(path) > 0 {
		crumbs = " " + mutedStyle.Render("› "+strings.Join(path, " › "))
	}

	search := ""
	if m.session.Focus.IsSearchFocused() {
		search = "  /" + m.search + "_"
	} else if m.session.Filters.Query != "" {
		search = "  " + mutedStyle.Render("/"+m.session.Filters.Query)
	}

	return title + crumbs + search
}

func (m browserModel) renderGrid() string {
	channels := m.session.Loader.Channels()
	if len(channels) == 0 {
		return mutedStyle.Render("No channels found")
	}

	cols := 6
	if m.width < narrowBreakpoint {
		cols = 3
	}
	cellWidth := m.width/cols - 2

	var s strings.Builder
	for i, ch := range channels {
		if i > 0 && i%cols == 0 {
			s.WriteString("\n")
		}
		s.WriteString(m.renderCell(ch, i, cellWidth))
	}
	return s.String()
}

func (m browserModel) renderCell(ch *model.Channel, index, width int) string {
	name := ch.Name
	if ch.Favorite {
		name = "★ " + name
	}
	if ch.IsDrillable() {
		name = name + " »"
	}
	if len(name) > width {
		name = name[:width-1] + "…"
	}

	style := cellStyle
	if index == m.session.Focus.Focus && m.session.Focus.Area == navigation.AreaGrid {
		style = focusedStyle
	} else if m.session.Selection.IsSelected(ch.ID) {
		style = selectedStyle
	}

	return style.Width(width).Render(name)
}

func (m browserModel) renderFooter() string {
	loader := m.session.Loader
	status := fmt.Sprintf("%d items", loader.ChannelCount())
	if !loader.ReachedEnd() {
		status += "+"
	}
	if m.session.Selection.Mode() {
		status += fmt.Sprintf("  [%d selected]", m.session.Selection.Count())
	}

	line := status
	if notice := m.notices.Last(); notice != "" {
		line += "  " + notice
	}
	if m.err != nil {
		line += "  " + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.err.Error())
	}

	help := mutedStyle.Render("←↑↓→ move  / search  enter open  esc back  m mode  s sort  v select  q quit")
	return line + "\n" + help
}
