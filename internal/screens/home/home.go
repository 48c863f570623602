package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hkawai/kioku/internal/dashboard"
	"github.com/hkawai/kioku/internal/router"
	"github.com/hkawai/kioku/internal/screen"
	"github.com/hkawai/kioku/internal/screens/datasets"
	"github.com/hkawai/kioku/internal/screens/settings"
	"github.com/hkawai/kioku/internal/screens/stats"
	"github.com/hkawai/kioku/internal/store"
	"github.com/hkawai/kioku/internal/ui/components"
	"github.com/hkawai/kioku/internal/ui/theme"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	st       *store.Store
	menu     components.Menu
	overview *dashboard.Overview
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)

// overviewMsg carries the dashboard snapshot for the header card.
type overviewMsg struct {
	Overview *dashboard.Overview
	Err      error
}

// New creates a new HomeScreen.
func New(st *store.Store) *HomeScreen {
	items := []components.MenuItem{
		{Label: "STUDY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: datasets.New(st, datasets.ModeStudy)}
			}
		}},
		{Label: "DATASETS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: datasets.New(st, datasets.ModeManage)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(st, "")}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(st)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		st:   st,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadOverview()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) loadOverview() tea.Cmd {
	st := h.st
	return func() tea.Msg {
		ov, err := dashboard.Load(context.Background(), st, "", time.Now().UnixMilli())
		return overviewMsg{Overview: ov, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.overview = msg.Overview
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("キオク · Kioku"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("spaced-repetition flashcards"))
	b.WriteString("\n\n")

	if h.overview != nil {
		due := h.overview.Due
		line := fmt.Sprintf("%d overdue · %d due today", due.Overdue, due.Today)
		if h.overview.Retention != nil {
			line += fmt.Sprintf(" · retention %.0f%%", *h.overview.Retention*100)
		}
		b.WriteString(theme.Subtitle.Width(width).Render(line))
		b.WriteString("\n\n")
	}

	menu := h.menu.View()
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(menu))

	if h.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(h.errMsg))
	}

	return b.String()
}
