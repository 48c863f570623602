package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hkawai/kioku/internal/router"
	"github.com/hkawai/kioku/internal/screen"
	"github.com/hkawai/kioku/internal/screens/datasets"
	"github.com/hkawai/kioku/internal/screens/home"
	"github.com/hkawai/kioku/internal/screens/study"
	"github.com/hkawai/kioku/internal/store"
	"github.com/hkawai/kioku/internal/ui/layout"
)

// dueCountMsg refreshes the header's due badge.
type dueCountMsg struct {
	Count store.DueCount
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	st     *store.Store
	router *router.Router
	due    store.DueCount
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(st *store.Store) AppModel {
	return AppModel{
		st:     st,
		router: router.New(home.New(st)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.InitAll(), m.refreshDue())
}

func (m AppModel) refreshDue() tea.Cmd {
	st := m.st
	return func() tea.Msg {
		count, err := st.CountDue(context.Background(), "", time.Now().UnixMilli())
		if err != nil {
			return dueCountMsg{}
		}
		return dueCountMsg{Count: count}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dueCountMsg:
		m.due = msg.Count
		return m, nil

	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		// Screens below may have changed the data; recount after any
		// navigation.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshDue())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				if handled, cmd := h.HandleEsc(); handled {
					return m, cmd
				}
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.due.Overdue, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over an open store.
func Run(st *store.Store) error {
	return run(newAppModel(st))
}

// RunStudy starts the program straight into a study run. An empty
// datasetID lands on the dataset picker instead.
func RunStudy(st *store.Store, datasetID string) error {
	m := newAppModel(st)
	if datasetID == "" {
		m.router.Push(datasets.New(st, datasets.ModeStudy))
	} else {
		m.router.Push(study.New(st, datasetID))
	}
	return run(m)
}

func run(m AppModel) error {
	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
