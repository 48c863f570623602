package datasets

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/hkawai/kioku/internal/router"
	"github.com/hkawai/kioku/internal/screen"
	"github.com/hkawai/kioku/internal/screens/stats"
	"github.com/hkawai/kioku/internal/screens/study"
	"github.com/hkawai/kioku/internal/store"
	"github.com/hkawai/kioku/internal/ui/layout"
	"github.com/hkawai/kioku/internal/ui/theme"
)

// Mode selects what Enter does on a dataset.
type Mode int

const (
	ModeStudy  Mode = iota // Enter starts a study run
	ModeManage             // Enter opens per-dataset stats
)

// DatasetsScreen lists datasets for studying or managing.
type DatasetsScreen struct {
	st       *store.Store
	mode     Mode
	rows     []row
	selected int
	loading  bool
	confirm  bool // delete confirmation pending
	errMsg   string
}

type row struct {
	summary store.DatasetSummary
	due     store.DueCount
}

var _ screen.Screen = (*DatasetsScreen)(nil)
var _ screen.KeyHintProvider = (*DatasetsScreen)(nil)
var _ screen.EscHandler = (*DatasetsScreen)(nil)

// loadedMsg carries the dataset list with per-dataset due counts.
type loadedMsg struct {
	Rows []row
	Err  error
}

// deletedMsg confirms a dataset delete finished.
type deletedMsg struct {
	Err error
}

// New creates a new DatasetsScreen.
func New(st *store.Store, mode Mode) *DatasetsScreen {
	return &DatasetsScreen{st: st, mode: mode, loading: true}
}

func (d *DatasetsScreen) Init() tea.Cmd {
	return d.load()
}

func (d *DatasetsScreen) Title() string {
	if d.mode == ModeManage {
		return "Datasets"
	}
	return "Study"
}

// HandleEsc cancels a pending delete confirmation instead of popping.
func (d *DatasetsScreen) HandleEsc() (bool, tea.Cmd) {
	if d.confirm {
		d.confirm = false
		return true, nil
	}
	return false, nil
}

func (d *DatasetsScreen) KeyHints() []layout.KeyHint {
	if d.confirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	if d.mode == ModeManage {
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Stats"},
			layout.KeyHint{Key: "S", Description: "Study"},
			layout.KeyHint{Key: "D", Description: "Delete"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Study"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (d *DatasetsScreen) load() tea.Cmd {
	st := d.st
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now().UnixMilli()
		summaries, err := st.ListDatasets(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}
		rows := make([]row, 0, len(summaries))
		for _, s := range summaries {
			due, err := st.CountDue(ctx, s.DatasetID, now)
			if err != nil {
				return loadedMsg{Err: err}
			}
			rows = append(rows, row{summary: s, due: due})
		}
		return loadedMsg{Rows: rows}
	}
}

func (d *DatasetsScreen) deleteSelected() tea.Cmd {
	st := d.st
	id := d.rows[d.selected].summary.DatasetID
	return func() tea.Msg {
		return deletedMsg{Err: st.DeleteDataset(context.Background(), id)}
	}
}

func (d *DatasetsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		d.loading = false
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.rows = msg.Rows
		if d.selected >= len(d.rows) {
			d.selected = 0
		}
		return d, nil

	case deletedMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.errMsg = ""
		return d, d.load()

	case tea.KeyMsg:
		if d.confirm {
			switch msg.String() {
			case "y", "Y":
				d.confirm = false
				return d, d.deleteSelected()
			case "n", "N":
				d.confirm = false
			}
			return d, nil
		}

		switch msg.String() {
		case "up", "k":
			if d.selected > 0 {
				d.selected--
			}
		case "down", "j":
			if d.selected < len(d.rows)-1 {
				d.selected++
			}
		case "enter":
			if len(d.rows) == 0 {
				return d, nil
			}
			id := d.rows[d.selected].summary.DatasetID
			if d.mode == ModeManage {
				return d, func() tea.Msg {
					return router.PushScreenMsg{Screen: stats.New(d.st, id)}
				}
			}
			return d, func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(d.st, id)}
			}
		case "s", "S":
			if d.mode == ModeManage && len(d.rows) > 0 {
				id := d.rows[d.selected].summary.DatasetID
				return d, func() tea.Msg {
					return router.PushScreenMsg{Screen: study.New(d.st, id)}
				}
			}
		case "d", "D":
			if d.mode == ModeManage && len(d.rows) > 0 {
				d.confirm = true
			}
		case "r":
			d.loading = true
			return d, d.load()
		}
	}
	return d, nil
}

func (d *DatasetsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case d.loading:
		b.WriteString(theme.Hint.Render("  Loading datasets..."))
	case len(d.rows) == 0:
		b.WriteString(theme.Body.Render("  No datasets yet."))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("  Import one with: kioku import <file.json>"))
	default:
		for i, r := range d.rows {
			label := fmt.Sprintf("%s  (%d cards, %d due)",
				r.summary.Title, r.summary.CardCount, r.due.Overdue)
			if i == d.selected {
				b.WriteString(theme.Selected.Render("  ▸ " + label))
			} else {
				b.WriteString(theme.Unselected.Render("    " + label))
			}
			b.WriteString("\n")
			if i == d.selected && r.summary.Description != "" {
				b.WriteString(theme.Hint.Render("      " + r.summary.Description))
				b.WriteString("\n")
			}
		}
	}

	if d.confirm {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render(fmt.Sprintf(
			"  Delete %q and all its progress? (y/n)", d.rows[d.selected].summary.Title)))
	}
	if d.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + d.errMsg))
	}

	return b.String()
}
