package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/hkawai/kioku/internal/dashboard"
	"github.com/hkawai/kioku/internal/screen"
	"github.com/hkawai/kioku/internal/store"
	"github.com/hkawai/kioku/internal/ui/theme"
)

// StatsScreen shows due counts, mean retention and frequent confusions,
// either for one dataset or across everything.
type StatsScreen struct {
	st        *store.Store
	datasetID string
	overview  *dashboard.Overview
	loading   bool
	errMsg    string
}

var _ screen.Screen = (*StatsScreen)(nil)

// loadedMsg carries the assembled overview.
type loadedMsg struct {
	Overview *dashboard.Overview
	Err      error
}

// New creates a StatsScreen. An empty datasetID spans all datasets.
func New(st *store.Store, datasetID string) *StatsScreen {
	return &StatsScreen{st: st, datasetID: datasetID, loading: true}
}

func (s *StatsScreen) Init() tea.Cmd {
	st, id := s.st, s.datasetID
	return func() tea.Msg {
		ov, err := dashboard.Load(context.Background(), st, id, time.Now().UnixMilli())
		return loadedMsg{Overview: ov, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.overview = msg.Overview
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case s.loading:
		b.WriteString(theme.Hint.Render("  Loading..."))
	case s.errMsg != "":
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
	case s.overview != nil:
		ov := s.overview
		b.WriteString(theme.Body.Render(fmt.Sprintf("  Due now:    %d", ov.Due.Overdue)))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("  Due today:  %d", ov.Due.Today)))
		b.WriteString("\n")
		if ov.Retention != nil {
			b.WriteString(theme.Body.Render(fmt.Sprintf("  Retention:  %.0f%%", *ov.Retention*100)))
		} else {
			b.WriteString(theme.Hint.Render("  Retention:  no reviews yet"))
		}
		b.WriteString("\n\n")

		if len(ov.Confusions) == 0 {
			b.WriteString(theme.Hint.Render("  No mixed-up cards recorded."))
		} else {
			b.WriteString(theme.Subtitle.Render("  Often mixed up"))
			b.WriteString("\n")
			for _, c := range ov.Confusions {
				b.WriteString(theme.Body.Render(fmt.Sprintf(
					"  %2d×  %s ↔ %s", c.Count, trim(c.LabelA, 28), trim(c.LabelB, 28))))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
