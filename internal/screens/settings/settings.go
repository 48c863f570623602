package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/hkawai/kioku/internal/screen"
	"github.com/hkawai/kioku/internal/store"
	"github.com/hkawai/kioku/internal/ui/components"
	"github.com/hkawai/kioku/internal/ui/layout"
	"github.com/hkawai/kioku/internal/ui/theme"
)

// Retention bounds mirror what the scheduler accepts.
const (
	minRetention  = 0.70
	maxRetention  = 0.97
	retentionStep = 0.01
)

// field identifies which setting has focus.
type field int

const (
	fieldRetention field = iota
	fieldExamDate
)

// SettingsScreen edits the target retention rate and the exam date.
type SettingsScreen struct {
	st       *store.Store
	current  store.Settings
	focus    field
	dateEdit bool
	input    components.TextInput
	loading  bool
	errMsg   string
	saved    bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)
var _ screen.EscHandler = (*SettingsScreen)(nil)

// loadedMsg carries the stored settings.
type loadedMsg struct {
	Settings store.Settings
	Err      error
}

// savedMsg confirms a settings write.
type savedMsg struct {
	Settings store.Settings
	Err      error
}

// New creates a SettingsScreen.
func New(st *store.Store) *SettingsScreen {
	return &SettingsScreen{
		st:      st,
		loading: true,
		input:   components.NewTextInput("YYYY-MM-DD", 10),
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	st := s.st
	return func() tea.Msg {
		settings, err := st.Settings(context.Background())
		return loadedMsg{Settings: settings, Err: err}
	}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

// HandleEsc cancels date editing instead of popping.
func (s *SettingsScreen) HandleEsc() (bool, tea.Cmd) {
	if s.dateEdit {
		s.dateEdit = false
		s.errMsg = ""
		return true, nil
	}
	return false, nil
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.dateEdit {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save date"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Edit"},
		{Key: "C", Description: "Clear date"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) save(patch store.SettingsPatch) tea.Cmd {
	st := s.st
	return func() tea.Msg {
		settings, err := st.UpdateSettings(context.Background(), patch)
		return savedMsg{Settings: settings, Err: err}
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.current = msg.Settings
		return s, nil

	case savedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.current = msg.Settings
		s.errMsg = ""
		s.saved = true
		return s, nil

	case tea.KeyMsg:
		s.saved = false
		if s.dateEdit {
			switch msg.String() {
			case "enter":
				raw := strings.TrimSpace(s.input.Value())
				if _, err := time.ParseInLocation("2006-01-02", raw, time.Local); err != nil {
					s.errMsg = "exam date must be YYYY-MM-DD"
					return s, nil
				}
				s.dateEdit = false
				s.errMsg = ""
				return s, s.save(store.SettingsPatch{ExamDate: &raw})
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}

		switch msg.String() {
		case "up", "k":
			s.focus = fieldRetention
		case "down", "j":
			s.focus = fieldExamDate
		case "left", "h":
			if s.focus == fieldRetention {
				return s, s.adjustRetention(-retentionStep)
			}
		case "right", "l":
			if s.focus == fieldRetention {
				return s, s.adjustRetention(retentionStep)
			}
		case "enter":
			if s.focus == fieldExamDate {
				s.input.Clear()
				if s.current.ExamDate != nil {
					s.input.Model.SetValue(*s.current.ExamDate)
				}
				s.dateEdit = true
				return s, s.input.Init()
			}
		case "c", "C":
			if s.current.ExamDate != nil {
				return s, s.save(store.SettingsPatch{ClearExamDate: true})
			}
		}
	}
	return s, nil
}

func (s *SettingsScreen) adjustRetention(delta float64) tea.Cmd {
	next := s.current.TargetRetention + delta
	if next < minRetention {
		next = minRetention
	}
	if next > maxRetention {
		next = maxRetention
	}
	if next == s.current.TargetRetention {
		return nil
	}
	return s.save(store.SettingsPatch{TargetRetention: &next})
}

func (s *SettingsScreen) View(width, height int) string {
	if s.loading {
		return "\n" + theme.Hint.Render("  Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")

	retention := fmt.Sprintf("Target retention   ◂ %3.0f%% ▸", s.current.TargetRetention*100)
	if s.focus == fieldRetention && !s.dateEdit {
		b.WriteString(theme.Selected.Render("  ▸ " + retention))
	} else {
		b.WriteString(theme.Unselected.Render("    " + retention))
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("      Higher means shorter intervals and more reviews."))
	b.WriteString("\n\n")

	date := "not set"
	if s.current.ExamDate != nil {
		date = *s.current.ExamDate
	}
	if s.dateEdit {
		b.WriteString(theme.Selected.Render("  ▸ Exam date         "))
		b.WriteString(s.input.View())
	} else if s.focus == fieldExamDate {
		b.WriteString(theme.Selected.Render("  ▸ Exam date         " + date))
	} else {
		b.WriteString(theme.Unselected.Render("    Exam date         " + date))
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("      Reviews are never scheduled past this day."))
	b.WriteString("\n")

	if s.saved {
		b.WriteString("\n")
		b.WriteString(theme.Correct.Render("  Saved."))
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
	}
	return b.String()
}
