package study

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hkawai/kioku/internal/fsrs"
	"github.com/hkawai/kioku/internal/router"
	"github.com/hkawai/kioku/internal/screen"
	"github.com/hkawai/kioku/internal/session"
	"github.com/hkawai/kioku/internal/store"
	"github.com/hkawai/kioku/internal/ui/components"
	"github.com/hkawai/kioku/internal/ui/layout"
	"github.com/hkawai/kioku/internal/ui/theme"
)

// StudyScreen drives one study run over a dataset's due queue.
type StudyScreen struct {
	sess        *session.Session
	datasetID   string
	input       components.TextInput
	quitConfirm bool
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.EscHandler = (*StudyScreen)(nil)

// startedMsg is sent when the due queue has been loaded.
type startedMsg struct {
	Err error
}

// New creates a StudyScreen for one dataset.
func New(st *store.Store, datasetID string) *StudyScreen {
	return &StudyScreen{
		sess:      session.New(st),
		datasetID: datasetID,
		input:     components.NewTextInput("Type your answer...", 120),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return tea.Batch(s.start(), s.input.Init())
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) start() tea.Cmd {
	return func() tea.Msg {
		return startedMsg{Err: s.sess.Start(context.Background(), s.datasetID)}
	}
}

// HandleEsc asks for confirmation before abandoning a run in progress.
func (s *StudyScreen) HandleEsc() (bool, tea.Cmd) {
	if s.quitConfirm {
		s.quitConfirm = false
		return true, nil
	}
	switch s.sess.Phase {
	case session.PhaseQuestion, session.PhaseReviewing:
		s.quitConfirm = true
		return true, nil
	}
	return false, nil
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End run"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.sess.Phase {
	case session.PhaseQuestion:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Quit run"},
		}
	case session.PhaseReviewing:
		return []layout.KeyHint{
			{Key: "1", Description: "Again"},
			{Key: "2", Description: "Hard"},
			{Key: "3", Description: "Good"},
			{Key: "4", Description: "Easy"},
		}
	case session.PhaseDone:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		// Session errors surface through sess.Err rendering below; a
		// failed start leaves the session idle.
		return s, nil

	case tea.KeyMsg:
		if s.quitConfirm {
			switch msg.String() {
			case "y", "Y":
				s.quitConfirm = false
				s.sess.Reset()
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			case "n", "N":
				s.quitConfirm = false
			}
			return s, nil
		}

		switch s.sess.Phase {
		case session.PhaseQuestion:
			if msg.String() == "enter" {
				s.sess.SubmitAnswer(context.Background(), s.input.Value())
				if out := s.sess.Outcome; out != nil {
					s.input.Submit(out.IsCorrect)
				}
				return s, nil
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd

		case session.PhaseReviewing:
			var grade fsrs.Grade
			switch msg.String() {
			case "1":
				grade = fsrs.Unknown
			case "2":
				grade = fsrs.Hard
			case "3":
				grade = fsrs.Good
			case "4":
				grade = fsrs.Easy
			default:
				return s, nil
			}
			s.sess.SubmitGrade(context.Background(), grade)
			if s.sess.Phase == session.PhaseQuestion {
				s.input.Clear()
			}
			return s, nil

		case session.PhaseDone:
			if msg.String() == "enter" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}
	return s, nil
}

func (s *StudyScreen) View(width, height int) string {
	if s.quitConfirm {
		return "\n" + theme.Warning.Width(width).Align(lipgloss.Center).
			Render("End this study run? Progress so far is saved. (y/n)")
	}

	switch s.sess.Phase {
	case session.PhaseIdle, session.PhaseLoading:
		return "\n" + theme.Hint.Width(width).Align(lipgloss.Center).Render("Loading due cards...")
	case session.PhaseQuestion:
		return s.viewQuestion(width)
	case session.PhaseReviewing:
		return s.viewReviewing(width)
	case session.PhaseDone:
		return s.viewDone(width)
	}
	return ""
}

func (s *StudyScreen) viewQuestion(width int) string {
	item := s.sess.Current()
	if item == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Card %d of %d", s.sess.Position(), s.sess.Total())))
	b.WriteString("\n")
	bar := components.RenderProgressBar(s.sess.Position()-1, s.sess.Total(), width-8)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar))
	b.WriteString("\n\n")

	if item.Card.Topic != "" {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(item.Card.Topic))
		b.WriteString("\n")
	}
	question := theme.Card.Width(min(width-8, 64)).Render(item.Card.Question)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(question))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s.input.View()))
	return b.String()
}

func (s *StudyScreen) viewReviewing(width int) string {
	item := s.sess.Current()
	out := s.sess.Outcome
	if item == nil || out == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	if out.IsCorrect {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("正解！ Correct"))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("不正解 Incorrect"))
	}
	b.WriteString("\n\n")

	question := theme.Card.Width(min(width-8, 64)).Render(item.Card.Question)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(question))
	b.WriteString("\n\n")

	answers := strings.Join(item.Card.Answers, " / ")
	b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render("Answer: " + answers))
	b.WriteString("\n")
	if !out.IsCorrect && out.NormalizedInput != "" {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("You wrote: " + out.NormalizedInput))
		b.WriteString("\n")
	}
	if item.Card.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(item.Card.Explanation))
		b.WriteString("\n")
	}
	if s.sess.Confusion != nil {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Width(width).Align(lipgloss.Center).
			Render("That answer belongs to another card in this dataset."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("How well did you know it?  1 Again · 2 Hard · 3 Good · 4 Easy"))

	if s.sess.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).
			Render("Could not save the review, try again: " + s.sess.Err.Error()))
	}
	return b.String()
}

func (s *StudyScreen) viewDone(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("お疲れさま！ Done"))
	b.WriteString("\n\n")

	total := s.sess.Correct + s.sess.Incorrect
	if total == 0 {
		b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).
			Render("Nothing due right now. Come back later."))
	} else {
		b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render(
			fmt.Sprintf("%d reviewed · %d correct · %d to revisit",
				total, s.sess.Correct, s.sess.Incorrect)))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Press Enter or Esc to go back"))
	return b.String()
}
