package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/hkawai/kioku/internal/ui/layout"
)

// Screen is one full-screen surface managed by the router.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that want custom
// footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscHandler is an optional interface for screens that intercept Esc,
// e.g. to confirm before abandoning a study run.
type EscHandler interface {
	HandleEsc() (handled bool, cmd tea.Cmd)
}
