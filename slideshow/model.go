package slideshow

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/gesture/internal/config"
)

// Model is the terminal slideshow. It forwards session messages to the
// Session and maps key presses to session operations.
type Model struct {
	session     *Session
	notifier    *Notifier
	logger      *slog.Logger
	help        help.Model
	spinner     spinner.Model
	progress    progress.Model
	styles      styles
	reconfigure bool
	quitting    bool
}

// NewModel returns a slideshow for session.
func NewModel(
	session *Session,
	notifier *Notifier,
	display config.DisplayConfig,
	logger *slog.Logger,
) *Model {
	st := newStyles(display.DarkTheme)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = st.Secondary

	return &Model{
		session:  session,
		notifier: notifier,
		logger:   logger,
		help:     help.New(),
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		styles:   st,
	}
}

// Reconfigure reports whether the user left the slideshow to change the
// routine.
func (m *Model) Reconfigure() bool {
	return m.reconfigure
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.session.Load(), m.spinner.Tick)
}

func (m *Model) exit() (tea.Model, tea.Cmd) {
	m.session.Close()
	m.quitting = true

	return m, tea.Quit
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m.exit()

	case key.Matches(msg, defaultKeymap.configure):
		m.reconfigure = true

		return m.exit()

	case key.Matches(msg, defaultKeymap.retry):
		if m.session.Snapshot().Loading {
			return m, nil
		}

		return m, tea.Batch(m.session.Retry(), m.spinner.Tick)

	case key.Matches(msg, defaultKeymap.togglePlay):
		return m, m.session.TogglePause()

	case key.Matches(msg, defaultKeymap.next):
		return m, m.session.Next()

	case key.Matches(msg, defaultKeymap.previous):
		return m, m.session.Previous()

	case key.Matches(msg, defaultKeymap.open):
		img, ok := m.session.Current()
		if !ok {
			return m, nil
		}

		return m, m.notifier.Open(img.URL)
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.logger.Debug("key press", slog.String("msg", spew.Sdump(msg)))

		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil

	case spinner.TickMsg:
		if !m.session.Snapshot().Loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case AdvancedMsg:
		return m, m.notifier.Advanced()

	case FinishedMsg:
		return m, m.notifier.Finished(msg)
	}

	return m, m.session.Update(msg)
}
