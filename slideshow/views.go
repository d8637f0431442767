package slideshow

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/gesture/internal/config"
	"github.com/ayoisaiah/gesture/internal/timeutil"
)

func (m *Model) loadingView() string {
	var s strings.Builder

	s.WriteString(m.spinner.View())
	s.WriteString(m.styles.Main.SetString("Loading your drawing session...").String())
	s.WriteString("\n\n")
	s.WriteString(m.styles.Hint.SetString(m.routine().Summary(m.routine().ImageCount)).String())
	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.configure,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m *Model) errorView(err error) string {
	var s strings.Builder

	s.WriteString(m.styles.Error.SetString("Error: " + err.Error()).String())
	s.WriteString("\n\n")
	s.WriteString(m.styles.Secondary.SetString("The reference images could not be loaded.").String())
	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.retry,
		defaultKeymap.configure,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m *Model) emptyView() string {
	var s strings.Builder

	s.WriteString(m.styles.Main.SetString("No reference images were found for this routine").String())
	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.retry,
		defaultKeymap.configure,
		defaultKeymap.quit,
	}))

	return s.String()
}

// countdownView renders the clock and the per-image progress bar.
func (m *Model) countdownView(st State) string {
	var s strings.Builder

	tpi := m.routine().TimePerImage

	switch {
	case st.Finished:
		s.WriteString(m.styles.Main.SetString("Session complete").String())
	case st.Countdown == Expired:
		s.WriteString(m.styles.Hint.SetString("Next image...").String())
	case st.Countdown == Paused:
		s.WriteString(m.styles.Main.SetString(timeutil.FormatClock(st.Remaining)).String())
		s.WriteString(" " + m.styles.Secondary.SetString("[Paused]").String())
	default:
		s.WriteString(m.styles.Main.SetString(timeutil.FormatClock(st.Remaining)).String())
	}

	elapsed := 1.0
	if st.Countdown == Running || st.Countdown == Paused {
		elapsed = 1 - float64(st.Remaining)/float64(tpi)
	}

	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(elapsed))
	s.WriteString("\n")
	s.WriteString(m.styles.Hint.SetString(
		fmt.Sprintf("Session %d%% complete", timeutil.Round(m.session.Progress())),
	).String())

	return s.String()
}

func (m *Model) slideView(st State) string {
	var s strings.Builder

	img := st.Images[st.CurrentIndex]

	s.WriteString(m.styles.Badge.SetString(img.BodyPart.Label()).String())
	s.WriteString(" ")
	s.WriteString(m.styles.Hint.SetString(
		fmt.Sprintf("Image %d of %d", st.CurrentIndex+1, len(st.Images)),
	).String())
	s.WriteString("\n\n")

	if st.HasTimer {
		s.WriteString(m.countdownView(st))
	} else {
		s.WriteString(m.styles.Hint.SetString("No timer: move on whenever you are ready").String())
	}

	s.WriteString("\n\n")
	s.WriteString(m.styles.Main.SetString(img.AltText).String())
	s.WriteString("\n")
	s.WriteString(m.styles.Hint.SetString(img.URL).String())
	s.WriteString("\n\n")
	s.WriteString("Photo by " + m.styles.Secondary.SetString(img.Photographer).String())

	if img.PhotographerProfileURL != "" {
		s.WriteString(" " + m.styles.Hint.SetString("("+img.PhotographerProfileURL+")").String())
	}

	s.WriteString("\n\n")
	s.WriteString(m.styles.Hint.SetString(m.routine().Summary(len(st.Images))).String())
	s.WriteString("\n")
	s.WriteString(m.styles.Hint.SetString("Images provided by Unsplash").String())
	s.WriteString(m.slideHelpView(st))

	return s.String()
}

func (m *Model) slideHelpView(st State) string {
	bindings := []key.Binding{
		defaultKeymap.previous,
		defaultKeymap.next,
	}

	if st.HasTimer && !st.Finished {
		bindings = append(bindings, defaultKeymap.togglePlay)
	}

	bindings = append(bindings,
		defaultKeymap.open,
		defaultKeymap.retry,
		defaultKeymap.configure,
		defaultKeymap.quit,
	)

	return "\n\n" + m.help.ShortHelpView(bindings)
}

func (m *Model) routine() config.RoutineConfig {
	return m.session.Config()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.session.Snapshot()

	var view string

	switch {
	case st.Loading:
		view = m.loadingView()
	case st.Err != nil:
		view = m.errorView(st.Err)
	case len(st.Images) == 0:
		view = m.emptyView()
	default:
		view = m.slideView(st)
	}

	return m.styles.Base.Render(view)
}
