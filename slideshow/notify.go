package slideshow

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/gesture/internal/config"
	"github.com/ayoisaiah/gesture/internal/osutil"
)

// Notifier reacts to slideshow events outside the terminal.
type Notifier struct {
	logger   *slog.Logger
	beep     func() error
	notify   func(title, msg string) error
	run      func(name string, args ...string) error
	settings config.SettingsConfig
}

// NewNotifier returns a Notifier that uses desktop notifications and the
// system bell.
func NewNotifier(settings config.SettingsConfig, logger *slog.Logger) *Notifier {
	return &Notifier{
		settings: settings,
		logger:   logger,
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
		notify: func(title, msg string) error {
			return beeep.Notify(title, msg, "")
		},
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Advanced beeps when the slideshow moves on by itself.
func (n *Notifier) Advanced() tea.Cmd {
	if !n.settings.Beep {
		return nil
	}

	return func() tea.Msg {
		if err := n.beep(); err != nil {
			n.logger.Warn("unable to beep", slog.Any("error", err))
		}

		return nil
	}
}

// Finished announces the end of the session and runs the configured
// command.
func (n *Notifier) Finished(msg FinishedMsg) tea.Cmd {
	if !n.settings.Notify && n.settings.Cmd == "" {
		return nil
	}

	return func() tea.Msg {
		if n.settings.Notify {
			err := n.notify(
				"Drawing session complete",
				fmt.Sprintf("You drew %d references. Great work!", msg.Images),
			)
			if err != nil {
				n.logger.Warn("unable to display notification", slog.Any("error", err))
			}
		}

		if err := n.runSessionCmd(n.settings.Cmd); err != nil {
			n.logger.Error("session command failed",
				slog.String("cmd", n.settings.Cmd),
				slog.Any("error", err),
			)
		}

		return nil
	}
}

// runSessionCmd executes the specified command.
func (n *Notifier) runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse settings.cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return n.run(cmdSlice[0], cmdSlice[1:]...)
}

// Open shows target with the default handler of the operating system.
func (n *Notifier) Open(target string) tea.Cmd {
	if target == "" {
		return nil
	}

	return func() tea.Msg {
		name, args := osutil.OpenCommand(runtime.GOOS, target)

		if err := n.run(name, args...); err != nil {
			n.logger.Warn("unable to open image",
				slog.String("url", target),
				slog.Any("error", err),
			)
		}

		return nil
	}
}
