package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/gesture/internal/config"
	"github.com/ayoisaiah/gesture/internal/logging"
	"github.com/ayoisaiah/gesture/internal/models"
	"github.com/ayoisaiah/gesture/internal/osutil"
	"github.com/ayoisaiah/gesture/internal/pathutil"
	"github.com/ayoisaiah/gesture/internal/pool"
	"github.com/ayoisaiah/gesture/internal/provider"
	"github.com/ayoisaiah/gesture/internal/server"
	"github.com/ayoisaiah/gesture/internal/ui"
	"github.com/ayoisaiah/gesture/slideshow"
)

const (
	envNoColor        = "NO_COLOR"
	envGestureNoColor = "GESTURE_NO_COLOR"
	envFile           = ".env"
)

var logWriter io.WriteCloser

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the configuration file and applies the command-line
// overrides. The routine form is not shown.
func loadConfig(ctx *cli.Context) (*config.Config, *slog.Logger, error) {
	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, logging.New(logWriter, cfg.Log.Level), nil
}

// editConfigAction handles the edit-config command which opens the gesture
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// Loading creates the file with default values on first use. Validation
	// errors are ignored here since fixing them is the point of editing.
	if _, err := config.New(config.WithViperConfig(pathutil.ConfigFilePath())); err != nil {
		slog.Debug("config loaded with errors", slog.Any("error", err))
	}

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// imagesAction handles the images command which fetches a pool for the
// configured routine and prints it.
func imagesAction(ctx *cli.Context) error {
	cfg, logger, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	client, err := provider.New(cfg.Provider)
	if err != nil {
		return err
	}

	asJSON := ctx.Bool("json")

	var spinner *pterm.SpinnerPrinter
	if !asJSON {
		spinner, _ = pterm.DefaultSpinner.Start("Fetching reference images...")
	}

	images, err := pool.NewBuilder(client, pool.WithLogger(logger)).
		Build(ctx.Context, cfg.Routine)

	if spinner != nil {
		if err != nil {
			spinner.Fail("Failed to fetch images")
		} else {
			spinner.Success(cfg.Routine.Summary(len(images)))
		}
	}

	if err != nil {
		return err
	}

	if asJSON {
		return printImagesJSON(config.Stdout, images)
	}

	ui.PrintTable(imagesTable(images), config.Stdout)

	return nil
}

// serveAction handles the serve command which runs the image proxy until the
// process is interrupted.
func serveAction(ctx *cli.Context) error {
	cfg, logger, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var client provider.Client

	client, err = provider.NewUnsplash(provider.UnsplashOptions{
		BaseURL:         cfg.Provider.BaseURL,
		AccessKey:       cfg.Provider.AccessKey,
		Timeout:         cfg.Provider.Timeout,
		RequestsPerHour: cfg.Provider.RequestsPerHour,
	})
	if err != nil {
		if !errors.Is(err, provider.ErrMissingAccessKey) {
			return err
		}

		pterm.Warning.Printfln("%s: image requests will fail", err.Error())

		client = unconfiguredClient{}
	}

	addr := firstNonEmptyString(ctx.String("addr"), cfg.Server.Addr)

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pterm.Info.Printfln("Image proxy listening on %s (press Ctrl-C to stop)", addr)

	return server.New(client, cfg.Server, logger).ListenAndServe(sigCtx, addr)
}

// defaultAction shows the routine form and runs the slideshow. Leaving the
// slideshow with the config key shows the form again, pre-filled with the
// last routine.
func defaultAction(ctx *cli.Context) error {
	var last *config.Config

	for {
		opts := []config.Option{
			config.WithViperConfig(pathutil.ConfigFilePath()),
			config.WithCLIConfig(ctx),
		}

		if last != nil {
			opts = append(opts, withRoutine(last.Routine))
		}

		opts = append(opts, config.WithPromptConfig(true))

		cfg, err := config.New(opts...)
		if err != nil {
			return err
		}

		logger := logging.New(logWriter, cfg.Log.Level)

		ui.DarkTheme = cfg.Display.DarkTheme

		reconfigure, err := runSlideshow(ctx.Context, cfg, logger)
		if err != nil || !reconfigure {
			return err
		}

		last = cfg
	}
}

// withRoutine restores a routine chosen earlier and forces the form to be
// shown again.
func withRoutine(r config.RoutineConfig) config.Option {
	return func(c *config.Config) error {
		c.Routine = r
		c.CLI.SkipPrompt = false

		return nil
	}
}

// runSlideshow runs a single drawing session. It reports whether the user
// asked to change the routine.
func runSlideshow(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (bool, error) {
	client, err := provider.New(cfg.Provider)
	if err != nil {
		return false, err
	}

	builder := pool.NewBuilder(client, pool.WithLogger(logger))

	session := slideshow.NewSession(
		cfg.Routine,
		builder,
		slideshow.WithSessionLogger(logger),
	)
	defer session.Close()

	model := slideshow.NewModel(
		session,
		slideshow.NewNotifier(cfg.Settings, logger),
		cfg.Display,
		logger,
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("slideshow: %w", err)
	}

	m, ok := final.(*slideshow.Model)

	return ok && m.Reconfigure(), nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if GESTURE_NO_COLOR is set
	if _, exists := os.LookupEnv(envGestureNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	level := "info"
	if ctx.Bool("debug") {
		level = "debug"
	}

	logWriter = logging.NewFileWriter(pathutil.LogFilePath())

	logging.New(logWriter, level).Debug("starting gesture", slog.String("version", config.Version))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting gesture")

	if logWriter != nil {
		return logWriter.Close()
	}

	return nil
}

// unconfiguredClient stands in for the Unsplash client when no access key is
// available so that the proxy can still answer with a descriptive error.
type unconfiguredClient struct{}

func (unconfiguredClient) FetchReferenceImages(
	context.Context,
	config.BodyPart,
	config.ContentType,
	int,
) ([]models.ImageRecord, error) {
	return nil, provider.ErrMissingAccessKey
}
