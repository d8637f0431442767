// Package app defines the gesture command-line application
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/gesture/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the gesture app instance.
func Get() *cli.App {
	gestureApp := &cli.App{
		Name: "gesture",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Gesture is a timed figure drawing practice tool for the command-line. It
		fetches reference photos for the body parts you want to study and shows
		them one after another, each for a fixed amount of time.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "images",
				Usage:  "Fetch a pool of reference images and print it without starting a session",
				Flags:  append(routineFlags(), jsonFlag),
				Action: imagesAction,
			},
			{
				Name:   "serve",
				Usage:  "Run the image proxy so that clients don't need an Unsplash access key",
				Flags:  []cli.Flag{addrFlag, serveDebugFlag},
				Action: serveAction,
			},
		},
		Flags:  append(routineFlags(), yesFlag, sourceFlag, proxyURLFlag, noColorFlag, debugFlag),
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return gestureApp
}
