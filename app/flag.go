package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug records to the log file",
	}

	serveDebugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable debug logging, which records every proxied request",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Start the session with the configured routine without showing the form",
	}

	sourceFlag = &cli.StringFlag{
		Name:  "source",
		Usage: "Where images come from: 'unsplash' (requires an access key) or 'proxy'",
	}

	proxyURLFlag = &cli.StringFlag{
		Name:  "proxy-url",
		Usage: "Base URL of a gesture image proxy (used with --source proxy)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the images as JSON",
	}

	addrFlag = &cli.StringFlag{
		Name:  "addr",
		Usage: "Address for the image proxy to listen on (default: :3000)",
	}
)

// routineFlags returns the flags that override the drawing routine. Each
// command gets its own instances so that flag state is not shared.
func routineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "body-part",
			Aliases: []string{"b"},
			Usage:   "Body parts to practice: full-body, hands, heads, feet, torso. Repeat the flag or use a comma-separated list",
		},
		&cli.StringFlag{
			Name:  "content-type",
			Usage: "Content rating of the references: sfw or nsfw",
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "Number of images in the session (6-24)",
		},
		&cli.IntFlag{
			Name:    "time",
			Aliases: []string{"t"},
			Usage:   "Seconds per image (15-600). Use 0 to disable the timer",
		},
	}
}
