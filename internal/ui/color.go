// Package ui renders command output for the terminal
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light colour variants that stay readable on dark
// terminal backgrounds.
var DarkTheme bool

type palette struct {
	dark  pterm.Color
	light pterm.Color
}

func (p palette) paint(a any) string {
	if DarkTheme {
		return p.dark.Sprint(a)
	}

	return p.light.Sprint(a)
}

var (
	tagPalette    = palette{dark: pterm.FgLightCyan, light: pterm.FgCyan}
	creditPalette = palette{dark: pterm.FgLightGreen, light: pterm.FgGreen}
)

// Tag colours a body part label.
func Tag(a any) string {
	return tagPalette.paint(a)
}

// Credit colours a photographer name.
func Credit(a any) string {
	return creditPalette.paint(a)
}
