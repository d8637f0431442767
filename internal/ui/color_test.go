package ui

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestPaletteFollowsTheme(t *testing.T) {
	defer func(dark bool) { DarkTheme = dark }(DarkTheme)

	DarkTheme = true
	assert.Equal(t, pterm.FgLightCyan.Sprint("Hands"), Tag("Hands"))
	assert.Equal(t, pterm.FgLightGreen.Sprint("Jane Doe"), Credit("Jane Doe"))

	DarkTheme = false
	assert.Equal(t, pterm.FgCyan.Sprint("Hands"), Tag("Hands"))
	assert.Equal(t, pterm.FgGreen.Sprint("Jane Doe"), Credit("Jane Doe"))
}

func TestPaletteWithoutColor(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	assert.Equal(t, "Hands", Tag("Hands"))
	assert.Equal(t, "Jane Doe", Credit("Jane Doe"))
}
