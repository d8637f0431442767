package slideshow

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	next       key.Binding
	previous   key.Binding
	retry      key.Binding
	open       key.Binding
	configure  key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p/space", "pause/resume"),
	),
	next: key.NewBinding(
		key.WithKeys("right", "l", "n"),
		key.WithHelp("→/n", "next"),
	),
	previous: key.NewBinding(
		key.WithKeys("left", "h", "b"),
		key.WithHelp("←/b", "previous"),
	),
	retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open image"),
	),
	configure: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "back to config"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
