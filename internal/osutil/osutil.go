// Package osutil holds operating system specific helpers
package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

// OpenCommand returns the program and arguments that open target with the
// default handler of the operating system.
func OpenCommand(goos, target string) (string, []string) {
	switch goos {
	case Windows:
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	case Darwin:
		return "open", []string{target}
	default:
		return "xdg-open", []string{target}
	}
}
