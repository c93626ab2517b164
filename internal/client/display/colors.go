package display

import (
	"os"

	"golang.org/x/term"
)

// Terminal color codes. They are cleared by DisableColors.
var (
	Reset   = "\033[0m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// DisableColors turns every color code into the empty string
func DisableColors() {
	Reset, Red, Green, Yellow, Blue, Magenta, Cyan, White = "", "", "", "", "", "", "", ""
}

// AutoColors disables colors when f is not a terminal
func AutoColors(f *os.File) {
	if !term.IsTerminal(int(f.Fd())) {
		DisableColors()
	}
}

// Prompt returns a colored prompt string
func Prompt(text string) string {
	return Yellow + text + Yellow + " > " + Reset
}
