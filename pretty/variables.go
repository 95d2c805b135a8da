package pretty

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/sbomweld/sbomweld/common"
)

var (
	Colorless   bool
	Iconic      bool
	Disabled    bool
	Interactive bool
	White       string
	Grey        string
	Red         string
	Green       string
	Blue        string
	Yellow      string
	Magenta     string
	Cyan        string
	Reset       string
	Bold        string
	Faint       string
)

func csif(suffix string) string {
	return "\x1b[" + suffix
}

// Setup detects terminal capabilities and primes the color variables.
// Respects NO_COLOR and missing/dumb TERM.
func Setup() {
	stdin := isatty.IsTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())

	if os.Getenv("NO_COLOR") != "" {
		Colorless = true
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		Colorless = true
	}

	Interactive = stdin && stdout && stderr
	Iconic = Interactive && !Colorless

	if Colorless || Disabled || !stderr {
		return
	}

	White = csif("97m")
	Grey = csif("90m")
	Red = csif("91m")
	Green = csif("92m")
	Blue = csif("94m")
	Yellow = csif("93m")
	Magenta = csif("95m")
	Cyan = csif("96m")
	Reset = csif("0m")
	Bold = csif("1m")
	Faint = csif("2m")

	common.Trace("Interactive mode enabled: %v; colors enabled: %v", Interactive, !Colorless)
}
