package common

import "os"

// ExitCode is the panic payload used by pretty.Exit to unwind the command
// layer through ExitProtection in main.
type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) > 0 {
		Log("%s", it.Message)
	}
}

func Exit(code int) {
	WaitLogs()
	os.Exit(code)
}
