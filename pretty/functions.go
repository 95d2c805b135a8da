package pretty

import (
	"fmt"

	"github.com/sbomweld/sbomweld/common"
)

// Exit unwinds the command layer with the given exit code. The panic is
// recovered by ExitProtection in main.
func Exit(code int, form string, details ...interface{}) {
	message := fmt.Sprintf(form, details...)
	panic(common.ExitCode{Code: code, Message: message})
}

// Guard is a guard clause: when the condition does not hold, exit with code.
func Guard(condition bool, code int, form string, details ...interface{}) {
	if !condition {
		Exit(code, form, details...)
	}
}

func Ok() error {
	common.Log("%sOK.%s", Green, Reset)
	return nil
}

func Highlight(form string, details ...interface{}) {
	common.Log("%s%s%s", Cyan, fmt.Sprintf(form, details...), Reset)
}

func Warning(form string, details ...interface{}) {
	common.Log("%sWarning: %s%s", Yellow, fmt.Sprintf(form, details...), Reset)
}

func Note(form string, details ...interface{}) {
	common.Log("%sNote: %s%s", Grey, fmt.Sprintf(form, details...), Reset)
}
