package main

import (
	"os"

	"github.com/sbomweld/sbomweld/cmd"
	"github.com/sbomweld/sbomweld/common"
)

// ExitProtection converts pretty.Exit panics into clean process exits after
// the log queue has drained.
func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.WaitLogs()
			os.Exit(exit.Code)
		}
		common.WaitLogs()
		panic(status)
	}
}

func main() {
	defer ExitProtection()
	cmd.Execute()
	common.WaitLogs()
}
