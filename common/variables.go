package common

import (
	"os"
	"runtime"
	"time"
)

const (
	ProductName = `sbomweld`
	Version     = `v0.4.1`
)

var (
	LogLinenumbers bool
	LogHides       []string
	NoProgress     bool

	When = time.Now().Unix()

	silentFlag bool
	debugFlag  bool
	traceFlag  bool
)

// DefineVerbosity sets the process-wide verbosity once, from command flags.
func DefineVerbosity(silent, debug, trace bool) {
	silentFlag = silent
	debugFlag = debug || trace
	traceFlag = trace
}

func Silent() bool {
	return silentFlag && !debugFlag
}

func DebugFlag() bool {
	return debugFlag
}

func TraceFlag() bool {
	return traceFlag
}

func UserHomeIdentity() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// OptimalWorkerCount is the default sizing for the job pool. Work items are
// dominated by external tool latency, so going beyond core count does not pay.
func OptimalWorkerCount(limit int) int {
	if limit > 0 {
		return limit
	}
	count := runtime.NumCPU()
	if count < 1 {
		return 1
	}
	return count
}
