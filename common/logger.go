package common

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	logsource  = make(logwriters)
	logbarrier = sync.WaitGroup{}

	// logInterceptor allows the progress dashboard to capture log output
	// while it owns the terminal. When it returns true, the message is
	// considered handled and is not printed.
	logInterceptor func(message string) bool
	logMu          sync.RWMutex
)

// SetLogInterceptor routes formatted log messages through the given function.
// Return false from the interceptor to fall back to normal output.
func SetLogInterceptor(interceptor func(message string) bool) {
	logMu.Lock()
	logInterceptor = interceptor
	logMu.Unlock()
}

// ClearLogInterceptor removes the current log interceptor.
func ClearLogInterceptor() {
	logMu.Lock()
	logInterceptor = nil
	logMu.Unlock()
}

func interceptLog(message string) bool {
	logMu.RLock()
	interceptor := logInterceptor
	logMu.RUnlock()

	if interceptor != nil {
		return interceptor(message)
	}
	return false
}

type logwriter func() (*os.File, string)
type logwriters chan logwriter

func loggerLoop(writers logwriters) {
	var stamp string
	line := uint64(0)
	for {
		line += 1
		todo, ok := <-writers
		if !ok {
			continue
		}
		out, message := todo()

		if TraceFlag() {
			stamp = time.Now().Format("02.150405.000 ")
		} else if LogLinenumbers {
			stamp = fmt.Sprintf("%3d ", line)
		} else {
			stamp = ""
		}
		fmt.Fprintf(out, "%s%s\n", stamp, message)
		out.Sync()
		logbarrier.Done()
	}
}

func init() {
	go loggerLoop(logsource)
}

func AcceptableOutput(message string) bool {
	for _, fragment := range LogHides {
		if strings.Contains(message, fragment) {
			return false
		}
	}
	return true
}

func printout(out *os.File, message string) {
	if AcceptableOutput(message) {
		if interceptLog(message) {
			return
		}
		logbarrier.Add(1)
		logsource <- func() (*os.File, string) {
			return out, message
		}
	}
}

func Fatal(context string, err error) {
	if err != nil {
		printout(os.Stderr, fmt.Sprintf("Fatal [%s]: %v", context, err))
	}
}

func Error(context string, err error) {
	if err != nil {
		Log("Error [%s]: %v", context, err)
	}
}

func Uncritical(context string, err error) {
	if err != nil {
		Log("Warning [%s; not critical]: %v", context, err)
	}
}

func Log(format string, details ...interface{}) {
	if !Silent() {
		prefix := ""
		if DebugFlag() || TraceFlag() {
			prefix = "[N] "
		}
		printout(os.Stderr, fmt.Sprintf(prefix+format, details...))
	}
}

func Debug(format string, details ...interface{}) error {
	if DebugFlag() {
		printout(os.Stderr, fmt.Sprintf("[D] "+format, details...))
	}
	return nil
}

func Trace(format string, details ...interface{}) error {
	if TraceFlag() {
		printout(os.Stderr, fmt.Sprintf("[T] "+format, details...))
	}
	return nil
}

func Stdout(format string, details ...interface{}) {
	message := format
	if len(details) > 0 {
		message = fmt.Sprintf(format, details...)
	}
	if AcceptableOutput(message) {
		fmt.Fprint(os.Stdout, message)
		os.Stdout.Sync()
	}
}

// WaitLogs blocks until every queued log line has been flushed.
func WaitLogs() {
	runtime.Gosched()
	logbarrier.Wait()
}
