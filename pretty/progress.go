package pretty

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/sbomweld/sbomweld/common"
)

// ProgressIndicator receives completion updates from the job pool. Updates
// arrive from worker goroutines in completion order, not submission order.
type ProgressIndicator interface {
	Start()
	Update(completed, total int, message string)
	Stop(success bool)
}

// NewProgress picks the best indicator for the current terminal: the live
// dashboard when fully interactive, the carriage-return counter when output
// is a pipe or colors are off, and silence when progress is disabled.
func NewProgress(total int) ProgressIndicator {
	if common.NoProgress || common.Silent() {
		return &quietProgress{}
	}
	if Interactive && !Disabled && !Colorless {
		return newTeaProgress(total)
	}
	return &lineProgress{}
}

type quietProgress struct{}

func (it *quietProgress) Start()                  {}
func (it *quietProgress) Update(int, int, string) {}
func (it *quietProgress) Stop(bool)               {}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// lineProgress is the plain "Processing packages: i/total (p%)" counter
// rewritten in place with a carriage return.
type lineProgress struct {
	mu      sync.Mutex
	dirty   bool
	lastLen int
}

func (it *lineProgress) Start() {
	it.mu.Lock()
	defer it.mu.Unlock()
	fmt.Fprint(os.Stdout, "\rProcessing packages: 0/? (0%)")
	it.dirty = true
}

func (it *lineProgress) Update(completed, total int, message string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	percent := 0
	if total > 0 {
		percent = completed * 100 / total
	}
	line := fmt.Sprintf("\rProcessing packages: %d/%d (%d%%)", completed, total, percent)
	if len(message) > 0 {
		line = fmt.Sprintf("%s %s", line, message)
	}
	if width := terminalWidth(); len(line) > width {
		line = line[:width]
	}
	for len(line) < it.lastLen {
		line += " "
	}
	it.lastLen = len(line)
	fmt.Fprint(os.Stdout, line)
	it.dirty = true
}

func (it *lineProgress) Stop(success bool) {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.dirty {
		fmt.Fprintln(os.Stdout)
		it.dirty = false
	}
}
