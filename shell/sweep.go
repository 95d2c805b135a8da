package shell

import (
	"os"

	ps "github.com/mitchellh/go-ps"

	"github.com/sbomweld/sbomweld/common"
)

// TerminateStrays kills subprocess trees left behind by interrupted jobs.
// Called during teardown on cancellation, so that no package manager keeps
// writing into a sandbox that is about to be removed. Failures are logged
// and swallowed, never escalated.
func TerminateStrays() {
	self := os.Getpid()
	processes, err := ps.Processes()
	if err != nil {
		common.Uncritical("stray sweep", err)
		return
	}
	children := make(map[int][]int)
	for _, process := range processes {
		children[process.PPid()] = append(children[process.PPid()], process.Pid())
	}
	pending := append([]int(nil), children[self]...)
	for len(pending) > 0 {
		pid := pending[0]
		pending = append(pending[1:], children[pid]...)
		target, err := os.FindProcess(pid)
		if err != nil {
			continue
		}
		common.Debug("Terminating stray subprocess %d.", pid)
		if err := target.Kill(); err != nil {
			common.Trace("Could not kill %d, reason: %v", pid, err)
		}
	}
}
