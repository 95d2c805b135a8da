// Package anywork is the fixed-size worker pool behind the job orchestrator.
// Jobs are fire-and-forget closures; a panic inside one job is recovered,
// counted, and never disturbs its siblings.
package anywork

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/sbomweld/sbomweld/common"
)

type Work func()
type WorkQueue chan Work
type Failures chan string
type Counters chan uint64

var (
	group       sync.WaitGroup
	pipeline    WorkQueue
	failpipe    Failures
	errcount    Counters
	headcount   uint64
	WorkerCount int
)

func catcher(title string, identity uint64) {
	catch := recover()
	if catch != nil {
		failpipe <- fmt.Sprintf("Recovering %q #%d: %v", title, identity, catch)
	}
}

func process(fun Work, identity uint64) {
	defer catcher("process", identity)
	fun()
}

func member(identity uint64) {
	defer catcher("member", identity)
	for {
		work, ok := <-pipeline
		if !ok {
			break
		}
		process(work, identity)
		group.Done()
	}
}

func watcher(failures Failures, counters Counters) {
	counter := uint64(0)
	for {
		select {
		case fail := <-failures:
			counter += 1
			common.Log("%s", fail)
		case counters <- counter:
			counter = 0
		}
	}
}

func init() {
	// Jobs block on external tools, so the queue only needs room for the
	// whole input set, never for backpressure.
	pipeline = make(WorkQueue, 100000)
	failpipe = make(Failures)
	errcount = make(Counters)
	headcount = 0
	go watcher(failpipe, errcount)
}

func Scale() uint64 {
	return headcount
}

// AutoScale grows the worker set up to the configured bound. Workers are
// never torn down; the pool lives for the whole process.
func AutoScale() {
	limit := uint64(common.OptimalWorkerCount(WorkerCount))
	for headcount < limit {
		go member(headcount)
		headcount += 1
	}
}

// Backlog queues one job. Members are spawned on first use, not at package
// load, so a WorkerCount override set during startup bounds how many members
// ever exist.
func Backlog(todo Work) {
	if todo != nil {
		AutoScale()
		group.Add(1)
		pipeline <- todo
	}
}

// Sync waits until every backlogged job has finished and reports how many
// of them failed by panic.
func Sync() error {
	trials := int(Scale())
	for retries := 0; retries < trials; retries++ {
		runtime.Gosched()
	}
	group.Wait()
	count := <-errcount
	if count > 0 {
		return fmt.Errorf("There has been %d failures. See messages above.", count)
	}
	return nil
}
