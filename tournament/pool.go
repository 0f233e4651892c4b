package tournament

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/atomic"

	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// Progress is the shared counter mutated solely by the collector
// (spec.md §5 "Parallel safety": "the only shared objects are the result
// store and the progress counter, which the scheduler alone mutates").
type Progress struct {
	Completed atomic.Int64
	Total     int64
}

// RunConfig tunes the worker pool.
type RunConfig struct {
	Workers  int
	Registry *weapon.Registry
	N        int
	// OnComplete is invoked once per finished task, from the single
	// collector goroutine — never concurrently.
	OnComplete func(TaskResult)
	// StopFlag, when non-nil and set true, stops the task dispatcher from
	// handing out further tasks (spec.md §5 "cancellation is cooperative:
	// the scheduler checks a shared stop flag between tasks"). In-flight
	// tasks still run to completion.
	StopFlag *atomic.Bool
}

// DefaultWorkers mirrors spec.md §4.8's "workers (default = host CPU
// count)".
func DefaultWorkers() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// Run drives tasks through a worker pool of cfg.Workers goroutines, each
// with its own RNG seeded by the task (spec.md §5 "a worker pool of W
// workers pulls single-match tasks from a FIFO; each worker owns its RNG
// ... the result collector is serialized"). Worker failures are
// aggregated with multierror rather than aborting the run.
func Run(tasks []Task, configs []Config, cfg RunConfig) (*Progress, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	taskCh := make(chan Task)
	resultCh := make(chan TaskResult)
	errCh := make(chan error, len(tasks))

	progress := &Progress{Total: int64(len(tasks))}

	var workerWG sync.WaitGroup
	for i := 0; i < workers; i++ {
		workerWG.Add(1)
		go func() {
			defer workerWG.Done()
			for task := range taskCh {
				result, err := func() (r TaskResult, err error) {
					defer func() {
						if p := recover(); p != nil {
							err = fmt.Errorf("tournament: task with seed %d panicked: %v", task.Seed, p)
						}
					}()
					return RunTask(task, configs, cfg.Registry, cfg.N)
				}()
				if err != nil {
					errCh <- err
					continue
				}
				resultCh <- result
			}
		}()
	}

	go func() {
		defer close(taskCh)
		for _, t := range tasks {
			if cfg.StopFlag != nil && cfg.StopFlag.Load() {
				return
			}
			taskCh <- t
		}
	}()

	collectorDone := make(chan struct{})
	go func() {
		defer close(collectorDone)
		for result := range resultCh {
			if cfg.OnComplete != nil {
				cfg.OnComplete(result)
			}
			progress.Completed.Add(1)
		}
	}()

	workerWG.Wait()
	close(resultCh)
	close(errCh)
	<-collectorDone

	var combined error
	for err := range errCh {
		combined = multierror.Append(combined, err)
	}
	return progress, combined
}
