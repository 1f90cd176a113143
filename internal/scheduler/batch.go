package scheduler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/process"
)

type Algorithm string

const (
	FCFS       Algorithm = "fcfs"
	SJF        Algorithm = "sjf"
	Priority   Algorithm = "priority"
	RoundRobin Algorithm = "rr"
)

// Algorithms lists every algorithm in report order.
var Algorithms = []Algorithm{FCFS, SJF, Priority, RoundRobin}

var (
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
	ErrBatchSpent       = errors.New("batch already scheduled, load a fresh one")
)

// ParseAlgorithm accepts the short names used on the command line and in the
// HTTP routes, case insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(name))); a {
	case FCFS, SJF, Priority, RoundRobin:
		return a, nil
	case "round-robin", "roundrobin":
		return RoundRobin, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Title is the heading printed above an algorithm's results.
func (a Algorithm) Title() string {
	switch a {
	case FCFS:
		return "First-come, first-serve"
	case SJF:
		return "Shortest-job-first"
	case Priority:
		return "Priority"
	case RoundRobin:
		return "Round-robin"
	}
	return string(a)
}

// Batch is one loaded process list, good for exactly one scheduling run.
// A Batch is not safe for concurrent use.
type Batch struct {
	processes []process.Process
	spent     bool
}

// NewBatch copies processes into a new Batch.
func NewBatch(processes []process.Process) *Batch {
	return &Batch{processes: process.Clone(processes)}
}

// Schedule runs alg over the batch. Scheduling the same batch a second time
// fails with ErrBatchSpent.
func (b *Batch) Schedule(alg Algorithm, quantum int64) (Result, error) {
	if b.spent {
		return Result{}, fmt.Errorf("%w: %s", ErrBatchSpent, alg)
	}

	var (
		result Result
		err    error
	)
	switch alg {
	case FCFS:
		result = FCFSSchedule(b.processes)
	case SJF:
		result = SJFSchedule(b.processes)
	case Priority:
		result = PrioritySchedule(b.processes)
	case RoundRobin:
		result, err = RRSchedule(b.processes, quantum)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
	if err != nil {
		return Result{}, err
	}
	b.spent = true
	return result, nil
}

// RunAll schedules processes under each of algs, each on its own batch and
// its own goroutine. Results come back in the order of algs. Any failure
// fails the whole run.
func RunAll(processes []process.Process, quantum int64, algs ...Algorithm) ([]Result, error) {
	if len(algs) == 0 {
		algs = Algorithms
	}

	var (
		wg      sync.WaitGroup
		results = make([]Result, len(algs))
		errs    = make([]error, len(algs))
	)
	wg.Add(len(algs))
	for i, alg := range algs {
		go func(i int, alg Algorithm) {
			defer wg.Done()
			results[i], errs[i] = NewBatch(processes).Schedule(alg, quantum)
		}(i, alg)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}
