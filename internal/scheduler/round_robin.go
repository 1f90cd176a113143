package scheduler

import (
	"errors"
	"fmt"

	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/process"
)

var ErrInvalidQuantum = errors.New("time quantum must be positive")

// RRSchedule gives each process up to quantum ticks at a time, cycling
// through a FIFO ready queue that starts in list order. A process that still
// has work after its slice goes to the back of the queue. All processes are
// treated as ready at tick 0, so waiting time is completion - burst.
func RRSchedule(processes []process.Process, quantum int64) (Result, error) {
	if quantum <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidQuantum, quantum)
	}

	var (
		metrics   = newMetrics(processes)
		remaining = make([]int64, len(processes))
		queue     = make([]int, 0, len(processes))
		gantt     = make([]TimeSlice, 0)
		clock     int64
	)
	for i, p := range processes {
		remaining[i] = p.BurstDuration
		queue = append(queue, i)
	}

	for len(queue) > 0 {
		turn := queue[0]
		queue = queue[1:]

		run := min(quantum, remaining[turn])
		start := clock
		clock += run
		remaining[turn] -= run
		gantt = appendSlice(gantt, metrics[turn].ProcessID, start, clock)

		if remaining[turn] > 0 {
			queue = append(queue, turn)
			continue
		}
		metrics[turn].CompletionTime = clock
		metrics[turn].WaitingTime = clock - metrics[turn].BurstDuration
	}
	deriveTurnaround(metrics)

	return Result{
		Algorithm: RoundRobin,
		Quantum:   quantum,
		Metrics:   metrics,
		Gantt:     gantt,
	}, nil
}
