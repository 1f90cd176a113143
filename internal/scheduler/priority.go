package scheduler

import (
	"cmp"
	"slices"

	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/process"
)

// PrioritySchedule serves processes by descending Priority and then runs them
// back to back as FCFS would. Equal priorities keep their input order.
func PrioritySchedule(processes []process.Process) Result {
	metrics := newMetrics(processes)
	slices.SortStableFunc(metrics, comparePriority)

	return Result{
		Algorithm: Priority,
		Metrics:   metrics,
		Gantt:     serveInOrder(metrics),
	}
}

// comparePriority orders the more important (larger) priority first.
func comparePriority(a, b Metrics) int {
	return cmp.Compare(b.Priority, a.Priority)
}
