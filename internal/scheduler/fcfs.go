package scheduler

import "github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/process"

// FCFSSchedule serves processes strictly in list order. The list is taken to
// be arrival ordered already; nothing is sorted. The first process waits for
// its own arrival time, every later one for the previous process to finish.
func FCFSSchedule(processes []process.Process) Result {
	metrics := newMetrics(processes)
	return Result{
		Algorithm: FCFS,
		Metrics:   metrics,
		Gantt:     serveInOrder(metrics),
	}
}

// serveInOrder fills in waiting, turnaround and completion times for metrics
// served back to back in slice order.
func serveInOrder(metrics []Metrics) []TimeSlice {
	if len(metrics) == 0 {
		return nil
	}

	metrics[0].WaitingTime = metrics[0].ArrivalTime
	for i := 1; i < len(metrics); i++ {
		metrics[i].WaitingTime = metrics[i-1].WaitingTime + metrics[i-1].BurstDuration
	}
	deriveTurnaround(metrics)

	gantt := make([]TimeSlice, 0, len(metrics))
	for i := range metrics {
		start := metrics[i].WaitingTime
		metrics[i].CompletionTime = start + metrics[i].BurstDuration
		gantt = append(gantt, TimeSlice{
			PID:   metrics[i].ProcessID,
			Start: start,
			Stop:  metrics[i].CompletionTime,
		})
	}
	return gantt
}
