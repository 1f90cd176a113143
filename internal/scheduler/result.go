// Package scheduler computes waiting and turnaround times for a fixed list of
// processes under FCFS, SJF, Priority and Round-Robin scheduling.
//
// Schedulers never modify the processes they are given; every run returns its
// own Result.
package scheduler

import "github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/process"

type (
	// Metrics is the outcome of one process under one scheduling run.
	Metrics struct {
		ProcessID      int64
		ArrivalTime    int64
		BurstDuration  int64
		Priority       int64
		WaitingTime    int64
		TurnaroundTime int64
		CompletionTime int64
	}
	TimeSlice struct {
		PID   int64
		Start int64
		Stop  int64
	}
	Result struct {
		Algorithm Algorithm
		// Quantum is only set for Round-Robin.
		Quantum int64
		// Metrics is in report order: input order, except for Priority which
		// reports in service order.
		Metrics []Metrics
		Gantt   []TimeSlice
	}
)

func newMetrics(processes []process.Process) []Metrics {
	metrics := make([]Metrics, len(processes))
	for i, p := range processes {
		metrics[i] = Metrics{
			ProcessID:     p.ProcessID,
			ArrivalTime:   p.ArrivalTime,
			BurstDuration: p.BurstDuration,
			Priority:      p.Priority,
		}
	}
	return metrics
}

// deriveTurnaround sets TurnaroundTime = BurstDuration + WaitingTime.
func deriveTurnaround(metrics []Metrics) {
	for i := range metrics {
		metrics[i].TurnaroundTime = metrics[i].BurstDuration + metrics[i].WaitingTime
	}
}

// appendSlice adds a slice to the chart, extending the previous one when the
// same process simply keeps the CPU.
func appendSlice(gantt []TimeSlice, pid, start, stop int64) []TimeSlice {
	if n := len(gantt); n > 0 && gantt[n-1].PID == pid && gantt[n-1].Stop == start {
		gantt[n-1].Stop = stop
		return gantt
	}
	return append(gantt, TimeSlice{PID: pid, Start: start, Stop: stop})
}
