package scheduler

import (
	"container/heap"

	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/process"
)

type sjfElement struct {
	index     int
	remaining int64
}

// sjfQueue is a min-heap on remaining burst, ties going to the lower index.
type sjfQueue []sjfElement

func (pq sjfQueue) Len() int { return len(pq) }

func (pq sjfQueue) Less(i, j int) bool {
	if pq[i].remaining != pq[j].remaining {
		return pq[i].remaining < pq[j].remaining
	}
	return pq[i].index < pq[j].index
}

func (pq sjfQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *sjfQueue) Push(x any) { *pq = append(*pq, x.(sjfElement)) }

func (pq *sjfQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// SJFSchedule runs the shortest remaining burst to completion each time the
// CPU frees up. Every process is assumed ready at tick 0 for selection; the
// arrival time only enters the waiting time, completion - arrival - burst,
// which is floored at 0.
//
// Selection happens at burst boundaries only. A unit-tick simulation picks
// the same processes in the same order, since the running process is always
// strictly shorter than anything left once it has run a tick.
func SJFSchedule(processes []process.Process) Result {
	var (
		metrics = newMetrics(processes)
		gantt   = make([]TimeSlice, 0, len(processes))
		pq      = make(sjfQueue, 0, len(processes))
		clock   int64
	)

	for i, p := range processes {
		pq = append(pq, sjfElement{index: i, remaining: p.BurstDuration})
	}
	heap.Init(&pq)

	for pq.Len() > 0 {
		next := heap.Pop(&pq).(sjfElement)
		m := &metrics[next.index]

		start := clock
		clock += next.remaining
		m.CompletionTime = clock
		m.WaitingTime = m.CompletionTime - m.ArrivalTime - m.BurstDuration
		if m.WaitingTime < 0 {
			m.WaitingTime = 0
		}
		gantt = append(gantt, TimeSlice{PID: m.ProcessID, Start: start, Stop: clock})
	}
	deriveTurnaround(metrics)

	return Result{
		Algorithm: SJF,
		Metrics:   metrics,
		Gantt:     gantt,
	}
}
