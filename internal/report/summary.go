package report

import "github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/scheduler"

// Summary aggregates the per-process metrics of one scheduling run.
type Summary struct {
	Count             int
	TotalWaiting      int64
	TotalTurnaround   int64
	LastCompletion    int64
	AverageWaiting    float64
	AverageTurnaround float64
	// Throughput is processes completed per tick.
	Throughput float64
}

// Summarize totals and averages r. An empty result has zero averages.
func Summarize(r scheduler.Result) Summary {
	s := Summary{Count: len(r.Metrics)}
	for _, m := range r.Metrics {
		s.TotalWaiting += m.WaitingTime
		s.TotalTurnaround += m.TurnaroundTime
		s.LastCompletion = max(s.LastCompletion, m.CompletionTime)
	}
	if s.Count == 0 {
		return s
	}

	count := float64(s.Count)
	s.AverageWaiting = float64(s.TotalWaiting) / count
	s.AverageTurnaround = float64(s.TotalTurnaround) / count
	if s.LastCompletion > 0 {
		s.Throughput = count / float64(s.LastCompletion)
	}
	return s
}
