package api

import (
	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/process"
	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/report"
	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/scheduler"
)

type Job struct {
	ProcessID   int64 `json:"process_id"`
	ArrivalTime int64 `json:"arrival_time"`
	BurstTime   int64 `json:"burst_time"`
	Priority    int64 `json:"priority"`
}

type ScheduleRequest struct {
	// Quantum overrides the server default for Round-Robin when positive.
	Quantum   int64 `json:"quantum"`
	Processes []Job `json:"processes"`
}

func (r ScheduleRequest) processes() []process.Process {
	out := make([]process.Process, len(r.Processes))
	for i, j := range r.Processes {
		out[i] = process.Process{
			ProcessID:     j.ProcessID,
			ArrivalTime:   j.ArrivalTime,
			BurstDuration: j.BurstTime,
			Priority:      j.Priority,
		}
	}
	return out
}

type ProcessResponse struct {
	ProcessID      int64 `json:"process_id"`
	ArrivalTime    int64 `json:"arrival_time"`
	BurstTime      int64 `json:"burst_time"`
	Priority       int64 `json:"priority"`
	WaitingTime    int64 `json:"waiting_time"`
	TurnAroundTime int64 `json:"turn_around_time"`
	CompletionTime int64 `json:"completion_time"`
}

type TimeSlice struct {
	ProcessID int64 `json:"process_id"`
	Start     int64 `json:"start"`
	Stop      int64 `json:"stop"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Title                 string            `json:"title"`
	Quantum               int64             `json:"quantum,omitempty"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	Throughput            float64           `json:"throughput"`
	Details               []ProcessResponse `json:"details"`
	Gantt                 []TimeSlice       `json:"gantt"`
}

func newScheduleResponse(r scheduler.Result) ScheduleResponse {
	s := report.Summarize(r)
	resp := ScheduleResponse{
		Algorithm:             string(r.Algorithm),
		Title:                 r.Algorithm.Title(),
		Quantum:               r.Quantum,
		AverageWaitingTime:    s.AverageWaiting,
		AverageTurnAroundTime: s.AverageTurnaround,
		Throughput:            s.Throughput,
		Details:               make([]ProcessResponse, len(r.Metrics)),
		Gantt:                 make([]TimeSlice, len(r.Gantt)),
	}
	for i, m := range r.Metrics {
		resp.Details[i] = ProcessResponse{
			ProcessID:      m.ProcessID,
			ArrivalTime:    m.ArrivalTime,
			BurstTime:      m.BurstDuration,
			Priority:       m.Priority,
			WaitingTime:    m.WaitingTime,
			TurnAroundTime: m.TurnaroundTime,
			CompletionTime: m.CompletionTime,
		}
	}
	for i, g := range r.Gantt {
		resp.Gantt[i] = TimeSlice{ProcessID: g.PID, Start: g.Start, Stop: g.Stop}
	}
	return resp
}
