// Package report renders scheduling results as text tables and charts.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/scheduler"
)

type Format string

const (
	// FormatTable prints a title, a Gantt line and a bordered table.
	FormatTable Format = "table"
	// FormatPlain prints the tab separated listing of the classic schedsim.
	FormatPlain Format = "plain"
)

var ErrUnknownFormat = errors.New("unknown report format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatPlain:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write renders r to w in the given format. Unknown formats fall back to
// FormatTable.
func Write(w io.Writer, format Format, r scheduler.Result) {
	if format == FormatPlain {
		writePlain(w, r)
		return
	}
	writeTable(w, r)
}

func title(r scheduler.Result) string {
	if r.Algorithm == scheduler.RoundRobin {
		return fmt.Sprintf("%s (quantum %d)", r.Algorithm.Title(), r.Quantum)
	}
	return r.Algorithm.Title()
}

func writeTable(w io.Writer, r scheduler.Result) {
	s := Summarize(r)
	rows := make([][]string, len(r.Metrics))
	for i, m := range r.Metrics {
		rows[i] = []string{
			fmt.Sprint(m.ProcessID),
			fmt.Sprint(m.Priority),
			fmt.Sprint(m.BurstDuration),
			fmt.Sprint(m.ArrivalTime),
			fmt.Sprint(m.WaitingTime),
			fmt.Sprint(m.TurnaroundTime),
			fmt.Sprint(m.CompletionTime),
		}
	}

	outputTitle(w, title(r))
	outputGantt(w, r.Gantt)
	outputSchedule(w, rows, s.AverageWaiting, s.AverageTurnaround, s.Throughput)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []scheduler.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprint(gantt[i].PID)
		padding := strings.Repeat(" ", max(0, 8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, rows [][]string, wait, turnaround, throughput float64) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", wait),
		fmt.Sprintf("Average\n%.2f", turnaround),
		fmt.Sprintf("Throughput\n%.2f/t", throughput)})
	table.Render()
}

func plainLabel(r scheduler.Result) string {
	switch r.Algorithm {
	case scheduler.FCFS, scheduler.SJF:
		return strings.ToUpper(string(r.Algorithm))
	case scheduler.RoundRobin:
		return fmt.Sprintf("RR Quantum = %d", r.Quantum)
	}
	return r.Algorithm.Title()
}

func writePlain(w io.Writer, r scheduler.Result) {
	s := Summarize(r)
	_, _ = fmt.Fprintf(w, "\n*********\n%s\n", plainLabel(r))
	_, _ = fmt.Fprintln(w, "\tProcesses\tBurst time\tWaiting time\tTurn around time")
	for _, m := range r.Metrics {
		_, _ = fmt.Fprintf(w, "\t%d\t\t%d\t\t%d\t\t%d\n", m.ProcessID, m.BurstDuration, m.WaitingTime, m.TurnaroundTime)
	}
	_, _ = fmt.Fprintf(w, "\nAverage waiting time = %.2f", s.AverageWaiting)
	_, _ = fmt.Fprintf(w, "\nAverage turn around time = %.2f\n", s.AverageTurnaround)
}
