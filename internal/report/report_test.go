package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/process"
	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/scheduler"
)

func bursts(bt ...int64) []process.Process {
	processes := make([]process.Process, len(bt))
	for i, b := range bt {
		processes[i] = process.Process{ProcessID: int64(i + 1), BurstDuration: b}
	}
	return processes
}

func TestSummarize(t *testing.T) {
	r, err := scheduler.RRSchedule(bursts(5, 4, 3), 2)
	require.NoError(t, err)

	s := Summarize(r)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, int64(21), s.TotalWaiting)
	assert.Equal(t, int64(33), s.TotalTurnaround)
	assert.Equal(t, int64(12), s.LastCompletion)
	assert.InDelta(t, 7.0, s.AverageWaiting, 1e-9)
	assert.InDelta(t, 11.0, s.AverageTurnaround, 1e-9)
	assert.InDelta(t, 0.25, s.Throughput, 1e-9)
}

func TestSummarizeMatchesArithmeticMean(t *testing.T) {
	results, err := scheduler.RunAll(bursts(7, 3, 11, 2, 5), 3)
	require.NoError(t, err)

	for _, r := range results {
		var wait, tat float64
		for _, m := range r.Metrics {
			wait += float64(m.WaitingTime)
			tat += float64(m.TurnaroundTime)
		}
		n := float64(len(r.Metrics))

		s := Summarize(r)
		assert.Equal(t, fmt.Sprintf("%.2f", wait/n), fmt.Sprintf("%.2f", s.AverageWaiting), r.Algorithm)
		assert.Equal(t, fmt.Sprintf("%.2f", tat/n), fmt.Sprintf("%.2f", s.AverageTurnaround), r.Algorithm)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(scheduler.Result{})
	assert.Zero(t, s.AverageWaiting)
	assert.Zero(t, s.AverageTurnaround)
	assert.Zero(t, s.Throughput)
}

func TestWritePlain(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, FormatPlain, scheduler.FCFSSchedule(bursts(24, 3, 3)))

	want := "\n*********\nFCFS\n" +
		"\tProcesses\tBurst time\tWaiting time\tTurn around time\n" +
		"\t1\t\t24\t\t0\t\t24\n" +
		"\t2\t\t3\t\t24\t\t27\n" +
		"\t3\t\t3\t\t27\t\t30\n" +
		"\nAverage waiting time = 17.00" +
		"\nAverage turn around time = 27.00\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePlainLabels(t *testing.T) {
	rr, err := scheduler.RRSchedule(bursts(1), 2)
	require.NoError(t, err)

	tests := []struct {
		result scheduler.Result
		label  string
	}{
		{scheduler.SJFSchedule(bursts(1)), "\nSJF\n"},
		{scheduler.PrioritySchedule(bursts(1)), "\nPriority\n"},
		{rr, "\nRR Quantum = 2\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		Write(&buf, FormatPlain, tt.result)
		assert.Contains(t, buf.String(), tt.label)
	}
}

func TestWriteTable(t *testing.T) {
	r, err := scheduler.RRSchedule(bursts(5, 4, 3), 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, FormatTable, r)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, strings.Repeat("-", len("Round-robin (quantum 2)")*2)+"\n"))
	assert.Contains(t, out, "Round-robin (quantum 2)")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "0\t2\t4\t6\t8\t10\t11\t12")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "7.00")
	assert.Contains(t, out, "11.00")
	assert.Contains(t, out, "0.25")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" Plain ")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, f)

	f, err = ParseFormat("table")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)

	_, err = ParseFormat("json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteChart(t *testing.T) {
	results, err := scheduler.RunAll(bursts(6, 2, 8, 3), 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, results))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))

	assert.ErrorIs(t, WriteChart(&buf, nil), ErrNoResults)
}

func TestSaveChart(t *testing.T) {
	results, err := scheduler.RunAll(bursts(3, 3), 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "averages.png")
	require.NoError(t, SaveChart(path, results))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, SaveChart(filepath.Join(t.TempDir(), "missing", "x.png"), results))
}
