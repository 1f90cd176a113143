package process

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrMalformedRecord = errors.New("malformed process record")
	ErrNoProcesses     = errors.New("no processes to schedule")
)

// Load reads processes from r, one per line: pid, burst, arrival and an
// optional priority, separated by commas or whitespace. Lines starting with
// '#' are comments. Any bad record rejects the whole batch.
func Load(r io.Reader) ([]Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		processes []Process
		seen      = make(map[int64]int)
	)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading CSV: %v", ErrMalformedRecord, err)
		}
		line, _ := reader.FieldPos(0)

		fields := splitRow(row)
		if len(fields) == 0 {
			continue
		}
		p, err := parseFields(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if prev, ok := seen[p.ProcessID]; ok {
			return nil, fmt.Errorf("line %d: %w: duplicate process id %d (first seen on line %d)",
				line, ErrMalformedRecord, p.ProcessID, prev)
		}
		seen[p.ProcessID] = line
		processes = append(processes, p)
	}

	if len(processes) == 0 {
		return nil, ErrNoProcesses
	}
	return processes, nil
}

// splitRow flattens a CSV row so whitespace separated lines, which arrive as
// a single field, are handled the same as comma separated ones.
func splitRow(row []string) []string {
	fields := make([]string, 0, len(row))
	for _, f := range row {
		fields = append(fields, strings.Fields(f)...)
	}
	return fields
}

func parseFields(fields []string) (Process, error) {
	if len(fields) != 3 && len(fields) != 4 {
		return Process{}, fmt.Errorf("%w: want 3 or 4 fields, got %d", ErrMalformedRecord, len(fields))
	}

	values := make([]int64, 4)
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Process{}, fmt.Errorf("%w: field %d: %q is not an integer", ErrMalformedRecord, i+1, f)
		}
		values[i] = v
	}

	p := Process{
		ProcessID:     values[0],
		BurstDuration: values[1],
		ArrivalTime:   values[2],
		Priority:      values[3],
	}
	if err := checkRecord(p); err != nil {
		return Process{}, err
	}
	return p, nil
}

func checkRecord(p Process) error {
	if p.BurstDuration <= 0 {
		return fmt.Errorf("%w: process %d: burst must be positive, got %d",
			ErrMalformedRecord, p.ProcessID, p.BurstDuration)
	}
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: process %d: arrival must not be negative, got %d",
			ErrMalformedRecord, p.ProcessID, p.ArrivalTime)
	}
	return nil
}

// Validate applies the loader's checks to processes built elsewhere, such as
// from an HTTP request body.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}
	seen := make(map[int64]struct{}, len(processes))
	for i, p := range processes {
		if err := checkRecord(p); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		if _, ok := seen[p.ProcessID]; ok {
			return fmt.Errorf("record %d: %w: duplicate process id %d", i+1, ErrMalformedRecord, p.ProcessID)
		}
		seen[p.ProcessID] = struct{}{}
	}
	return nil
}
