// Package process holds the process records fed to the schedulers and the
// loader that reads them from a scheduling file.
package process

type Process struct {
	ProcessID     int64
	ArrivalTime   int64
	BurstDuration int64
	// Priority is totally ordered; a larger value is more important.
	Priority int64
}

// Clone returns a fresh copy of processes so a scheduler run never shares
// backing storage with the loaded list.
func Clone(processes []Process) []Process {
	if processes == nil {
		return nil
	}
	out := make([]Process, len(processes))
	copy(out, processes)
	return out
}
