package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/api"
	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/config"
	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/process"
	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/report"
	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/scheduler"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("schedsim: ")

	cfg, err := config.Parse(os.Args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Serve {
		log.Printf("serving scheduler API on %s", cfg.ListenAddr)
		log.Fatal(api.NewApp(cfg.Quantum).Listen(cfg.ListenAddr))
	}

	// CLI args
	f, closeFile, err := openProcessingFile(cfg.InputPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFile()

	// Load and parse processes
	processes, err := process.Load(f)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(os.Stdout, cfg, processes); err != nil {
		log.Fatal(err)
	}
}

// run schedules processes under every algorithm, each on a fresh batch, and
// writes the reports in order.
func run(w io.Writer, cfg *config.Config, processes []process.Process) error {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	results := make([]scheduler.Result, 0, len(scheduler.Algorithms))
	for _, alg := range scheduler.Algorithms {
		r, err := scheduler.NewBatch(processes).Schedule(alg, cfg.Quantum)
		if err != nil {
			return err
		}
		report.Write(w, format, r)
		results = append(results, r)
	}

	if cfg.ChartPath != "" {
		if err := report.SaveChart(cfg.ChartPath, results); err != nil {
			return err
		}
	}
	return nil
}

func openProcessingFile(path string) (*os.File, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing scheduling file", err)
		}
	}

	return f, closeFn, nil
}
