// Package config assembles the simulator configuration from defaults, an
// optional YAML file, SCHEDSIM_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultQuantum    = 2
	DefaultFormat     = "table"
	DefaultListenAddr = ":9095"

	keyQuantum = "scheduler.round_robin.time_quantum"
	keyFormat  = "report.format"
	keyChart   = "report.chart"
	keyListen  = "server.listen"
)

var ErrInvalidArgs = errors.New("invalid args")

type Config struct {
	// InputPath is the scheduling file. Not needed when Serve is set.
	InputPath string
	// Quantum is the Round-Robin time slice in ticks.
	Quantum int64
	Format  string
	// ChartPath, when set, receives a PNG chart of the averages.
	ChartPath  string
	ConfigFile string
	Serve      bool
	ListenAddr string
}

func DefaultConfig() *Config {
	return &Config{
		Quantum:    DefaultQuantum,
		Format:     DefaultFormat,
		ListenAddr: DefaultListenAddr,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyQuantum, DefaultQuantum)
	v.SetDefault(keyFormat, DefaultFormat)
	v.SetDefault(keyChart, "")
	v.SetDefault(keyListen, DefaultListenAddr)

	v.SetEnvPrefix("schedsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Parse builds a Config from args, where args[0] is the program name as in
// os.Args. Usage and flag errors are written to stderr.
func Parse(args []string, stderr io.Writer) (*Config, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: missing program name", ErrInvalidArgs)
	}

	name := args[0]
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: %s [flags] <input-file-path>\n       %s -serve [-listen addr]\n\nFlags:\n", name, name)
		fs.PrintDefaults()
	}

	var (
		quantum    = fs.Int64("quantum", DefaultQuantum, "Round-Robin time quantum in ticks")
		format     = fs.String("format", DefaultFormat, "report format: table or plain")
		chart      = fs.String("chart", "", "write a PNG chart of average times to this `path`")
		configFile = fs.String("config", "", "read settings from this YAML `file`")
		serve      = fs.Bool("serve", false, "serve the HTTP API instead of reading a file")
		listen     = fs.String("listen", DefaultListenAddr, "HTTP listen `address` for -serve")
	)
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	v := newViper()
	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", *configFile, err)
		}
	}

	// Flags given explicitly win over file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "quantum":
			v.Set(keyQuantum, *quantum)
		case "format":
			v.Set(keyFormat, *format)
		case "chart":
			v.Set(keyChart, *chart)
		case "listen":
			v.Set(keyListen, *listen)
		}
	})

	cfg := &Config{
		Quantum:    v.GetInt64(keyQuantum),
		Format:     v.GetString(keyFormat),
		ChartPath:  v.GetString(keyChart),
		ConfigFile: *configFile,
		Serve:      *serve,
		ListenAddr: v.GetString(keyListen),
	}
	if fs.NArg() > 0 {
		cfg.InputPath = fs.Arg(0)
	}

	if err := Validate(cfg); err != nil {
		if errors.Is(err, ErrInvalidArgs) {
			fs.Usage()
		}
		return nil, err
	}
	return cfg, nil
}
