package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/citynav/config"
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options are the parsed command-line flags.
type options struct {
	configPath string
	set        map[string]bool // flags given explicitly

	network   string
	dsn       string
	workers   int
	maxCities int
	queue     string
	speed     float64
	logLevel  string
	logFormat string
	mapDir    string
}

// parseFlags parses args. It returns (nil, nil) when -h was requested and
// usage has been printed.
func parseFlags(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("korsel", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
korsel - interactive road navigation over a city network.

Usage:
  korsel [options]

Without -network or -dsn the built-in South Korean network is used.

Options:
`)
		fs.PrintDefaults()
	}

	o := &options{set: make(map[string]bool)}
	fs.StringVar(&o.configPath, "config", "", "Path to a korsel.yml configuration file.")
	fs.StringVar(&o.network, "network", "", "Path to a YAML network file.")
	fs.StringVar(&o.dsn, "dsn", "", "MySQL DSN to load the network from (overrides -network).")
	fs.IntVar(&o.workers, "workers", 1, "Concurrent workers for the optimal tour search.")
	fs.IntVar(&o.maxCities, "max-cities", 12, "Largest network the optimal tour search accepts (0 = no limit).")
	fs.StringVar(&o.queue, "queue", "linear", "Shortest path minimum selection: 'linear' or 'heap'.")
	fs.Float64Var(&o.speed, "speed", 60, "Average driving speed in km/h for travel times.")
	fs.StringVar(&o.logLevel, "log-level", "info", "Logging level: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&o.logFormat, "log-format", "text", "Log output format: 'text' or 'json'.")
	fs.StringVar(&o.mapDir, "map-dir", ".", "Directory SVG maps are written to.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil
		}
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	return o, nil
}

// apply overrides cfg with every flag given explicitly and revalidates.
func (o *options) apply(cfg *config.Config) error {
	if o.set["network"] {
		cfg.Network.File = o.network
	}
	if o.set["dsn"] {
		cfg.Network.DSN = o.dsn
	}
	if o.set["workers"] {
		cfg.Routing.Workers = o.workers
	}
	if o.set["max-cities"] {
		cfg.Routing.MaxCities = o.maxCities
	}
	if o.set["queue"] {
		cfg.Routing.Queue = o.queue
	}
	if o.set["speed"] {
		cfg.Routing.Speed = o.speed
	}
	if o.set["log-level"] {
		cfg.Log.Level = o.logLevel
	}
	if o.set["log-format"] {
		cfg.Log.Format = o.logFormat
	}
	if o.set["map-dir"] {
		cfg.Map.Dir = o.mapDir
	}
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	return nil
}
