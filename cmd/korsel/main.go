// Command korsel is an interactive navigator for a road network: it lists
// cities, prints the network, finds shortest routes, solves the optimal
// tour and draws SVG maps.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/citynav/bfs"
	"github.com/katalvlaran/citynav/config"
	"github.com/katalvlaran/citynav/dijkstra"
	"github.com/katalvlaran/citynav/format"
	"github.com/katalvlaran/citynav/logger"
	"github.com/katalvlaran/citynav/network"
	"github.com/katalvlaran/citynav/router"
	"github.com/katalvlaran/citynav/tsp"
)

func main() {
	// .env is optional; KORSEL_* variables it sets feed the config.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires configuration, logging, the network source and the router, then
// hands control to the interactive session reading from in.
func run(ctx context.Context, in io.Reader, out, errOut io.Writer, args []string) error {
	opts, err := parseFlags(args, out)
	if err != nil || opts == nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if err = opts.apply(&cfg); err != nil {
		return err
	}

	log, err := logger.New(errOut, logger.Options{Format: cfg.Log.Format, Level: cfg.Log.Level})
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg.Source != "" {
		log.Debug("configuration loaded", slog.String("file", cfg.Source))
	}

	net, err := loadNetwork(ctx, cfg, log)
	if err != nil {
		return err
	}
	g, layout, err := network.Build(net)
	if err != nil {
		return err
	}
	log.Info("network loaded",
		slog.String("name", net.Name), slog.Int("cities", g.CityCount()), slog.Int("roads", g.EdgeCount()))
	if parts := bfs.Components(g); len(parts) > 1 {
		log.Warn("network is disconnected; some routes and every tour are unavailable",
			slog.Int("components", len(parts)))
	}

	queue := dijkstra.LinearScan
	if cfg.Routing.Queue == "heap" {
		queue = dijkstra.Heap
	}
	rt, err := router.New(g,
		router.WithLogger(log),
		router.WithCacheSize(cfg.Routing.CacheSize),
		router.WithQueue(queue),
		router.WithTourOptions(
			tsp.WithWorkers(cfg.Routing.Workers),
			tsp.WithMaxCities(cfg.Routing.MaxCities),
		),
	)
	if err != nil {
		return err
	}

	s := newSession(in, out, rt, layout, cfg, log)
	s.title = net.Name
	err = s.loop(ctx)
	st := rt.CacheStats()
	log.Debug("session finished", slog.Uint64("cache_hits", st.Hits), slog.Uint64("cache_misses", st.Misses))

	return err
}

// loadNetwork picks the network source: MySQL when a DSN is configured,
// then a YAML file, then the built-in network.
func loadNetwork(ctx context.Context, cfg config.Config, log *slog.Logger) (network.Network, error) {
	var src network.Source
	switch {
	case cfg.Network.DSN != "":
		db, err := network.OpenMySQL(cfg.Network.DSN)
		if err != nil {
			return network.Network{}, err
		}
		defer db.Close()
		src = db
		log.Debug("loading network", slog.String("source", "mysql"))
	case cfg.Network.File != "":
		src = network.File{Path: cfg.Network.File}
		log.Debug("loading network", slog.String("source", cfg.Network.File))
	default:
		src = network.Builtin{Network: network.Korea()}
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Network.Timeout)
	defer cancel()

	return src.Load(ctx)
}

var (
	_ network.Source = (*network.MySQL)(nil)
	_ format.Layout  = network.Layout(nil)
)
