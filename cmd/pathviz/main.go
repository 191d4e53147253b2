// Command pathviz animates shortest-path searches over a generated graph in
// the terminal. With -headless it prints the renderer calls instead, and with
// -html it writes the final result as an interactive chart.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jakhac/graph-algorithms/animate"
	"github.com/jakhac/graph-algorithms/builder"
	"github.com/jakhac/graph-algorithms/config"
	"github.com/jakhac/graph-algorithms/core"
	"github.com/jakhac/graph-algorithms/logging"
	"github.com/jakhac/graph-algorithms/metrics"
	"github.com/jakhac/graph-algorithms/pathfinding"
	"github.com/jakhac/graph-algorithms/render"
)

var (
	configPath  = flag.String("config", "", "YAML configuration file")
	algorithm   = flag.String("algorithm", "", "search: dijkstra, greedy, smart-greedy, dfs, bfs, astar")
	speed       = flag.String("speed", "", "speed preset: slower, slow, steady, medium, moderate, fast, insane")
	seed        = flag.Int64("seed", 0, "graph seed (0 picks one from the clock)")
	size        = flag.String("size", "", "graph size: s, m, l")
	kind        = flag.String("kind", "", "graph layout: random, lattice, circle")
	instant     = flag.Bool("instant", false, "reveal the result without animation")
	headless    = flag.Bool("headless", false, "print renderer calls instead of starting the TUI")
	htmlOut     = flag.String("html", "", "write the final result as an HTML chart to this file and exit")
	metricsAddr = flag.String("metrics-addr", "", "serve Prometheus metrics on this address")
	logLevel    = flag.String("log-level", "", "log level: debug, info, warn, error")
	logFile     = flag.String("log-file", "", "append logs to this file (the TUI discards logs otherwise)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pathviz: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1) Configuration: file, then flags.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 2) Logging.
	var logOut io.Writer = os.Stderr
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	} else if !*headless && *htmlOut == "" {
		logOut = io.Discard
	}
	log := logging.New(cfg.Log.Format, cfg.Log.Level, logOut)

	// 3) Metrics.
	var reg *metrics.Registry
	if cfg.Metrics.Addr != "" {
		reg = metrics.NewRegistry()
		srv := serveMetrics(cfg.Metrics.Addr, reg, log)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	graphSeed := cfg.Graph.Seed
	if graphSeed == 0 {
		graphSeed = time.Now().UnixNano()
	}
	log.Info("pathviz starting", "algorithm", cfg.Algorithm, "kind", cfg.Graph.Kind, "size", cfg.Graph.Size, "seed", graphSeed)

	switch {
	case *htmlOut != "":
		return runHTML(cfg, graphSeed, *htmlOut, log, reg)
	case *headless:
		return runHeadless(cfg, graphSeed, os.Stdout, log, reg)
	}

	sched := &teaScheduler{}
	m, err := newModel(cfg, graphSeed, sched, log, reg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	sched.bind(p.Send)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}

// loadConfig reads -config over the defaults and applies the flags that were
// set on the command line.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algorithm":
			cfg.Algorithm = *algorithm
		case "speed":
			cfg.Speed = *speed
		case "seed":
			cfg.Graph.Seed = *seed
		case "size":
			cfg.Graph.Size = *size
		case "kind":
			cfg.Graph.Kind = *kind
		case "instant":
			cfg.Instant = *instant
		case "metrics-addr":
			cfg.Metrics.Addr = *metricsAddr
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildGraph generates the playground graph described by cfg.
func buildGraph(cfg *config.Config, seed int64) (*core.Graph, error) {
	opts := []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithCanvas(cfg.Graph.Width, cfg.Graph.Height),
	}
	if cfg.Graph.DistanceCosts {
		opts = append(opts, builder.WithDistanceCosts())
	}

	var con builder.Constructor
	switch cfg.Graph.Kind {
	case "lattice":
		con = builder.Lattice(cfg.SizeValue())
	case "circle":
		con = builder.Circle(cfg.SizeValue())
	default:
		con = builder.Random(cfg.SizeValue())
	}

	return builder.BuildGraph(nil, opts, con)
}

// runHeadless plays one search on the wall clock and prints every renderer
// call to w.
func runHeadless(cfg *config.Config, seed int64, w io.Writer, log *slog.Logger, reg *metrics.Registry) error {
	g, err := buildGraph(cfg, seed)
	if err != nil {
		return err
	}
	replay, err := newRunner(log, reg).Solve(context.Background(), g, cfg.AlgorithmValue())
	if err != nil {
		return err
	}

	done := make(chan animate.Snapshot, 1)
	opts := []animate.Option{
		animate.WithBaseDelay(cfg.BaseDelay),
		animate.WithSpeed(cfg.SpeedFactor()),
		animate.WithLogger(log),
		animate.WithOnFinish(func(s animate.Snapshot) { done <- s }),
	}
	if reg != nil {
		opts = append(opts, animate.WithMetrics(reg))
	}
	player := animate.NewPlayer(render.NewRecorder(w), opts...)

	if cfg.Instant {
		err = player.RevealInstant(replay)
	} else {
		err = player.Start(replay)
	}
	if err != nil {
		return err
	}

	s := <-done
	fmt.Fprintln(w, resultLine(s))

	return nil
}

// runHTML reveals one search instantly and writes it as a chart to path.
func runHTML(cfg *config.Config, seed int64, path string, log *slog.Logger, reg *metrics.Registry) error {
	g, err := buildGraph(cfg, seed)
	if err != nil {
		return err
	}
	alg := cfg.AlgorithmValue()
	replay, err := newRunner(log, reg).Solve(context.Background(), g, alg)
	if err != nil {
		return err
	}

	chart := render.NewHTML(g, fmt.Sprintf("%s (seed %d)", alg.Title(), seed))
	opts := []animate.Option{animate.WithLogger(log)}
	if reg != nil {
		opts = append(opts, animate.WithMetrics(reg))
	}
	if err := animate.NewPlayer(chart, opts...).RevealInstant(replay); err != nil {
		return err
	}
	if err := chart.RenderToFile(path); err != nil {
		return err
	}
	log.Info("chart written", "path", path, "outcome", replay.Outcome.String())

	return nil
}

func newRunner(log *slog.Logger, reg *metrics.Registry) *pathfinding.Runner {
	opts := []pathfinding.RunnerOption{pathfinding.WithLogger(log)}
	if reg != nil {
		opts = append(opts, pathfinding.WithMetrics(reg))
	}

	return pathfinding.NewRunner(opts...)
}

// serveMetrics exposes reg on addr in the background.
func serveMetrics(addr string, reg *metrics.Registry, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("metrics listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", "err", err)
		}
	}()

	return srv
}
