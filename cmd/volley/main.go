package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/volley/internal/sim"
	"github.com/ajitpratap0/volley/pkg/config"
	"github.com/ajitpratap0/volley/pkg/logger"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "volley",
		Short: "Volley - pooled game-entity simulation toolkit",
		Long: `Volley is a game-entity object pooling and simulation toolkit.
It drives pools of reusable projectiles through a fixed-timestep frame loop
with zero per-frame allocation, and reports pool behavior through structured
logs and prometheus metrics.`,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Volley v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	var (
		configFile    string
		duration      time.Duration
		tickRate      int
		poolSize      int
		volleySize    int
		spawnInterval time.Duration
		realtime      bool
		tracePath     string
		logLevel      string
		jsonStats     bool
	)

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a projectile pool simulation",
		Long: `Run a fixed-timestep projectile simulation against an entity pool.
Configuration is read from defaults, optionally overlaid with a YAML file,
then overridden by any explicitly set flags.

Example:
  volley simulate --config sim.yaml --duration 30s --trace run.jsonl.gz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewSimConfig("volley")
			if configFile != "" {
				if err := config.Load(configFile, cfg); err != nil {
					return err
				}
			}

			// Explicit flags win over file values.
			if cmd.Flags().Changed("duration") {
				cfg.Simulation.Duration = config.Duration(duration)
			}
			if cmd.Flags().Changed("tick-rate") {
				cfg.Simulation.TickRate = tickRate
			}
			if cmd.Flags().Changed("pool-size") {
				cfg.Pool.InitialSize = poolSize
			}
			if cmd.Flags().Changed("volley-size") {
				cfg.Simulation.VolleySize = volleySize
			}
			if cmd.Flags().Changed("spawn-interval") {
				cfg.Simulation.SpawnInterval = config.Duration(spawnInterval)
			}
			if cmd.Flags().Changed("realtime") {
				cfg.Simulation.Realtime = realtime
			}
			if cmd.Flags().Changed("trace") {
				cfg.Observability.TracePath = tracePath
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Observability.LogLevel = logLevel
			}

			if err := logger.Init(logger.Config{
				Level:    cfg.Observability.LogLevel,
				Encoding: "console",
			}); err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runSimulation(cfg, jsonStats)
		},
	}

	simulateCmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML configuration file")
	simulateCmd.Flags().DurationVar(&duration, "duration", 10*time.Second, "simulated run duration (0 = until interrupted)")
	simulateCmd.Flags().IntVar(&tickRate, "tick-rate", 60, "fixed timestep frequency in Hz")
	simulateCmd.Flags().IntVar(&poolSize, "pool-size", 32, "initial entity pool capacity")
	simulateCmd.Flags().IntVar(&volleySize, "volley-size", 4, "projectiles fired per volley")
	simulateCmd.Flags().DurationVar(&spawnInterval, "spawn-interval", 250*time.Millisecond, "time between volleys")
	simulateCmd.Flags().BoolVar(&realtime, "realtime", false, "pace frames against the wall clock")
	simulateCmd.Flags().StringVar(&tracePath, "trace", "", "write a gzip'd JSONL event trace to this path")
	simulateCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	simulateCmd.Flags().BoolVar(&jsonStats, "json", false, "print the run summary as JSON")
	root.AddCommand(simulateCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSimulation(cfg *config.SimConfig, jsonStats bool) error {
	log := logger.Get()

	s, err := sim.New(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := s.Run(ctx)
	if err != nil && ctx.Err() == nil {
		return err
	}
	if ctx.Err() != nil {
		log.Warn("simulation interrupted", zap.Error(ctx.Err()))
	}

	if jsonStats {
		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}

	return nil
}
