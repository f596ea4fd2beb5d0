package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Brownie44l1/arenahttpd/internal/server"
)

func main() {
	cfg := server.DefaultConfig()

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "address to listen on")
	flag.StringVar(&cfg.Root, "dir", cfg.Root, "directory to serve files from")
	flag.IntVar(&cfg.ArenaSize, "arena", cfg.ArenaSize, "bytes reserved for request memory")
	flag.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "read deadline per connection, 0 waits forever")
	flag.BoolVar(&cfg.IsolationHeaders, "isolation", cfg.IsolationHeaders, "send cross-origin isolation headers")
	verbose := flag.Bool("v", false, "log every served file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	logger := server.NewLogger(os.Stdout, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", server.Field{Key: "error", Value: err})
		os.Exit(1)
	}
}

func run(cfg server.Config, logger server.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	// A second signal during shutdown kills the process.
	context.AfterFunc(ctx, stop)

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	err = srv.ListenAndServe(ctx)

	stats := srv.Stats()
	logger.Info("Final stats",
		server.Field{Key: "connections", Value: stats.Connections},
		server.Field{Key: "served", Value: stats.Served},
		server.Field{Key: "not_found", Value: stats.NotFound},
		server.Field{Key: "invalid", Value: stats.Invalid},
		server.Field{Key: "write_errors", Value: stats.WriteErrors},
		server.Field{Key: "bytes_sent", Value: stats.BytesSent},
		server.Field{Key: "scratch_high_water", Value: stats.ScratchHighWater},
		server.Field{Key: "avg_latency", Value: stats.AverageLatency},
	)

	return err
}
