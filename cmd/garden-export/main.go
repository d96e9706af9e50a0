// Command garden-export inspects and moves garden saves outside the running app.
package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/bootstrap"
	"github.com/osse101/GardenIdle_Go/internal/config"
	"github.com/osse101/GardenIdle_Go/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		PrintError(stderr, "Configuration failed: %v", err)
		return 1
	}
	// Logs go to stderr so export output stays pipeable
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, logger.DefaultVersion, cfg.Environment, false)
	logger.InitWithWriter(logCfg, stderr)

	ctx := context.Background()
	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		PrintError(stderr, "%v", err)
		return 1
	}
	backend, closer, err := bootstrap.OpenBackend(ctx, cfg)
	if err != nil {
		PrintError(stderr, "%v", err)
		return 1
	}
	if closer != nil {
		defer closer.Close()
	}

	e := &env{
		ctx:   ctx,
		store: bootstrap.NewStore(backend, cat),
		cat:   cat,
		in:    stdin,
		out:   stdout,
		now:   time.Now,
	}
	return dispatch(newRegistry(e), args, stdout, stderr)
}

func newRegistry(e *env) *Registry {
	r := NewRegistry()
	r.Register(&exportCmd{env: e})
	r.Register(&importCmd{env: e})
	r.Register(&summaryCmd{env: e})
	r.Register(&resetCmd{env: e})
	return r
}

func dispatch(r *Registry, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		r.PrintHelp(stdout)
		return 1
	}

	cmd, ok := r.Get(args[0])
	if !ok {
		PrintError(stderr, "Unknown command: %s", args[0])
		r.PrintHelp(stdout)
		return 1
	}

	if err := cmd.Run(args[1:]); err != nil {
		PrintError(stderr, "%s failed: %v", cmd.Name(), err)
		return 1
	}
	return 0
}
