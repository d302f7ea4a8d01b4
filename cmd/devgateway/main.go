// ABOUTME: Runs the development API gateway on a local port
// ABOUTME: Point BILLFOLD_API_BASE and BILLFOLD_AUTH_BASE at it for offline work

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/harperreed/billfold/config"
	"github.com/harperreed/billfold/db"
	"github.com/harperreed/billfold/devserver"
)

func main() {
	addr := flag.String("addr", "localhost:8787", "Address to listen on")
	dbPath := flag.String("db", filepath.Join(config.Dir(), "devgateway.db"), "Path to database file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := config.NewLogger(os.Stderr, *logLevel)

	database, err := db.OpenDatabase(*dbPath)
	if err != nil {
		logger.Fatal("failed to open database", "path", *dbPath, "err", err)
	}
	defer func() { _ = database.Close() }()

	logger.Info("database ready", "path", *dbPath)
	logger.Info("set BILLFOLD_API_BASE=http://" + *addr + "/api and BILLFOLD_AUTH_BASE=http://" + *addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := devserver.NewServer(database, devserver.WithLogger(logger))
	if err := srv.Start(ctx, *addr); err != nil {
		logger.Error("gateway stopped", "err", err)
		os.Exit(1)
	}
}
