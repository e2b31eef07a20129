// Package main is the entry point for the visia HTTP server.
package main

import (
	"flag"
	"fmt"
	"os"

	"visia/api"
	"visia/core/reference"
	"visia/core/results"
	"visia/internal/config"
	"visia/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	refStore := reference.NewStore()
	if err := refStore.LoadDir(cfg.Reference.Dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading reference tables: %v\n", err)
		os.Exit(1)
	}

	resultStore, err := results.NewStore(cfg.Storage.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening result store: %v\n", err)
		os.Exit(1)
	}

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	server := api.NewServer(api.Config{
		Addr:            listenAddr,
		Version:         version,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		ReferenceStore:  refStore,
		ResultStore:     resultStore,
	})

	if err := server.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
