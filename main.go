package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/meguru-crafts/vote-server/cliparse"
	"github.com/meguru-crafts/vote-server/middleware"
	"github.com/meguru-crafts/vote-server/router"
	"github.com/meguru-crafts/vote-server/vote"
)

func main() {
	var err error

	// Load a local .env if present, then parse configuration
	_ = godotenv.Load()
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the vote definition catalog
	catalog, err := vote.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		slog.Error("catalog load failed", "error", err, "path", cfg.CatalogPath)
		os.Exit(1)
	}
	slog.Info("Vote catalog ready", "votes", len(catalog.Slugs()))

	// Create the store and router
	store := vote.NewStore(catalog)
	mux := router.NewRouter(store)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
