package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Project-Sylos/Fixture/internal/api"
	"github.com/Project-Sylos/Fixture/sdk"
)

func main() {
	fmt.Println("Fixture API Server")
	fmt.Println("==================")

	// Load configuration
	configPath := getConfigPath()
	if configPath == "" {
		fmt.Println("No config file given, using defaults")
	} else {
		fmt.Printf("Loading configuration from: %s\n", configPath)
	}

	fx, err := sdk.New(configPath)
	if err != nil {
		log.Fatalf("Failed to initialize Fixture: %v", err)
	}

	cfg := fx.GetConfig()
	fmt.Printf("Ledger: %s\n", cfg.Ledger.DBPath)

	server := api.NewServer(fx, &cfg.API)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-sigChan
		fmt.Println("\nShutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	addr := server.Addr()
	fmt.Printf("Starting HTTP server on %s\n", addr)
	fmt.Printf("API endpoints available at http://%s/api/v1/\n", addr)
	fmt.Printf("Health check available at http://%s/health\n", addr)
	fmt.Println("Press Ctrl+C to stop the server")

	if err := server.Start(); err != nil {
		fx.Close()
		log.Fatalf("%v", err)
	}

	<-done
	fmt.Println("Server shutdown complete")
}

// getConfigPath returns the configuration file path, or "" for defaults
func getConfigPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return ""
}
