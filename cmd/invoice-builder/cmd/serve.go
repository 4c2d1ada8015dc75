package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rezonia/invoice-builder/internal/capture"
	"github.com/rezonia/invoice-builder/internal/export"
	"github.com/rezonia/invoice-builder/internal/server"
	"github.com/rezonia/invoice-builder/internal/store"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for editing and exporting the invoice.

The API provides endpoints for:
  - GET/PATCH  /api/v1/invoice            - Invoice content
  - POST       /api/v1/invoice/items      - Add a line item
  - PATCH/DELETE /api/v1/invoice/items/:id - Edit or remove a line item
  - GET/PATCH  /api/v1/settings           - Presentation settings
  - GET        /api/v1/templates          - Available layouts
  - GET        /api/v1/preview            - Rendered HTML document
  - POST       /api/v1/export/pdf|png     - Export and download
  - GET        /health                    - Health check

Examples:
  # Start server on default port
  invoice-builder serve

  # Start on custom port in debug mode
  invoice-builder serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 5*time.Minute, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	st := store.New()
	capturer := capture.NewChrome(
		capture.WithExecPath(chromePath),
		capture.WithLogger(logger),
	)
	pipeline := export.NewPipeline(st, capturer, export.WithLogger(logger))

	config := &server.Config{
		Address:      serverAddr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	srv := server.NewServer(config, st, pipeline, logger)

	// Handle graceful shutdown: stop accepting requests and drain
	// in-flight ones (a running export may take a while).
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	fmt.Printf("Starting server on %s\n", serverAddr)
	if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
