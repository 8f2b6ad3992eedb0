package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf_extractor/api"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	// ServerReadTimeout is the HTTP server read timeout
	ServerReadTimeout = 15 * time.Second

	// ServerWriteTimeout is the HTTP server write timeout
	ServerWriteTimeout = 15 * time.Second

	// ServerIdleTimeout is the HTTP server idle timeout
	ServerIdleTimeout = 60 * time.Second

	// GracefulShutdownTimeout is the timeout for graceful shutdown
	GracefulShutdownTimeout = 10 * time.Second
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the PDF extraction HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(api.LoadConfig())
		},
	}
}

func runServe(config *api.Config) error {
	r := gin.Default()

	// API routes with config
	api.SetupRoutes(r, config)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "pdf_extractor",
		})
	})

	// Create HTTP server with timeout settings
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", config.Port),
		Handler:      r,
		ReadTimeout:  ServerReadTimeout,
		WriteTimeout: ServerWriteTimeout,
		IdleTimeout:  ServerIdleTimeout,
	}

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Server starting on %s", srv.Addr)
		logrus.Infof("Max file size: %d bytes", config.MaxFileSize)
		logrus.Infof("Temp directory: %s", config.TempDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}
	logrus.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logrus.Info("Server exited gracefully")
	return nil
}
