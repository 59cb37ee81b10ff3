package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rex-Orokumue/Vendor-verification/internal/api"
	"github.com/Rex-Orokumue/Vendor-verification/internal/config"
	"github.com/Rex-Orokumue/Vendor-verification/internal/schema"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the verification HTTP API",
	Long: `Starts the HTTP API for running assessments from other services.

Endpoints:
  GET  /healthz                   Liveness check
  GET  /api/v1/rubrics            List the scoring rubrics
  GET  /api/v1/rubrics/{name}     One rubric's rule tables
  POST /api/v1/assessments        Run an assessment, returns the report JSON
  POST /api/v1/certificates       Render a certificate (?format=html|csv|json)

Assessment bodies are JSON or YAML: {mode, rubric, vendor, answers}.
The server shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
}

func runServe() error {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return fmt.Errorf("compiling answer schemas: %w", err)
	}

	handler := api.New(validator, reportOptions(cfg), Version)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler.Router(),
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutdown signal received, stopping...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("vendorverify API listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	log.Println("vendorverify API stopped")
	return nil
}
