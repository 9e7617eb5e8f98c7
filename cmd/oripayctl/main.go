package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ArowuTest/oripay-exchange-backend/internal/app"
	"github.com/ArowuTest/oripay-exchange-backend/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "oripayctl",
		Short:         "Operations tool for the Oripay Exchange back office",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory holding config.yaml")

	rootCmd.AddCommand(adminCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(seedContentCmd())
	rootCmd.AddCommand(importCurrenciesCmd())
	rootCmd.AddCommand(importCountriesCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withApp opens storage for the duration of fn
func withApp(ctx context.Context, fn func(a *app.App) error) error {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using environment variables")
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.MongoDB.URI == config.MemoryStoreURI {
		return fmt.Errorf("MONGODB_URI must point at a MongoDB deployment")
	}

	a, err := app.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())
	return fn(a)
}
