package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beaticafe/internal/config"
	"beaticafe/internal/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// env is what every subcommand starts from.
type env struct {
	cfg config.Config
	log *zap.Logger
}

func loadEnv() (*env, error) {
	config.LoadDotEnv(".env", "../.env")
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.IsProd())
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "beaticafe",
		Short:         "Beati Cafe website backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newSeedCmd(),
		newMenuCmd(),
		newMessagesCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
