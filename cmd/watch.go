package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/radarx-tracker/internal/logger"
	"github.com/spigell/radarx-tracker/internal/render"
	"github.com/spigell/radarx-tracker/internal/snapshot"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-evaluate the pipeline every time the snapshot file changes",
	Run: func(cmd *cobra.Command, _ []string) {
		runWatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	format, err := render.ParseFormat(config.Output)
	if err != nil {
		logger.Fatal("parsing output format", zap.Error(err))
	}

	path := strings.TrimSpace(config.Snapshot)
	if path == "" || path == stdinSnapshot {
		logger.Fatal("watch requires a snapshot file", zap.String("snapshot", path))
	}

	logger.Info("watching snapshot", zap.String("path", path), zap.String("version", version))

	out := cmd.OutOrStdout()
	err = snapshot.NewWatcher(path, logger).Watch(ctx, func(snap *snapshot.Snapshot) {
		if err := evaluate(out, logger, snap, format); err != nil {
			logger.Error("rendering view", zap.Error(err))
		}
	})
	if err != nil {
		logger.Fatal("watching snapshot", zap.Error(err))
	}

	logger.Info("exiting", zap.String("reason", "interrupted"))
}
