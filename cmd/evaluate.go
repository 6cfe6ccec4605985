package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/radarx-tracker/internal/logger"
	"github.com/spigell/radarx-tracker/internal/render"
	"github.com/spigell/radarx-tracker/internal/snapshot"
	"github.com/spigell/radarx-tracker/internal/tracker"
)

const stdinSnapshot = "-"

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a progress snapshot and print the pipeline view",
	Run: func(cmd *cobra.Command, _ []string) {
		runEvaluate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command) {
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

	snap, err := loadSnapshot(config.Snapshot, cmd.InOrStdin())
	if err != nil {
		logger.Fatal("loading snapshot",
			zap.Error(err),
			zap.String("hint", "pass --snapshot or set the 'snapshot' key in the configuration file"),
		)
	}

	if err := evaluate(cmd.OutOrStdout(), logger, snap, format); err != nil {
		logger.Fatal("rendering view", zap.Error(err))
	}
}

// loadSnapshot reads the snapshot from a file, or yaml from stdin when path is "-".
func loadSnapshot(path string, stdin io.Reader) (*snapshot.Snapshot, error) {
	path = strings.TrimSpace(path)
	switch path {
	case "":
		return nil, fmt.Errorf("snapshot is not configured")
	case stdinSnapshot:
		if stdin == nil {
			stdin = os.Stdin
		}
		return snapshot.Read(stdin, "yaml")
	default:
		return snapshot.Load(path)
	}
}

// evaluate derives the view for one snapshot, logs it and renders it to w.
func evaluate(w io.Writer, log *zap.Logger, snap *snapshot.Snapshot, format render.Format) error {
	for _, key := range snap.Unused {
		log.Warn("ignoring unknown snapshot key", zap.String("key", key))
	}
	for _, flag := range snap.UnknownFlags() {
		log.Debug("progress flag not reported, treating as false", zap.String("flag", flag))
	}

	view := tracker.Evaluate(snap.Input())

	for _, stage := range view.Stages {
		log.Debug("stage derived", logger.StageFields(stage)...)
	}
	log.Info("pipeline evaluated", logger.ViewFields(view)...)

	return render.Render(w, format, view)
}
