package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/spigell/radarx-tracker/internal/candidates"
	"github.com/spigell/radarx-tracker/internal/logger"
	"github.com/spigell/radarx-tracker/internal/render"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Compose the recruiter email for the matches in a snapshot",
	Run: func(cmd *cobra.Command, _ []string) {
		runSummary(cmd)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().Int("limit", candidates.DefaultSummaryLimit, "how many top profiles to list")
	summaryCmd.Flags().String("team", "", "signature used at the end of the email")

	viper.BindPFlag("summary.limit", summaryCmd.Flags().Lookup("limit"))
	viper.BindPFlag("summary.team", summaryCmd.Flags().Lookup("team"))
}

func runSummary(cmd *cobra.Command) {
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
		logger.Fatal("loading snapshot", zap.Error(err))
	}

	summary := candidates.Compose(snap.JobTitle, config.Summary.Team, config.Summary.Limit, snap.Matches)
	logger.Info("recruiter summary composed",
		zap.String("subject", summary.Subject),
		zap.Strings("listed", summary.Listed),
	)

	if err := writeSummary(cmd.OutOrStdout(), format, summary); err != nil {
		logger.Fatal("writing summary", zap.Error(err))
	}
}

func writeSummary(w io.Writer, format render.Format, summary candidates.Summary) error {
	switch format {
	case render.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(summary)
	case render.FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(summary); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintf(w, "Subject: %s\n\n%s\n", summary.Subject, summary.Body)
		return err
	}
}
