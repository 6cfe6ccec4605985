package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/radarx-tracker/internal/candidates"
	"github.com/spigell/radarx-tracker/internal/logger"
	"github.com/spigell/radarx-tracker/internal/render"
	"github.com/spigell/radarx-tracker/internal/tracker"
)

const (
	PromptToggleCompared  = "Toggle JD analysis (compared)"
	PromptToggleRanked    = "Toggle profile ranking (ranked)"
	PromptToggleEmailed   = "Toggle email dispatch (emailed)"
	PromptToggleEmailSent = "Toggle delivery confirmation (email sent)"
	PromptAddCandidate    = "Add or rescore candidate"
	PromptClearCandidates = "Clear candidates"
	PromptSummary         = "Show recruiter summary"
	PromptExit            = "Exit"
)

var errExit = errors.New("exit requested")

var explorePrompt = promptui.Select{
	Label: "Change a signal",
	Items: []string{
		PromptToggleCompared,
		PromptToggleRanked,
		PromptToggleEmailed,
		PromptToggleEmailSent,
		PromptAddCandidate,
		PromptClearCandidates,
		PromptSummary,
		PromptExit,
	},
	Size: 8,
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively flip progress signals and watch the pipeline react",
	Run: func(cmd *cobra.Command, _ []string) {
		runExplore(cmd)
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().String("job-title", "", "job title shown in the header; overrides the snapshot")
	viper.BindPFlag("job-title", exploreCmd.Flags().Lookup("job-title"))
}

// candidatePrompter asks the operator for one more scored candidate.
type candidatePrompter func() (name string, score float64, err error)

func runExplore(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	in := tracker.Input{}
	if strings.TrimSpace(config.Snapshot) != "" {
		snap, err := loadSnapshot(config.Snapshot, cmd.InOrStdin())
		if err != nil {
			logger.Fatal("loading snapshot", zap.Error(err))
		}
		in = snap.Input()
	}
	if title := strings.TrimSpace(config.JobTitle); title != "" {
		in.JobTitle = title
	}

	out := cmd.OutOrStdout()
	for {
		if err := render.Text(out, tracker.Evaluate(in)); err != nil {
			logger.Fatal("rendering view", zap.Error(err))
		}

		_, action, err := explorePrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleExploreAction(action, &in, out, config.Summary, askCandidate); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Warn("action failed", zap.String("action", action), zap.Error(err))
		}
	}
}

func handleExploreAction(action string, in *tracker.Input, w io.Writer, cfg *SummaryConfig, ask candidatePrompter) error {
	switch action {
	case PromptToggleCompared:
		in.Signals.Compared = !in.Signals.Compared
	case PromptToggleRanked:
		in.Signals.Ranked = !in.Signals.Ranked
	case PromptToggleEmailed:
		in.Signals.Emailed = !in.Signals.Emailed
	case PromptToggleEmailSent:
		in.EmailSent = !in.EmailSent
	case PromptAddCandidate:
		name, score, err := ask()
		if err != nil {
			return fmt.Errorf("reading candidate: %w", err)
		}
		matches := &candidates.Matches{Items: in.Candidates}
		matches.Upsert(name, score)
		in.Candidates = matches.Items
	case PromptClearCandidates:
		in.Candidates = nil
	case PromptSummary:
		if cfg == nil {
			cfg = &SummaryConfig{}
		}
		summary := candidates.Compose(in.JobTitle, cfg.Team, cfg.Limit, &candidates.Matches{Items: in.Candidates})
		return writeSummary(w, render.FormatText, summary)
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
	return nil
}

func askCandidate() (string, float64, error) {
	namePrompt := promptui.Prompt{Label: "Candidate name"}
	name, err := namePrompt.Run()
	if err != nil {
		return "", 0, err
	}

	scorePrompt := promptui.Prompt{
		Label: "Match score (0-1)",
		Validate: func(s string) error {
			_, err := parseScore(s)
			return err
		},
	}
	raw, err := scorePrompt.Run()
	if err != nil {
		return "", 0, err
	}

	score, err := parseScore(raw)
	if err != nil {
		return "", 0, err
	}
	return name, score, nil
}

// parseScore accepts any finite number. Range checks belong to whoever produced the score.
func parseScore(raw string) (float64, error) {
	score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q", raw)
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("score must be a finite number, got %q", raw)
	}
	return score, nil
}
