package tracker

import (
	"fmt"

	"github.com/spigell/radarx-tracker/internal/candidates"
)

// StageCount is the fixed number of pipeline stages.
const StageCount = 4

type StageID int

const (
	StageJDAnalysis StageID = iota
	StageProfileComparison
	StageIntelligentRanking
	StageEmailSent
)

var stageNames = [StageCount]string{
	StageJDAnalysis:         "JD Analysis",
	StageProfileComparison:  "Profile Comparison",
	StageIntelligentRanking: "Intelligent Ranking",
	StageEmailSent:          "Email Sent",
}

func (id StageID) String() string {
	if id < 0 || int(id) >= StageCount {
		return fmt.Sprintf("stage(%d)", int(id))
	}
	return stageNames[id]
}

const (
	DetailJDAnalyzed       = "✓ JD text extracted • Skills identified"
	DetailProfilesCompared = "✓ Consultant profiles matched by AI"
	DetailNoRecommended    = "⚠ No profiles met the quality threshold"
	DetailEmailSent        = "✓ Email successfully sent to recruiter"
	DetailReadyToSend      = "📬 Ready to send"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusComplete Status = "complete"
	StatusFailed   Status = "failed"
)

// Stage is one derived step of the hiring pipeline. A Stage is a value and is
// rebuilt on every evaluation.
type Stage struct {
	ID       StageID `json:"-" yaml:"-"`
	Name     string  `json:"name" yaml:"name"`
	State    Status  `json:"state" yaml:"state"`
	Complete bool    `json:"complete" yaml:"complete"`
	Failed   bool    `json:"failed" yaml:"failed"`
	Detail   string  `json:"detail" yaml:"detail"`
}

// Stages is the ordered pipeline.
type Stages [StageCount]Stage

// newStage keeps complete and failed mutually exclusive; completion wins.
func newStage(id StageID, complete, failed bool, detail string) Stage {
	if complete {
		failed = false
	}

	state := StatusPending
	switch {
	case complete:
		state = StatusComplete
	case failed:
		state = StatusFailed
	}

	return Stage{
		ID:       id,
		Name:     id.String(),
		State:    state,
		Complete: complete,
		Failed:   failed,
		Detail:   detail,
	}
}

// Resolved reports whether the pipeline has moved past this stage, successfully or not.
func (s Stage) Resolved() bool {
	return s.Complete || s.Failed
}

// DeriveStages maps the raw signals and scored candidates onto the four pipeline stages.
func DeriveStages(signals Signals, emailSent bool, matches []candidates.Match) Stages {
	recommended := (&candidates.Matches{Items: matches}).CountRecommended()
	hasRecommended := recommended > 0

	rankingDetail := DetailNoRecommended
	if hasRecommended {
		rankingDetail = recommendedDetail(recommended)
	}

	emailDetail := DetailReadyToSend
	if emailSent {
		emailDetail = DetailEmailSent
	}

	return Stages{
		newStage(StageJDAnalysis, signals.Compared, false, DetailJDAnalyzed),
		newStage(StageProfileComparison, signals.Ranked, false, DetailProfilesCompared),
		newStage(StageIntelligentRanking, hasRecommended, signals.Ranked && !hasRecommended, rankingDetail),
		newStage(StageEmailSent, signals.Emailed && emailSent, false, emailDetail),
	}
}

func recommendedDetail(count int) string {
	noun := "profile"
	if count > 1 {
		noun = "profiles"
	}
	return fmt.Sprintf("✓ %d %s recommended", count, noun)
}
