package tracker

import (
	"testing"

	"github.com/spigell/radarx-tracker/internal/candidates"
)

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		states    [StageCount]Status
		percent   int
		message   string
		noMessage bool
	}{
		{
			name:      "nothing reported",
			input:     Input{},
			states:    [StageCount]Status{StatusPending, StatusPending, StatusPending, StatusPending},
			percent:   0,
			noMessage: true,
		},
		{
			name:    "jd analyzed",
			input:   Input{Signals: Signals{Compared: true}},
			states:  [StageCount]Status{StatusComplete, StatusPending, StatusPending, StatusPending},
			percent: 25,
			message: DetailJDAnalyzed,
		},
		{
			name: "one profile recommended",
			input: Input{
				Signals:    Signals{Compared: true, Ranked: true},
				Candidates: []candidates.Match{{Score: 0.7}, {Score: 0.3}},
			},
			states:  [StageCount]Status{StatusComplete, StatusComplete, StatusComplete, StatusPending},
			percent: 75,
			message: "✓ 1 profile recommended",
		},
		{
			name: "ranking failed",
			input: Input{
				Signals:    Signals{Compared: true, Ranked: true},
				Candidates: []candidates.Match{{Score: 0.2}},
			},
			states:  [StageCount]Status{StatusComplete, StatusComplete, StatusFailed, StatusPending},
			percent: 75,
			message: DetailNoRecommended,
		},
		{
			name: "email delivered",
			input: Input{
				Signals:    Signals{Compared: true, Ranked: true, Emailed: true},
				EmailSent:  true,
				Candidates: []candidates.Match{{Score: 0.9}},
			},
			states:  [StageCount]Status{StatusComplete, StatusComplete, StatusComplete, StatusComplete},
			percent: 100,
			message: DetailEmailSent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Evaluate(tt.input)

			for i, stage := range view.Stages {
				if stage.State != tt.states[i] {
					t.Fatalf("stage %q: expected %q, got %q", stage.Name, tt.states[i], stage.State)
				}
			}

			if view.Percentage != tt.percent {
				t.Fatalf("expected %d%%, got %d%%", tt.percent, view.Percentage)
			}

			if tt.noMessage {
				if view.Message != nil {
					t.Fatalf("expected no message, got %q", *view.Message)
				}
				return
			}
			if view.Message == nil || *view.Message != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, view.SelectedMessage())
			}
		})
	}
}

func TestPercentageProperties(t *testing.T) {
	allowed := map[int]bool{0: true, 25: true, 50: true, 75: true, 100: true}

	for name, matches := range candidateSets {
		for _, tc := range allSignalCases() {
			pct := Percentage(DeriveStages(tc.signals, tc.emailSent, matches))
			if !allowed[pct] {
				t.Fatalf("%s %+v: unexpected percentage %d", name, tc, pct)
			}
		}

		// Flip signals on in pipeline order and check progress never goes back.
		steps := []signalCase{
			{},
			{signals: Signals{Compared: true}},
			{signals: Signals{Compared: true, Ranked: true}},
			{signals: Signals{Compared: true, Ranked: true, Emailed: true}},
			{signals: Signals{Compared: true, Ranked: true, Emailed: true}, emailSent: true},
		}
		last := -1
		for _, step := range steps {
			pct := Percentage(DeriveStages(step.signals, step.emailSent, matches))
			if pct < last {
				t.Fatalf("%s: percentage dropped from %d to %d at %+v", name, last, pct, step)
			}
			last = pct
		}
	}
}

func TestPercentageCountsFailureAsResolved(t *testing.T) {
	stages := Stages{
		newStage(StageJDAnalysis, true, false, ""),
		newStage(StageProfileComparison, false, true, ""),
		newStage(StageIntelligentRanking, false, true, ""),
		newStage(StageEmailSent, false, true, ""),
	}
	if got := Percentage(stages); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}

	stages[1] = newStage(StageProfileComparison, false, false, "")
	if got := Percentage(stages); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
}

func TestSelectMessageRecency(t *testing.T) {
	for name, matches := range candidateSets {
		for _, tc := range allSignalCases() {
			stages := DeriveStages(tc.signals, tc.emailSent, matches)
			msg, ok := SelectMessage(stages)

			highest := -1
			for i, stage := range stages {
				if stage.Resolved() {
					highest = i
				}
			}

			if highest == -1 {
				if ok || msg != "" {
					t.Fatalf("%s %+v: expected no message, got %q", name, tc, msg)
				}
				continue
			}
			if !ok || msg != stages[highest].Detail {
				t.Fatalf("%s %+v: expected %q, got %q", name, tc, stages[highest].Detail, msg)
			}
		}
	}
}

func TestSelectMessageSkipsPendingLaterStages(t *testing.T) {
	stages := Stages{
		newStage(StageJDAnalysis, false, false, "first"),
		newStage(StageProfileComparison, true, false, "second"),
		newStage(StageIntelligentRanking, false, false, "third"),
		newStage(StageEmailSent, false, false, "fourth"),
	}

	msg, ok := SelectMessage(stages)
	if !ok || msg != "second" {
		t.Fatalf("expected second, got %q (%v)", msg, ok)
	}
}

func TestEvaluateHeader(t *testing.T) {
	tests := []struct {
		name   string
		input  Input
		expect Header
		cursor bool
	}{
		{
			name:   "matching in progress",
			input:  Input{JobTitle: "Go Engineer", Candidates: []candidates.Match{{Score: 0.9}}},
			expect: Header{Title: "Matching for Go Engineer", Tone: ToneWorking},
			cursor: true,
		},
		{
			name:   "sent with recommended profiles",
			input:  Input{JobTitle: "Go Engineer", EmailSent: true, Candidates: []candidates.Match{{Score: 0.9}}},
			expect: Header{Title: HeaderRecognised, Badge: BadgeTopMatch, Tone: ToneSuccess},
		},
		{
			name:   "sent without recommended profiles",
			input:  Input{JobTitle: "Go Engineer", EmailSent: true, Candidates: []candidates.Match{{Score: 0.1}}},
			expect: Header{Title: HeaderNotified, Badge: BadgeNoProfiles, Tone: ToneWarning},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Evaluate(tt.input)
			if view.Header != tt.expect {
				t.Fatalf("expected header %+v, got %+v", tt.expect, view.Header)
			}
			if view.ShowCursor != tt.cursor {
				t.Fatalf("expected cursor=%v", tt.cursor)
			}
			if view.JobTitle != tt.input.JobTitle {
				t.Fatalf("job title must pass through unchanged")
			}
		})
	}
}

func TestEvaluateConnectors(t *testing.T) {
	view := Evaluate(Input{
		Signals:    Signals{Compared: true, Ranked: true},
		Candidates: []candidates.Match{{Score: 0.2}},
	})

	expected := [StageCount - 1]Connector{
		{From: "JD Analysis", To: "Profile Comparison", FromLit: true, ToLit: true},
		{From: "Profile Comparison", To: "Intelligent Ranking", FromLit: true, ToLit: false},
		{From: "Intelligent Ranking", To: "Email Sent", FromLit: false, ToLit: false},
	}

	if view.Connectors != expected {
		t.Fatalf("unexpected connectors: %+v", view.Connectors)
	}
	if view.Recommended != 0 {
		t.Fatalf("expected no recommended profiles, got %d", view.Recommended)
	}
}
