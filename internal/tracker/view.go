package tracker

import (
	"github.com/spigell/radarx-tracker/internal/candidates"
)

// Input is everything a tracker evaluation depends on.
type Input struct {
	// JobTitle is display-only and never affects derivation.
	JobTitle   string
	Signals    Signals
	EmailSent  bool
	Candidates []candidates.Match
}

type Tone string

const (
	ToneWorking Tone = "working"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
)

const (
	HeaderRecognised = "Recognised"
	HeaderNotified   = "Notified"
	BadgeTopMatch    = "🏅 Top Match"
	BadgeNoProfiles  = "⚠ No Recommended Profiles"
)

// Header is the headline shown above the pipeline.
type Header struct {
	Title string `json:"title" yaml:"title"`
	Badge string `json:"badge,omitempty" yaml:"badge,omitempty"`
	Tone  Tone   `json:"tone" yaml:"tone"`
}

// Connector links two adjacent stages; each end is lit when its stage is complete.
type Connector struct {
	From    string `json:"from" yaml:"from"`
	To      string `json:"to" yaml:"to"`
	FromLit bool   `json:"from_lit" yaml:"from_lit"`
	ToLit   bool   `json:"to_lit" yaml:"to_lit"`
}

// View is the derived view-model handed to a renderer. It is rebuilt from
// scratch on every Evaluate call and must not be cached across input changes.
type View struct {
	JobTitle    string                    `json:"job_title" yaml:"job_title"`
	Header      Header                    `json:"header" yaml:"header"`
	Stages      Stages                    `json:"stages" yaml:"stages"`
	Connectors  [StageCount - 1]Connector `json:"connectors" yaml:"connectors"`
	Percentage  int                       `json:"percentage" yaml:"percentage"`
	Message     *string                   `json:"message" yaml:"message"`
	Recommended int                       `json:"recommended" yaml:"recommended"`
	ShowCursor  bool                      `json:"show_cursor" yaml:"show_cursor"`
}

// Evaluate derives the complete view-model for one snapshot of inputs.
func Evaluate(in Input) View {
	stages := DeriveStages(in.Signals, in.EmailSent, in.Candidates)
	recommended := (&candidates.Matches{Items: in.Candidates}).CountRecommended()

	view := View{
		JobTitle:    in.JobTitle,
		Header:      header(in.JobTitle, in.EmailSent, recommended > 0),
		Stages:      stages,
		Connectors:  connectors(stages),
		Percentage:  Percentage(stages),
		Recommended: recommended,
		ShowCursor:  !in.EmailSent,
	}

	if msg, ok := SelectMessage(stages); ok {
		view.Message = &msg
	}

	return view
}

// SelectedMessage returns the status message or an empty string.
func (v View) SelectedMessage() string {
	if v.Message == nil {
		return ""
	}
	return *v.Message
}

func header(jobTitle string, emailSent, hasRecommended bool) Header {
	if !emailSent {
		return Header{Title: "Matching for " + jobTitle, Tone: ToneWorking}
	}
	if hasRecommended {
		return Header{Title: HeaderRecognised, Badge: BadgeTopMatch, Tone: ToneSuccess}
	}
	return Header{Title: HeaderNotified, Badge: BadgeNoProfiles, Tone: ToneWarning}
}

func connectors(stages Stages) [StageCount - 1]Connector {
	var result [StageCount - 1]Connector
	for i := range result {
		result[i] = Connector{
			From:    stages[i].Name,
			To:      stages[i+1].Name,
			FromLit: stages[i].Complete,
			ToLit:   stages[i+1].Complete,
		}
	}
	return result
}
