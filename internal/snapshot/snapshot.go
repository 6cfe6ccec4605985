package snapshot

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spigell/radarx-tracker/internal/candidates"
	"github.com/spigell/radarx-tracker/internal/tracker"
)

// Flag names as they appear in snapshot files.
const (
	FlagCompared  = "progress.compared"
	FlagRanked    = "progress.ranked"
	FlagEmailed   = "progress.emailed"
	FlagEmailSent = "email_sent"
)

type progress struct {
	Compared *bool `mapstructure:"compared"`
	Ranked   *bool `mapstructure:"ranked"`
	Emailed  *bool `mapstructure:"emailed"`
}

type document struct {
	JobTitle   string             `mapstructure:"job_title"`
	Progress   progress           `mapstructure:"progress"`
	EmailSent  *bool              `mapstructure:"email_sent"`
	TopMatches []candidates.Match `mapstructure:"top_matches"`
}

// Snapshot is one decoded report of pipeline progress for a job.
type Snapshot struct {
	JobTitle  string
	Compared  tracker.Flag
	Ranked    tracker.Flag
	Emailed   tracker.Flag
	EmailSent tracker.Flag
	Matches   *candidates.Matches
	// Unused lists keys present in the source that the snapshot does not understand.
	Unused []string
}

// Load reads a snapshot file. The format is taken from the file extension.
func Load(path string) (*Snapshot, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading snapshot %q: %w", path, err)
	}
	return Decode(v.AllSettings())
}

// Read decodes a snapshot from r. format is any extension viper understands (yaml, json, toml).
func Read(r io.Reader, format string) (*Snapshot, error) {
	format = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(format)), ".")
	if format == "" {
		format = "yaml"
	}

	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("reading %s snapshot: %w", format, err)
	}
	return Decode(v.AllSettings())
}

// FormatOf returns the snapshot format implied by a file name.
func FormatOf(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// Decode converts raw settings into a Snapshot. Progress flags that are absent
// stay unknown instead of silently becoming false.
func Decode(raw map[string]any) (*Snapshot, error) {
	var doc document
	var meta mapstructure.Metadata

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         &meta,
		Result:           &doc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating snapshot decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	unused := append([]string(nil), meta.Unused...)
	sort.Strings(unused)

	return &Snapshot{
		JobTitle:  strings.TrimSpace(doc.JobTitle),
		Compared:  tracker.FlagFromPtr(doc.Progress.Compared),
		Ranked:    tracker.FlagFromPtr(doc.Progress.Ranked),
		Emailed:   tracker.FlagFromPtr(doc.Progress.Emailed),
		EmailSent: tracker.FlagFromPtr(doc.EmailSent),
		Matches:   &candidates.Matches{Items: doc.TopMatches},
		Unused:    unused,
	}, nil
}

// Input resolves the snapshot into tracker input. Unknown flags count as false.
func (s *Snapshot) Input() tracker.Input {
	return tracker.Input{
		JobTitle: s.JobTitle,
		Signals: tracker.Signals{
			Compared: s.Compared.Resolve(),
			Ranked:   s.Ranked.Resolve(),
			Emailed:  s.Emailed.Resolve(),
		},
		EmailSent:  s.EmailSent.Resolve(),
		Candidates: s.Matches.Items,
	}
}

// UnknownFlags lists the progress flags the snapshot did not report.
func (s *Snapshot) UnknownFlags() []string {
	var unknown []string
	for _, f := range []struct {
		name string
		flag tracker.Flag
	}{
		{FlagCompared, s.Compared},
		{FlagRanked, s.Ranked},
		{FlagEmailed, s.Emailed},
		{FlagEmailSent, s.EmailSent},
	} {
		if !f.flag.Known() {
			unknown = append(unknown, f.name)
		}
	}
	return unknown
}
