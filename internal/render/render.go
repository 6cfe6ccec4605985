package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spigell/radarx-tracker/internal/tracker"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	nameWidth = 20
	barWidth  = 20
)

// ParseFormat accepts a format name case-insensitively. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Render writes the view in the requested format.
func Render(w io.Writer, format Format, view tracker.View) error {
	switch format {
	case FormatText, "":
		return Text(w, view)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(view)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encoding yaml view: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// Text writes a terminal rendering of the pipeline.
func Text(w io.Writer, view tracker.View) error {
	var b strings.Builder

	b.WriteString(view.Header.Title)
	if view.Header.Badge != "" {
		fmt.Fprintf(&b, " [%s]", view.Header.Badge)
	}
	b.WriteString("\n")

	for _, stage := range view.Stages {
		if !stage.Resolved() {
			fmt.Fprintf(&b, "  %s %s\n", mark(stage.State), stage.Name)
			continue
		}
		fmt.Fprintf(&b, "  %s %-*s %s\n", mark(stage.State), nameWidth, stage.Name, stage.Detail)
	}

	fmt.Fprintf(&b, "progress: %d%% %s\n", view.Percentage, bar(view.Percentage))
	fmt.Fprintf(&b, "recommended: %d\n", view.Recommended)

	status := "-"
	if view.Message != nil {
		status = *view.Message
	}
	fmt.Fprintf(&b, "status: %s\n", status)

	_, err := io.WriteString(w, b.String())
	return err
}

func mark(state tracker.Status) string {
	switch state {
	case tracker.StatusComplete:
		return "[x]"
	case tracker.StatusFailed:
		return "[!]"
	default:
		return "[ ]"
	}
}

func bar(percent int) string {
	filled := percent * barWidth / 100
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}
