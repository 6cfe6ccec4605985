package candidates

import (
	"fmt"
	"strings"
)

const (
	// DefaultSummaryLimit is how many profiles a recruiter summary lists.
	DefaultSummaryLimit = 3
	DefaultTeam         = "Recruitment Team"

	noMatchesSubject = "No Suitable Matches Found"
)

// Summary is the recruiter notification composed from a set of matches.
type Summary struct {
	Subject string   `json:"subject" yaml:"subject"`
	Body    string   `json:"body" yaml:"body"`
	Listed  []string `json:"listed,omitempty" yaml:"listed,omitempty"`
}

// Compose builds the recruiter summary for the top matches of a job.
// It never sends anything.
func Compose(jobTitle, team string, limit int, matches *Matches) Summary {
	team = strings.TrimSpace(team)
	if team == "" {
		team = DefaultTeam
	}
	if limit <= 0 {
		limit = DefaultSummaryLimit
	}

	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		jobTitle = "JD"
	}

	top := matches.Top(limit)
	if len(top) == 0 {
		body := "Dear Recruiter,\n\n" +
			"Unfortunately, no strong consultant matches were found for the provided job description.\n\n" +
			"Thank you,\n" + team
		return Summary{Subject: noMatchesSubject, Body: body}
	}

	var b strings.Builder
	b.WriteString("Dear Recruiter,\n\n")
	b.WriteString("Based on the job description provided, we have identified the top consultant profiles that match your requirements.\n\n")
	fmt.Fprintf(&b, "Job Description: %s\n\n", jobTitle)
	fmt.Fprintf(&b, "Top %d Matching Profiles:\n", len(top))

	listed := make([]string, 0, len(top))
	for i, match := range top {
		fmt.Fprintf(&b, "%d. %s - Match Score: %.2f – %s\n", i+1, displayName(match, i), match.Score, match.Label())
		listed = append(listed, displayName(match, i))
	}

	b.WriteString("\nThank you,\n")
	b.WriteString(team)

	return Summary{
		Subject: fmt.Sprintf("Top %d Consultant Matches for %s", len(top), jobTitle),
		Body:    b.String(),
		Listed:  listed,
	}
}

func displayName(m Match, idx int) string {
	if name := strings.TrimSpace(m.Name); name != "" {
		return name
	}
	return fmt.Sprintf("profile #%d", idx+1)
}
