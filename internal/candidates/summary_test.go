package candidates

import (
	"strings"
	"testing"
)

func TestComposeWithMatches(t *testing.T) {
	matches := &Matches{Items: []Match{
		{Name: "bob.docx", Score: 0.55},
		{Name: "alice.pdf", Score: 0.91},
		{Name: "carol.pdf", Score: 0.72},
		{Name: "dave.pdf", Score: 0.1},
	}}

	summary := Compose("Go Engineer", "Hexaware Recruitment Team", 0, matches)

	if summary.Subject != "Top 3 Consultant Matches for Go Engineer" {
		t.Fatalf("unexpected subject: %q", summary.Subject)
	}

	expectedLines := []string{
		"Job Description: Go Engineer",
		"Top 3 Matching Profiles:",
		"1. alice.pdf - Match Score: 0.91 – ✅ Highly Recommended",
		"2. carol.pdf - Match Score: 0.72 – ☑️ Recommended",
		"3. bob.docx - Match Score: 0.55 – 🟡 Decent – Can Explore",
	}
	for _, line := range expectedLines {
		if !strings.Contains(summary.Body, line) {
			t.Fatalf("expected body to contain %q, got:\n%s", line, summary.Body)
		}
	}

	if strings.Contains(summary.Body, "dave.pdf") {
		t.Fatalf("fourth match must not be listed")
	}

	if !strings.HasSuffix(summary.Body, "Thank you,\nHexaware Recruitment Team") {
		t.Fatalf("unexpected signature: %q", summary.Body)
	}

	if len(summary.Listed) != 3 || summary.Listed[0] != "alice.pdf" {
		t.Fatalf("unexpected listed profiles: %+v", summary.Listed)
	}
}

func TestComposeWithoutMatches(t *testing.T) {
	summary := Compose("", "", 3, &Matches{})

	if summary.Subject != noMatchesSubject {
		t.Fatalf("unexpected subject: %q", summary.Subject)
	}
	if !strings.Contains(summary.Body, "no strong consultant matches were found") {
		t.Fatalf("unexpected body: %q", summary.Body)
	}
	if !strings.HasSuffix(summary.Body, DefaultTeam) {
		t.Fatalf("expected default team signature, got %q", summary.Body)
	}
	if len(summary.Listed) != 0 {
		t.Fatalf("expected no listed profiles")
	}
}

func TestComposeUnnamedProfile(t *testing.T) {
	summary := Compose("SRE", "", 1, &Matches{Items: []Match{{Score: 0.3}}})

	if !strings.Contains(summary.Body, "1. profile #1 - Match Score: 0.30 – 🔴 Not Recommended") {
		t.Fatalf("unexpected body: %s", summary.Body)
	}
}
