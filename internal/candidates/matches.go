package candidates

import (
	"sort"
	"strings"
)

// RecommendedThreshold is the lowest score at which a profile counts as recommended.
const RecommendedThreshold = 0.5

// Label thresholds used in recruiter-facing reports.
const (
	highlyRecommendedScore = 0.85
	recommendedScore       = 0.70
)

type Label string

const (
	LabelHighlyRecommended Label = "✅ Highly Recommended"
	LabelRecommended       Label = "☑️ Recommended"
	LabelDecent            Label = "🟡 Decent – Can Explore"
	LabelNotRecommended    Label = "🔴 Not Recommended"
)

// Match is a scored consultant profile. Scores are expected in [0,1] but are
// never validated or clamped here; normalization belongs to whoever scored them.
type Match struct {
	Name  string  `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Score float64 `json:"score" yaml:"score" mapstructure:"score"`
}

// Recommended reports whether the match meets the recommendation threshold.
func (m Match) Recommended() bool {
	return m.Score >= RecommendedThreshold
}

func (m Match) Label() Label {
	return LabelFor(m.Score)
}

// LabelFor maps a score onto its report label.
func LabelFor(score float64) Label {
	switch {
	case score >= highlyRecommendedScore:
		return LabelHighlyRecommended
	case score >= recommendedScore:
		return LabelRecommended
	case score >= RecommendedThreshold:
		return LabelDecent
	default:
		return LabelNotRecommended
	}
}

type Matches struct {
	Items []Match
}

func (m *Matches) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Items)
}

// Recommended returns the matches meeting the threshold, in input order.
func (m *Matches) Recommended() []Match {
	recommended := make([]Match, 0)
	if m == nil {
		return recommended
	}
	for _, match := range m.Items {
		if match.Recommended() {
			recommended = append(recommended, match)
		}
	}
	return recommended
}

func (m *Matches) CountRecommended() int {
	return len(m.Recommended())
}

// Top returns up to n matches ordered by descending score. Ties keep input order.
// The receiver is not reordered.
func (m *Matches) Top(n int) []Match {
	if m == nil || n <= 0 {
		return nil
	}

	sorted := make([]Match, len(m.Items))
	copy(sorted, m.Items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// FindByName returns the match with the given name, or nil.
func (m *Matches) FindByName(name string) *Match {
	if m == nil {
		return nil
	}
	name = strings.TrimSpace(name)
	for i := range m.Items {
		if m.Items[i].Name == name {
			return &m.Items[i]
		}
	}
	return nil
}

// Add appends a match and returns the updated collection length.
func (m *Matches) Add(name string, score float64) int {
	m.Items = append(m.Items, Match{Name: strings.TrimSpace(name), Score: score})
	return len(m.Items)
}

// Upsert rescores the named match if it is already present, otherwise adds it.
// Unnamed matches are always added.
func (m *Matches) Upsert(name string, score float64) int {
	if strings.TrimSpace(name) != "" {
		if existing := m.FindByName(name); existing != nil {
			existing.Score = score
			return len(m.Items)
		}
	}
	return m.Add(name, score)
}
