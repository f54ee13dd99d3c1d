package ai

import (
	"context"
	"errors"
	"sort"
)

// MaxCareerPaths caps how many ranked career paths an analysis reports.
const MaxCareerPaths = 5

var (
	// ErrNotConfigured means no analyzer credential was available; a
	// server configuration problem, not a transient one.
	ErrNotConfigured = errors.New("analyzer not configured")
	// ErrMalformedResponse means the model reply could not be parsed
	// into the expected schema. Fatal for the request, never retried.
	ErrMalformedResponse = errors.New("malformed model response")
	// ErrUnavailable covers transport failures and exhausted rate-limit
	// retries against the model service.
	ErrUnavailable = errors.New("model service unavailable")
)

// Analyzer produces a career analysis for extracted resume text.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText string) (Result, error)
}

// CareerPath is one suggested role with a computed fit score.
type CareerPath struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	MatchScore     int      `json:"matchScore"`
	RequiredSkills []string `json:"requiredSkills"`
}

// Result is the normalized outcome of a resume analysis.
type Result struct {
	Skills      []string     `json:"skills"`
	CareerPaths []CareerPath `json:"careerPaths"`
	Suggestions []string     `json:"suggestions"`
}

// RankCareerPaths orders paths by descending match score and keeps at
// most limit entries. Sorting is stable so ties keep their incoming
// order. The input slice is not modified; the result is never nil, so
// an empty analysis serializes as an empty JSON array.
func RankCareerPaths(paths []CareerPath, limit int) []CareerPath {
	ranked := make([]CareerPath, 0, len(paths))
	ranked = append(ranked, paths...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
