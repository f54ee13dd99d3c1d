// Package heuristic is a keyword-only ai.Analyzer for offline and dev
// use. It suggests roles from a fixed catalogue instead of calling a
// model, scoring each with the same match algorithm the model path uses.
package heuristic

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sridharsing7570/resume-analyser/internal/ai"
	"github.com/Sridharsing7570/resume-analyser/internal/skills"
)

// Paths scoring at or below this are not worth suggesting.
const minMatchScore = 30

type careerDefinition struct {
	title       string
	description string
	skills      []string
}

var careerDefinitions = []careerDefinition{
	{
		title:       "Full Stack Developer",
		description: "Build complete web applications with both frontend and backend expertise.",
		skills:      []string{"javascript", "html", "css", "react", "node", "mongodb"},
	},
	{
		title:       "Data Scientist",
		description: "Analyze complex data sets to help organizations make better decisions.",
		skills:      []string{"python", "machine learning", "data science", "artificial intelligence"},
	},
	{
		title:       "DevOps Engineer",
		description: "Bridge the gaps between software development and operations.",
		skills:      []string{"docker", "kubernetes", "aws", "devops", "git"},
	},
	{
		title:       "Product Manager",
		description: "Lead the development of products from conception to launch.",
		skills:      []string{"product management", "agile", "leadership", "communication"},
	},
}

// Analyzer implements ai.Analyzer without any external calls.
type Analyzer struct{}

func New() *Analyzer {
	return &Analyzer{}
}

func (Analyzer) Analyze(ctx context.Context, resumeText string) (ai.Result, error) {
	if err := ctx.Err(); err != nil {
		return ai.Result{}, err
	}

	found := skills.Extract(resumeText)

	paths := make([]ai.CareerPath, 0, len(careerDefinitions))
	for _, def := range careerDefinitions {
		score := skills.MatchScore(found, def.skills)
		if score <= minMatchScore {
			continue
		}
		paths = append(paths, ai.CareerPath{
			Title:          def.title,
			Description:    def.description,
			MatchScore:     score,
			RequiredSkills: missingSkills(found, def.skills),
		})
	}
	paths = ai.RankCareerPaths(paths, ai.MaxCareerPaths)

	suggestions := []string{}
	if len(paths) == 0 {
		suggestions = append(suggestions, "Consider adding more specific technical skills to your resume.")
	} else if missing := paths[0].RequiredSkills; len(missing) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"To strengthen your %s profile, consider learning: %s",
			paths[0].Title, strings.Join(missing, ", ")))
	}
	suggestions = append(suggestions,
		"Keep your resume updated with your latest projects and achievements.",
		"Consider adding quantifiable achievements to demonstrate impact.",
	)

	return ai.Result{
		Skills:      found,
		CareerPaths: paths,
		Suggestions: suggestions,
	}, nil
}

func missingSkills(found, required []string) []string {
	have := make(map[string]struct{}, len(found))
	for _, s := range found {
		have[strings.ToLower(s)] = struct{}{}
	}
	missing := []string{}
	for _, s := range required {
		if _, ok := have[strings.ToLower(s)]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}

var _ ai.Analyzer = Analyzer{}
