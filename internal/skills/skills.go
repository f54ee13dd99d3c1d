package skills

import (
	"math"
	"strings"
)

// Vocabulary is the fixed, hand-curated list of skill keywords scanned
// against resume text. All entries are lowercase. Matching is a plain
// case-insensitive substring test, so broad terms ("java") also fire on
// their supersets ("javascript"); that looseness is intentional and the
// scan order below is the order results are reported in.
var Vocabulary = []string{
	"javascript",
	"python",
	"java",
	"react",
	"angular",
	"vue",
	"node",
	"express",
	"mongodb",
	"sql",
	"aws",
	"docker",
	"kubernetes",
	"machine learning",
	"data science",
	"artificial intelligence",
	"product management",
	"agile",
	"leadership",
	"communication",
	"teamwork",
	"problem solving",
	"project management",
	"marketing",
	"seo",
	"ui/ux",
	"html",
	"css",
	"git",
	"devops",
	"typescript",
	"golang",
	"c++",
	"c#",
	"ruby",
	"php",
	"swift",
	"kotlin",
	"rust",
	"scala",
	"next.js",
	"svelte",
	"django",
	"flask",
	"spring",
	"laravel",
	"rails",
	"graphql",
	"rest api",
	"grpc",
	"postgresql",
	"mysql",
	"redis",
	"elasticsearch",
	"cassandra",
	"dynamodb",
	"sqlite",
	"kafka",
	"rabbitmq",
	"spark",
	"hadoop",
	"airflow",
	"tableau",
	"power bi",
	"excel",
	"pandas",
	"numpy",
	"tensorflow",
	"pytorch",
	"keras",
	"scikit-learn",
	"nlp",
	"computer vision",
	"deep learning",
	"data analysis",
	"data engineering",
	"etl",
	"azure",
	"google cloud",
	"terraform",
	"ansible",
	"jenkins",
	"ci/cd",
	"github actions",
	"linux",
	"bash",
	"powershell",
	"networking",
	"cybersecurity",
	"penetration testing",
	"cryptography",
	"blockchain",
	"microservices",
	"serverless",
	"system design",
	"unit testing",
	"selenium",
	"cypress",
	"jest",
	"figma",
	"sketch",
	"photoshop",
	"illustrator",
	"wireframing",
	"prototyping",
	"user research",
	"accessibility",
	"responsive design",
	"scrum",
	"kanban",
	"jira",
	"confluence",
	"stakeholder management",
	"business analysis",
	"sales",
	"customer service",
	"content writing",
	"copywriting",
	"social media",
	"email marketing",
	"google analytics",
	"negotiation",
	"public speaking",
	"mentoring",
	"time management",
	"critical thinking",
	"collaboration",
	"adaptability",
	"creativity",
	"attention to detail",
	"finance",
	"accounting",
	"budgeting",
	"recruiting",
	"operations",
	"supply chain",
	"logistics",
}

// Extract scans text against the vocabulary and returns every matched
// term in scan order. Extraction never fails; empty or whitespace-only
// text yields an empty slice.
func Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	lower := strings.ToLower(text)
	found := make([]string, 0, 16)
	for _, skill := range Vocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// MatchScore reports the percentage of required skills satisfied by the
// candidate list. A required skill counts as satisfied when it and any
// candidate skill contain each other in either direction, ignoring case.
// Either list being empty scores zero.
func MatchScore(candidate, required []string) int {
	if len(candidate) == 0 || len(required) == 0 {
		return 0
	}
	matched := 0
	for _, req := range required {
		r := strings.ToLower(req)
		for _, cand := range candidate {
			c := strings.ToLower(cand)
			if strings.Contains(c, r) || strings.Contains(r, c) {
				matched++
				break
			}
		}
	}
	return int(math.Round(float64(matched) / float64(len(required)) * 100))
}
