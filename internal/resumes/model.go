package resumes

import (
	"time"

	"github.com/Sridharsing7570/resume-analyser/internal/ai"
)

// Resume is the persisted record for one analyzed upload. Records are
// append-only; nothing mutates them after creation.
type Resume struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	Content   string    `json:"content"`
	Skills    []string  `json:"skills"`
	Analysis  Analysis  `json:"analysis"`
	CreatedAt time.Time `json:"createdAt"`
}

// Analysis is the stored portion of an analyzer result.
type Analysis struct {
	CareerPaths []ai.CareerPath `json:"careerPaths"`
	Suggestions []string        `json:"suggestions"`
}
