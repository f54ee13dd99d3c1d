package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sridharsing7570/resume-analyser/internal/ai"
	"github.com/Sridharsing7570/resume-analyser/internal/extract"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/metrics"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/telemetry"
	"github.com/Sridharsing7570/resume-analyser/internal/skills"
)

// Service runs the upload-to-analysis pipeline: validate, extract text,
// extract skills, analyze, persist.
type Service struct {
	Repo     Repo
	Analyzer ai.Analyzer
}

// Analyze processes one uploaded document end to end and returns the
// persisted record. Every stage fails fast with a tagged error; storage
// is on the critical path, so a failed insert fails the whole request.
func (s *Service) Analyze(ctx context.Context, fileName string, data []byte) (Resume, error) {
	metrics.IncAnalysisStarted()
	start := time.Now()

	resume, err := s.analyze(ctx, fileName, data)

	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Resume{}, err
	}
	metrics.IncAnalysisCompleted()
	return resume, nil
}

func (s *Service) analyze(ctx context.Context, fileName string, data []byte) (Resume, error) {
	if strings.TrimSpace(fileName) == "" {
		return Resume{}, ErrNoFile
	}
	if len(data) == 0 {
		return Resume{}, ErrEmptyFile
	}

	text, err := extract.Text(data, fileName)
	if err != nil {
		// Covers unsupported format, corrupt input and empty extraction;
		// in all three cases the model is never called.
		return Resume{}, err
	}

	found := skills.Extract(text)

	if s.Analyzer == nil {
		return Resume{}, ai.ErrNotConfigured
	}
	result, err := s.Analyzer.Analyze(ctx, text)
	if err != nil {
		return Resume{}, err
	}

	resume := Resume{
		ID:        uuid.NewString(),
		FileName:  fileName,
		Content:   text,
		Skills:    mergeSkills(found, result.Skills),
		Analysis:  Analysis{CareerPaths: result.CareerPaths, Suggestions: result.Suggestions},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		telemetry.Error("resume.persist.failed", map[string]any{
			"resume_id": resume.ID,
			"error":     err.Error(),
		})
		return Resume{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return resume, nil
}

// Get returns one persisted record.
func (s *Service) Get(ctx context.Context, id string) (Resume, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all persisted records, newest first.
func (s *Service) List(ctx context.Context) ([]Resume, error) {
	return s.Repo.List(ctx)
}

// mergeSkills combines vocabulary-extracted skills with the skills the
// analyzer reported, deduplicated case-insensitively. Vocabulary matches
// keep their scan order and come first.
func mergeSkills(extracted, reported []string) []string {
	seen := make(map[string]struct{}, len(extracted)+len(reported))
	merged := make([]string, 0, len(extracted)+len(reported))
	for _, group := range [][]string{extracted, reported} {
		for _, skill := range group {
			key := strings.ToLower(strings.TrimSpace(skill))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, skill)
		}
	}
	return merged
}
