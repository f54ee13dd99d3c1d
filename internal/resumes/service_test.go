package resumes_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Sridharsing7570/resume-analyser/internal/ai"
	"github.com/Sridharsing7570/resume-analyser/internal/extract"
	"github.com/Sridharsing7570/resume-analyser/internal/resumes"
)

func TestServiceAnalyzeMergesSkills(t *testing.T) {
	analyzer := &fakeAnalyzer{
		result: ai.Result{
			Skills: []string{"Go", "React"},
			CareerPaths: []ai.CareerPath{
				{Title: "Full Stack Developer", Description: "Strong fit", MatchScore: 80, RequiredSkills: []string{"node.js"}},
			},
			Suggestions: []string{"Learn node.js"},
		},
	}
	repo := resumes.NewMemoryRepo()
	svc := &resumes.Service{Repo: repo, Analyzer: analyzer}

	data := buildDocx(t, []string{"Jane Doe", "JavaScript, React, 3 years experience"})
	resume, err := svc.Analyze(context.Background(), "resume.docx", data)
	require.NoError(t, err)
	require.Equal(t, 1, analyzer.callCount())

	require.NotEmpty(t, resume.ID)
	require.Equal(t, "resume.docx", resume.FileName)
	require.Contains(t, resume.Content, "Jane Doe")

	// Vocabulary matches come first in scan order, analyzer skills after,
	// deduplicated case-insensitively.
	require.Contains(t, resume.Skills, "javascript")
	require.Contains(t, resume.Skills, "react")
	require.Contains(t, resume.Skills, "Go")
	count := 0
	for _, s := range resume.Skills {
		if s == "react" || s == "React" {
			count++
		}
	}
	require.Equal(t, 1, count, "react must not be duplicated")

	require.Len(t, resume.Analysis.CareerPaths, 1)
	require.Equal(t, "Full Stack Developer", resume.Analysis.CareerPaths[0].Title)
	require.Equal(t, []string{"Learn node.js"}, resume.Analysis.Suggestions)

	stored, err := repo.GetByID(context.Background(), resume.ID)
	require.NoError(t, err)
	require.Equal(t, resume.ID, stored.ID)
}

func TestServiceAnalyzeRejectsBlankFileName(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	svc := &resumes.Service{Repo: resumes.NewMemoryRepo(), Analyzer: analyzer}

	_, err := svc.Analyze(context.Background(), "   ", []byte("data"))
	require.ErrorIs(t, err, resumes.ErrNoFile)
	require.Equal(t, 0, analyzer.callCount())
}

func TestServiceAnalyzeRejectsEmptyUpload(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	repo := resumes.NewMemoryRepo()
	svc := &resumes.Service{Repo: repo, Analyzer: analyzer}

	_, err := svc.Analyze(context.Background(), "resume.docx", nil)
	require.ErrorIs(t, err, resumes.ErrEmptyFile)
	require.Equal(t, 0, analyzer.callCount())

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestServiceAnalyzeCorruptDocumentSkipsModel(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	svc := &resumes.Service{Repo: resumes.NewMemoryRepo(), Analyzer: analyzer}

	_, err := svc.Analyze(context.Background(), "fake.pdf", []byte("not a pdf"))
	require.ErrorIs(t, err, extract.ErrCorrupt)
	require.Equal(t, 0, analyzer.callCount())
}

func TestServiceAnalyzeNilAnalyzer(t *testing.T) {
	svc := &resumes.Service{Repo: resumes.NewMemoryRepo()}

	data := buildDocx(t, []string{"some resume text"})
	_, err := svc.Analyze(context.Background(), "resume.docx", data)
	require.ErrorIs(t, err, ai.ErrNotConfigured)
}

func TestServiceAnalyzeAnalyzerErrorPropagates(t *testing.T) {
	analyzer := &fakeAnalyzer{err: ai.ErrMalformedResponse}
	repo := resumes.NewMemoryRepo()
	svc := &resumes.Service{Repo: repo, Analyzer: analyzer}

	data := buildDocx(t, []string{"some resume text"})
	_, err := svc.Analyze(context.Background(), "resume.docx", data)
	require.ErrorIs(t, err, ai.ErrMalformedResponse)

	records, listErr := repo.List(context.Background())
	require.NoError(t, listErr)
	require.Empty(t, records, "nothing may be persisted on analyzer failure")
}

func TestServiceAnalyzeStorageFailure(t *testing.T) {
	analyzer := &fakeAnalyzer{result: ai.Result{Skills: []string{"go"}}}
	svc := &resumes.Service{
		Repo:     &failRepo{err: errors.New("connection refused")},
		Analyzer: analyzer,
	}

	data := buildDocx(t, []string{"some resume text"})
	_, err := svc.Analyze(context.Background(), "resume.docx", data)
	require.ErrorIs(t, err, resumes.ErrStorage)
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := resumes.NewMemoryRepo()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(context.Background(), resumes.Resume{ID: "older", CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.Create(context.Background(), resumes.Resume{ID: "newest", CreatedAt: now}))
	require.NoError(t, repo.Create(context.Background(), resumes.Resume{ID: "middle", CreatedAt: now.Add(-time.Minute)}))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "newest", records[0].ID)
	require.Equal(t, "middle", records[1].ID)
	require.Equal(t, "older", records[2].ID)
}

func TestMemoryRepoGetMissing(t *testing.T) {
	repo := resumes.NewMemoryRepo()

	_, err := repo.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, resumes.ErrNotFound)
}
