package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Sridharsing7570/resume-analyser/internal/ai"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/telemetry"
	"github.com/Sridharsing7570/resume-analyser/internal/skills"
)

const (
	defaultModel = "gemini-2.0-flash"

	// Long resumes are cut before prompting to bound call cost; trailing
	// content is lost and the marker records that.
	maxPromptRunes   = 5000
	truncationMarker = "... [truncated]"

	callTimeout      = 30 * time.Second
	rateLimitBackoff = 30 * time.Second
)

const promptTemplate = `You are a resume analysis expert. Analyze this resume and provide career recommendations. Return ONLY a JSON object with this exact structure, no markdown formatting or additional text:
{
  "skills": ["skill1", "skill2"],
  "careerPaths": [
    {
      "title": "Job Title",
      "suitability": "Why this role is suitable",
      "matchingSkills": ["skill1", "skill2"],
      "skillsToAcquire": ["skill1", "skill2"]
    }
  ],
  "suggestions": ["suggestion1", "suggestion2"],
  "industryTrends": ["trend1", "trend2"]
}

Resume text: %s`

// Client implements ai.Analyzer against the Gemini API.
type Client struct {
	model   string
	backoff time.Duration

	// generate performs one model invocation. Kept as a field so tests
	// can run without network access.
	generate func(ctx context.Context, prompt string) (string, error)
}

// New constructs a Gemini-backed analyzer. The API key is required; the
// model defaults to gemini-2.0-flash.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is required", ai.ErrNotConfigured)
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: callTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	c := &Client{model: model, backoff: rateLimitBackoff}
	c.generate = func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), generationConfig())
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}
	return c, nil
}

func generationConfig() *genai.GenerateContentConfig {
	blockOnlyHigh := []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
	}
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopK:            genai.Ptr[float32](40),
		TopP:            genai.Ptr[float32](0.95),
		MaxOutputTokens: 1024,
		SafetySettings:  blockOnlyHigh,
	}
}

// Analyze prompts the model with the resume text and normalizes its reply.
// A rate-limited call is retried exactly once after the backoff interval;
// a second failure of any kind surfaces as ai.ErrUnavailable.
func (c *Client) Analyze(ctx context.Context, resumeText string) (ai.Result, error) {
	prompt := fmt.Sprintf(promptTemplate, truncate(resumeText))

	raw, err := c.generate(ctx, prompt)
	if rateLimited(err) {
		telemetry.Info("gemini.rate_limited", map[string]any{
			"model":           c.model,
			"backoff_seconds": c.backoff.Seconds(),
		})
		select {
		case <-time.After(c.backoff):
		case <-ctx.Done():
			return ai.Result{}, ctx.Err()
		}
		raw, err = c.generate(ctx, prompt)
	}
	if err != nil {
		return ai.Result{}, fmt.Errorf("%w: %v", ai.ErrUnavailable, err)
	}

	parsed, err := parseResponse(raw)
	if err != nil {
		return ai.Result{}, err
	}
	return normalize(parsed), nil
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxPromptRunes {
		return text
	}
	return string(runes[:maxPromptRunes]) + truncationMarker
}

func rateLimited(err error) bool {
	if err == nil {
		return false
	}
	var apiErr genai.APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests
}

// rawAnalysis mirrors the JSON schema the prompt demands. Absent fields
// stay nil and degrade to empty sequences during normalization.
type rawAnalysis struct {
	Skills         []string        `json:"skills"`
	CareerPaths    []rawCareerPath `json:"careerPaths"`
	Suggestions    []string        `json:"suggestions"`
	IndustryTrends []string        `json:"industryTrends"`
}

type rawCareerPath struct {
	Title           string   `json:"title"`
	Suitability     string   `json:"suitability"`
	MatchingSkills  []string `json:"matchingSkills"`
	SkillsToAcquire []string `json:"skillsToAcquire"`
}

func parseResponse(raw string) (rawAnalysis, error) {
	cleaned := cleanResponse(raw)
	var parsed rawAnalysis
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return rawAnalysis{}, fmt.Errorf("%w: %v", ai.ErrMalformedResponse, err)
	}
	return parsed, nil
}

// cleanResponse strips markdown code fences (with or without a language
// tag), stray trailing backticks and leading whitespace before the
// opening brace, leaving bare JSON for the parser.
func cleanResponse(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimRight(clean, "`")
	return strings.TrimSpace(clean)
}

// normalize maps the model schema onto the stable internal one. The
// model's own numeric judgment is not trusted: every match score is
// recomputed from its skills and matchingSkills lists.
func normalize(raw rawAnalysis) ai.Result {
	paths := make([]ai.CareerPath, 0, len(raw.CareerPaths))
	for _, p := range raw.CareerPaths {
		paths = append(paths, ai.CareerPath{
			Title:          p.Title,
			Description:    p.Suitability,
			MatchScore:     skills.MatchScore(raw.Skills, p.MatchingSkills),
			RequiredSkills: orEmpty(p.SkillsToAcquire),
		})
	}

	suggestions := make([]string, 0, len(raw.Suggestions)+len(raw.IndustryTrends))
	suggestions = append(suggestions, raw.Suggestions...)
	for _, trend := range raw.IndustryTrends {
		suggestions = append(suggestions, "Industry Trend: "+trend)
	}

	return ai.Result{
		Skills:      orEmpty(raw.Skills),
		CareerPaths: ai.RankCareerPaths(paths, ai.MaxCareerPaths),
		Suggestions: suggestions,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var _ ai.Analyzer = (*Client)(nil)
