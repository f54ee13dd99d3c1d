package resumes

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sridharsing7570/resume-analyser/internal/ai"
	"github.com/Sridharsing7570/resume-analyser/internal/extract"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/server/respond"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/telemetry"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/util"
)

const (
	maxUploadBytes = 10 << 20
	uploadField    = "resume"
)

var allowedContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// Handler wires HTTP handlers to the resumes service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyzeResume)
	rg.GET("/analysis/:id", h.getAnalysis)
	rg.GET("/analyses", h.listAnalyses)
}

func (h *Handler) analyzeResume(c *gin.Context) {
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeNoFile, "No file uploaded", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "File size should be less than 10MB", nil)
		return
	}

	contentType := strings.TrimSpace(strings.Split(fileHeader.Header.Get("Content-Type"), ";")[0])
	if _, ok := allowedContentTypes[contentType]; !ok {
		respond.Error(c, http.StatusBadRequest, ErrorCodeUnsupportedFormat, "Only PDF and Word documents are allowed", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid file name", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "Failed to read upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "Failed to read upload", nil)
		return
	}

	resume, err := h.Svc.Analyze(c.Request.Context(), fileName, data)
	if err != nil {
		h.writeAnalyzeError(c, err)
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"message":  "Resume analyzed successfully",
		"id":       resume.ID,
		"skills":   resume.Skills,
		"analysis": resume.Analysis,
	})
}

// writeAnalyzeError maps pipeline errors onto status codes and user-safe
// messages. Raw error detail is logged, never returned.
func (h *Handler) writeAnalyzeError(c *gin.Context, err error) {
	telemetry.Error("resume.analyze.failed", map[string]any{
		"error":      err.Error(),
		"request_id": c.GetString("requestId"),
	})

	switch {
	case errors.Is(err, ErrNoFile):
		respond.Error(c, http.StatusBadRequest, ErrorCodeNoFile, "No file uploaded", nil)
	case errors.Is(err, ErrEmptyFile):
		respond.Error(c, http.StatusBadRequest, ErrorCodeEmptyFile, "Uploaded file is empty", nil)
	case errors.Is(err, extract.ErrUnsupportedFormat):
		respond.Error(c, http.StatusBadRequest, ErrorCodeUnsupportedFormat, "Unsupported file format", nil)
	case errors.Is(err, extract.ErrCorrupt):
		respond.Error(c, http.StatusBadRequest, ErrorCodeCorruptDocument, "Could not read the uploaded document", nil)
	case errors.Is(err, extract.ErrEmptyText):
		respond.Error(c, http.StatusBadRequest, ErrorCodeEmptyExtraction, "No text could be extracted from the document", nil)
	case errors.Is(err, ai.ErrNotConfigured):
		respond.Error(c, http.StatusInternalServerError, ErrorCodeConfig, "Server configuration error", nil)
	case errors.Is(err, ai.ErrMalformedResponse), errors.Is(err, ai.ErrUnavailable):
		respond.Error(c, http.StatusInternalServerError, ErrorCodeAIService, "Error communicating with AI service. Please try again later.", nil)
	case errors.Is(err, ErrStorage):
		respond.Error(c, http.StatusInternalServerError, ErrorCodeStorage, "Error saving analysis", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "An unexpected error occurred while processing your resume", nil)
	}
}

func (h *Handler) getAnalysis(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume id is required", nil)
		return
	}

	resume, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "Resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "Error fetching resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, resume)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	records, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "Error fetching resumes", nil)
		return
	}
	if records == nil {
		records = []Resume{}
	}
	respond.JSON(c, http.StatusOK, records)
}
