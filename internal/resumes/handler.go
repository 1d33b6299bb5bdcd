package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-parser/internal/extract"
	"resume-parser/internal/llm"
	"resume-parser/internal/parser"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/server/respond"
	"resume-parser/internal/shared/storage/object"
	"resume-parser/internal/shared/telemetry"
)

const maxUploadBytes = 10 << 20

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
	".txt":  {},
}

// Handler serves resume upload, extraction and retrieval.
type Handler struct {
	Store     object.ObjectStore
	Repo      Repo
	Extractor *parser.Extractor
	LLM       llm.Client
	Engine    string
}

// NewHandler wires the resume endpoints.
func NewHandler(store object.ObjectStore, repo Repo, extractor *parser.Extractor, llmClient llm.Client, engine string) *Handler {
	if engine != "llm" {
		engine = "heuristic"
	}
	return &Handler{
		Store:     store,
		Repo:      repo,
		Extractor: extractor,
		LLM:       llmClient,
		Engine:    engine,
	}
}

// RegisterRoutes attaches the resume routes to the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.GET("/resumes/:id", h.getByID)
}

// upload accepts a multipart resume file, decodes its text and returns the
// assembled record. A decodable file that yields no text is the caller's
// problem (422); everything past decoding degrades per field instead of
// failing the request.
func (h *Handler) upload(c *gin.Context) {
	c.Set("parserEngine", h.Engine)
	metrics.IncParseStarted()
	started := time.Now()

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		metrics.IncParseFailed()
		respond.Error(c, http.StatusBadRequest, "validation_error", "no resume file in request", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		metrics.IncParseFailed()
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds size limit", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		metrics.IncParseFailed()
		respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported file type", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		metrics.IncParseFailed()
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	storageKey, _, mimeType, err := h.Store.Save(ctx, fileHeader.Filename, file)
	if err != nil {
		metrics.IncParseFailed()
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store upload", nil)
		return
	}

	text, err := extract.Text(ctx, h.Store, storageKey, mimeType, fileHeader.Filename)
	if err != nil {
		metrics.IncParseFailed()
		if errors.Is(err, extract.ErrUnsupportedType) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported file type", nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "no_extractable_text", "failed to extract text from the resume", nil)
		return
	}

	record, err := h.parse(ctx, text)
	if err != nil {
		metrics.IncParseFailed()
		switch {
		case errors.Is(err, parser.ErrNoText):
			respond.Error(c, http.StatusUnprocessableEntity, "no_extractable_text", "failed to extract text from the resume", nil)
		case errors.Is(err, llm.ErrMalformedOutput), errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "llm_error", "resume parsing collaborator failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "internal error while parsing resume", nil)
		}
		return
	}

	resultID := uuid.NewString()
	c.Set("resumeId", resultID)

	// Persistence is best-effort: a repo failure is logged, the parse
	// still succeeds for the caller.
	if h.Repo != nil {
		result := ParseResult{
			ID:         resultID,
			FileName:   fileHeader.Filename,
			StorageKey: storageKey,
			Engine:     h.Engine,
			Record:     record,
			CreatedAt:  time.Now().UTC(),
		}
		if err := h.Repo.Create(ctx, result); err != nil {
			telemetry.Error("resumes.persist.failed", map[string]any{
				"err":       err.Error(),
				"resume_id": resultID,
			})
		}
	}

	metrics.IncParseCompleted()
	metrics.ObserveParseDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)

	c.Header("X-Resume-Id", resultID)
	c.Data(http.StatusOK, "application/json; charset=utf-8", record)
}

func (h *Handler) parse(ctx context.Context, text string) (json.RawMessage, error) {
	if h.Engine == "llm" {
		raw, err := h.LLM.ParseResume(ctx, text)
		if err != nil {
			return nil, err
		}
		return raw, nil
	}

	record, err := h.Extractor.Extract(ctx, text)
	if err != nil {
		return nil, err
	}
	return json.Marshal(record)
}

// getByID returns a previously stored parse result.
func (h *Handler) getByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "id is required", nil)
		return
	}
	if h.Repo == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "parse result not found", nil)
		return
	}

	result, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "parse result not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load parse result", nil)
		return
	}
	respond.OK(c, result)
}
