package descriptions

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/llm"
	"resume-parser/internal/shared/server/respond"
	"resume-parser/internal/shared/telemetry"
)

// Handler serves job description generation.
type Handler struct {
	LLM llm.Client
}

// NewHandler wires the description endpoint.
func NewHandler(llmClient llm.Client) *Handler {
	return &Handler{LLM: llmClient}
}

// RegisterRoutes attaches the description routes to the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/descriptions", h.generate)
}

type generateRequest struct {
	JobSummary string `json:"job_summary"`
}

type generateResponse struct {
	JobDescription string `json:"job_description"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be JSON", nil)
		return
	}
	if strings.TrimSpace(req.JobSummary) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_summary is required", nil)
		return
	}

	output, err := h.LLM.GenerateDescription(c.Request.Context(), req.JobSummary)
	if err != nil {
		telemetry.Error("descriptions.generate.failed", map[string]any{
			"err": err.Error(),
		})
		respond.Error(c, http.StatusBadGateway, "llm_error", "description generation failed", nil)
		return
	}

	respond.OK(c, generateResponse{JobDescription: output})
}
