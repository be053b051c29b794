package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-planner/internal/dto"
	appErrors "github.com/noah-isme/course-planner/pkg/errors"
	"github.com/noah-isme/course-planner/pkg/response"
)

type schedulePlanner interface {
	Plan(ctx context.Context, req dto.PlanScheduleRequest) (*dto.PlanScheduleResponse, error)
	Export(ctx context.Context, req dto.PlanScheduleRequest, format string, rank int) (*dto.PlanExport, error)
}

// PlannerHandler exposes schedule planning endpoints.
type PlannerHandler struct {
	service schedulePlanner
}

// NewPlannerHandler constructs the handler.
func NewPlannerHandler(svc schedulePlanner) *PlannerHandler {
	return &PlannerHandler{service: svc}
}

// Plan godoc
// @Summary Rank conflict-free section combinations
// @Description Looks up every requested course, drops combinations with time conflicts and ranks the rest against the supplied preferences. found=false means no legal schedule exists.
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.PlanScheduleRequest true "Plan request"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /schedules/plan [post]
func (h *PlannerHandler) Plan(c *gin.Context) {
	var req dto.PlanScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.WrapAs(err, appErrors.ErrValidation, "invalid plan payload"))
		return
	}
	result, err := h.service.Plan(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("X-Plan-ID", result.PlanID)
	response.JSON(c, http.StatusOK, result, map[string]interface{}{"found": result.Found})
}

// Export godoc
// @Summary Download a ranked schedule as CSV or PDF
// @Tags Planner
// @Accept json
// @Produce text/csv
// @Produce application/pdf
// @Param payload body dto.PlanScheduleRequest true "Plan request"
// @Param format query string false "csv or pdf" default(csv)
// @Param rank query int false "zero-based rank, 0 is the best schedule" default(0)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedules/plan/export [post]
func (h *PlannerHandler) Export(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	rank, err := strconv.Atoi(c.DefaultQuery("rank", "0"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "rank must be an integer"))
		return
	}

	var req dto.PlanScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.WrapAs(err, appErrors.ErrValidation, "invalid plan payload"))
		return
	}
	file, err := h.service.Export(c.Request.Context(), req, format, rank)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("X-Plan-ID", file.PlanID)
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
