package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutorbase/grading-backend/internal/model"
	"github.com/tutorbase/grading-backend/internal/response"
	"github.com/tutorbase/grading-backend/internal/service"
	"github.com/tutorbase/grading-backend/internal/validator"
)

// GradeHandler handles the grading API endpoints.
type GradeHandler struct {
	gradingService *service.GradingService
}

// NewGradeHandler creates a new GradeHandler.
func NewGradeHandler(gradingService *service.GradingService) *GradeHandler {
	return &GradeHandler{gradingService: gradingService}
}

// Grade godoc
// POST /api/v1/attempts/grade
// Grades one answer attempt and returns the verdict. The caller is
// responsible for persisting the verdict as the attempt's grade.
func (h *GradeHandler) Grade(c *gin.Context) {
	var req model.GradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.gradingService.Grade(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDescriptorInvalid):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidDescriptor)
		case errors.Is(err, service.ErrNoAnswer):
			response.Fail(c, http.StatusBadRequest, response.ErrAnswerMissing)
		case errors.Is(err, context.DeadlineExceeded):
			response.Fail(c, http.StatusServiceUnavailable, response.ErrRequestTimeout)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// Compare godoc
// POST /api/v1/answers/compare
// Direct two-answer comparison without a descriptor.
func (h *GradeHandler) Compare(c *gin.Context) {
	var req model.CompareRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.gradingService.Compare(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			response.Fail(c, http.StatusServiceUnavailable, response.ErrRequestTimeout)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Normalize godoc
// POST /api/v1/answers/normalize
// Returns the canonical form the engine compares on, for authoring
// tools and debugging.
func (h *GradeHandler) Normalize(c *gin.Context) {
	var req model.NormalizeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	response.Success(c, http.StatusOK, model.NormalizeResponse{
		Normalized: h.gradingService.NormalizeAnswer(req.Answer),
	})
}
