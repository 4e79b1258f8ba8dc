package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oguzdem/gradekeeper/internal/app/models"
	"github.com/oguzdem/gradekeeper/internal/app/models/dto"
	"github.com/oguzdem/gradekeeper/internal/app/services"
	"github.com/oguzdem/gradekeeper/internal/middleware"
	"github.com/oguzdem/gradekeeper/internal/pkg/stats"
)

// GradeController handles grade-related operations
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// toGradeResponse enriches a grade record with its derived letter grade.
func toGradeResponse(grade *models.Grade) dto.GradeResponse {
	return dto.GradeResponse{
		Grade:       *grade,
		LetterGrade: stats.LetterGrade(grade.Score),
	}
}

// CreateGrade handles grade creation
// @Summary Record a new grade
// @Description Records a grade against a student name and subject code; the date defaults to today
// @Tags grades
// @Accept json
// @Produce json
// @Param request body dto.GradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=dto.GradeResponse} "Grade recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /grades [post]
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	var req dto.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grade, err := c.gradeService.CreateGrade(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      toGradeResponse(grade),
		Timestamp: time.Now(),
	})
}

// GetGrades retrieves grades matching the search term
// @Summary Search grades
// @Description Retrieves grades matching a free-text term, optionally narrowed to a subject code, sorted by score descending
// @Tags grades
// @Accept json
// @Produce json
// @Param q query string false "Free-text search term"
// @Param subjectCode query string false "Filter by exact subject code"
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeResponse} "Grades retrieved successfully"
// @Router /grades [get]
func (c *GradeController) GetGrades(ctx *gin.Context) {
	grades, err := c.gradeService.SearchGrades(ctx, ctx.Query("q"), ctx.Query("subjectCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.GradeResponse, 0, len(grades))
	for _, grade := range grades {
		responses = append(responses, toGradeResponse(grade))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// GetGradeByID retrieves a grade by ID
// @Summary Get grade by ID
// @Description Retrieves a specific grade record by its system identifier
// @Tags grades
// @Accept json
// @Produce json
// @Param id path string true "Grade record ID"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Router /grades/{id} [get]
func (c *GradeController) GetGradeByID(ctx *gin.Context) {
	grade, err := c.gradeService.GetGradeByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toGradeResponse(grade),
		Timestamp: time.Now(),
	})
}

// UpdateGrade updates an existing grade
// @Summary Update a grade
// @Description Replaces an existing grade record with the provided full record
// @Tags grades
// @Accept json
// @Produce json
// @Param id path string true "Grade record ID"
// @Param request body dto.GradeRequest true "Updated grade information"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Router /grades/{id} [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	var req dto.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grade, err := c.gradeService.UpdateGrade(ctx, ctx.Param("id"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toGradeResponse(grade),
		Timestamp: time.Now(),
	})
}

// DeleteGrade deletes a grade
// @Summary Delete a grade
// @Description Deletes an existing grade record
// @Tags grades
// @Accept json
// @Produce json
// @Param id path string true "Grade record ID"
// @Success 204 "Grade deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	if err := c.gradeService.DeleteGrade(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
