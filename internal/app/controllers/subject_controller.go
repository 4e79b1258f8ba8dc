package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oguzdem/gradekeeper/internal/app/models/dto"
	"github.com/oguzdem/gradekeeper/internal/app/services"
	"github.com/oguzdem/gradekeeper/internal/middleware"
)

// SubjectController handles subject-related operations
type SubjectController struct {
	subjectService  *services.SubjectService
	analysisService *services.AnalysisService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService *services.SubjectService, analysisService *services.AnalysisService) *SubjectController {
	return &SubjectController{
		subjectService:  subjectService,
		analysisService: analysisService,
	}
}

// CreateSubject handles subject creation
// @Summary Create a new subject
// @Description Creates a new subject with the provided information
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body dto.SubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=models.Subject} "Subject created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Subject code already exists"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid subject data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	subject, err := c.subjectService.CreateSubject(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      subject,
		Timestamp: time.Now(),
	})
}

// GetSubjects retrieves subjects matching the search term
// @Summary Search subjects
// @Description Retrieves subjects matching a free-text term over code and name, sorted by code
// @Tags subjects
// @Accept json
// @Produce json
// @Param q query string false "Free-text search term"
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved successfully"
// @Router /subjects [get]
func (c *SubjectController) GetSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.SearchSubjects(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subjects,
		Timestamp: time.Now(),
	})
}

// GetSubjectByID retrieves a subject by ID
// @Summary Get subject by ID
// @Description Retrieves a specific subject by its system identifier
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject record ID"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [get]
func (c *SubjectController) GetSubjectByID(ctx *gin.Context) {
	subject, err := c.subjectService.GetSubjectByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subject,
		Timestamp: time.Now(),
	})
}

// UpdateSubject updates an existing subject
// @Summary Update a subject
// @Description Replaces an existing subject with the provided full record; existing grades keep the old code
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject record ID"
// @Param request body dto.SubjectRequest true "Updated subject information"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 409 {object} dto.ErrorResponse "Subject code already exists"
// @Router /subjects/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	var req dto.SubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid subject data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	subject, err := c.subjectService.UpdateSubject(ctx, ctx.Param("id"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subject,
		Timestamp: time.Now(),
	})
}

// DeleteSubject deletes a subject
// @Summary Delete a subject
// @Description Deletes an existing subject; grades recorded against its code are kept
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject record ID"
// @Success 204 "Subject deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	if err := c.subjectService.DeleteSubject(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// AnalyzeSubject asks the external collaborator for a performance summary
// @Summary Analyze subject performance
// @Description Produces a natural-language performance summary for a subject; returns a fixed fallback text when the external service fails
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject record ID"
// @Success 200 {object} dto.APIResponse{data=dto.AnalysisResponse} "Analysis produced"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id}/analysis [get]
func (c *SubjectController) AnalyzeSubject(ctx *gin.Context) {
	analysis, err := c.analysisService.AnalyzeSubject(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      analysis,
		Timestamp: time.Now(),
	})
}
