package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oguzdem/gradekeeper/internal/app/controllers"
	"github.com/oguzdem/gradekeeper/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	subjectController *controllers.SubjectController,
	gradeController *controllers.GradeController,
	statsController *controllers.StatsController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student routes
	students := v1.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Subject routes
	subjects := v1.Group("/subjects")
	{
		subjects.GET("", subjectController.GetSubjects)
		subjects.GET("/:id", subjectController.GetSubjectByID)
		subjects.GET("/:id/analysis", subjectController.AnalyzeSubject)
		subjects.POST("", subjectController.CreateSubject)
		subjects.PUT("/:id", subjectController.UpdateSubject)
		subjects.DELETE("/:id", subjectController.DeleteSubject)
	}

	// Grade routes
	grades := v1.Group("/grades")
	{
		grades.GET("", gradeController.GetGrades)
		grades.GET("/:id", gradeController.GetGradeByID)
		grades.POST("", gradeController.CreateGrade)
		grades.PUT("/:id", gradeController.UpdateGrade)
		grades.DELETE("/:id", gradeController.DeleteGrade)
	}

	// Statistics routes
	statsGroup := v1.Group("/stats")
	{
		statsGroup.GET("/overview", statsController.GetOverview)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
}
