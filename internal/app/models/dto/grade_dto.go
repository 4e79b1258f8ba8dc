package dto

import (
	"math"

	"github.com/oguzdem/gradekeeper/internal/app/models"
)

// GradeRequest carries a grade draft for create and update operations.
// Score is a pointer so that an omitted score is distinguishable from a
// legitimate zero; the validator rejects the omitted case.
type GradeRequest struct {
	StudentName string   `json:"studentName" example:"Ayse Demir"`
	SubjectCode string   `json:"subjectCode" example:"IT 101"`
	Score       *float64 `json:"score" example:"92.5"`
	Date        string   `json:"date" example:"2025-01-20"`
}

// ToModel converts the request into a candidate record for validation. An
// omitted score becomes NaN, which the validator reports as non-finite.
func (r *GradeRequest) ToModel() *models.Grade {
	score := math.NaN()
	if r.Score != nil {
		score = *r.Score
	}
	return &models.Grade{
		StudentName: r.StudentName,
		SubjectCode: r.SubjectCode,
		Score:       score,
		Date:        r.Date,
	}
}

// GradeResponse is a grade record enriched with its derived letter grade.
type GradeResponse struct {
	models.Grade
	LetterGrade string `json:"letterGrade" example:"A-"`
}
