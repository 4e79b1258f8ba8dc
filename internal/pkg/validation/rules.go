// Package validation holds the pure field-level rules for candidate records.
// Validators never mutate state and never touch the store; they return nil
// on pass or an error carrying the human-readable reason on fail.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/oguzdem/gradekeeper/internal/app/models"
	"github.com/oguzdem/gradekeeper/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// EmailPattern accepts any non-whitespace local part and domain with at
	// least one dot. Deliberately loose; the mail system is the authority.
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// Score bounds for grade records
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Credit bounds for subject records
const (
	MinCredits = 1
	MaxCredits = 6
)

// ValidateStudent checks a candidate student record against the field rules.
func ValidateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewValidationError("student is nil")
	}

	required := []struct {
		field, value string
	}{
		{"studentId", student.StudentID},
		{"firstName", student.FirstName},
		{"lastName", student.LastName},
		{"email", student.Email},
		{"major", student.Major},
		{"enrollmentDate", student.EnrollmentDate},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.NewValidationError(fmt.Sprintf("%s cannot be empty", f.field))
		}
	}

	if !CompiledPatterns.Email.MatchString(student.Email) {
		return apperrors.NewValidationError("email format is invalid")
	}

	if !models.IsKnownMajor(student.Major) {
		return apperrors.NewValidationError(fmt.Sprintf("major must be one of the known majors, got %q", student.Major))
	}

	if !student.Status.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("status must be one of active, inactive, graduated, suspended, got %q", student.Status))
	}

	if _, err := time.Parse(models.DateLayout, student.EnrollmentDate); err != nil {
		return apperrors.NewValidationError("enrollmentDate must be a calendar date in YYYY-MM-DD format")
	}

	return nil
}

// ValidateSubject checks a candidate subject record against the field rules.
func ValidateSubject(subject *models.Subject) error {
	if subject == nil {
		return apperrors.NewValidationError("subject is nil")
	}

	if strings.TrimSpace(subject.Code) == "" {
		return apperrors.NewValidationError("code cannot be empty")
	}
	if strings.TrimSpace(subject.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}
	if subject.Credits < MinCredits || subject.Credits > MaxCredits {
		return apperrors.NewValidationError(fmt.Sprintf("credits must be between %d and %d, got %d", MinCredits, MaxCredits, subject.Credits))
	}

	return nil
}

// ValidateGrade checks a candidate grade record against the field rules.
func ValidateGrade(grade *models.Grade) error {
	if grade == nil {
		return apperrors.NewValidationError("grade is nil")
	}

	if strings.TrimSpace(grade.StudentName) == "" {
		return apperrors.NewValidationError("studentName cannot be empty")
	}
	if strings.TrimSpace(grade.SubjectCode) == "" {
		return apperrors.NewValidationError("subjectCode cannot be empty")
	}

	if math.IsNaN(grade.Score) || math.IsInf(grade.Score, 0) {
		return apperrors.NewValidationError("score must be a finite number")
	}
	if grade.Score < MinScore || grade.Score > MaxScore {
		return apperrors.NewValidationError(fmt.Sprintf("score must be between %g and %g, got %g", MinScore, MaxScore, grade.Score))
	}

	if grade.Date != "" {
		if _, err := time.Parse(models.DateLayout, grade.Date); err != nil {
			return apperrors.NewValidationError("date must be a calendar date in YYYY-MM-DD format")
		}
	}

	return nil
}
