package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzdem/gradekeeper/internal/app/models"
	"github.com/oguzdem/gradekeeper/internal/pkg/apperrors"
)

func TestSubjectService_CreateSubject_ExtendsSeededDefaults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubjectService(repos.SubjectRepository)
	ctx := context.Background()

	require.Equal(t, 5, repos.SubjectRepository.Count(), "documented defaults")

	stored, err := svc.CreateSubject(ctx, &models.Subject{Code: "PHYS 101", Name: "Physics I", Credits: 4})
	require.NoError(t, err)

	assert.Equal(t, 6, repos.SubjectRepository.Count())
	require.NotEmpty(t, stored.ID)
	for _, s := range repos.SubjectRepository.List() {
		if s.Code != "PHYS 101" {
			assert.NotEqual(t, s.ID, stored.ID)
		}
	}
}

func TestSubjectService_CreateSubject_Invalid(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubjectService(repos.SubjectRepository)

	_, err := svc.CreateSubject(context.Background(), &models.Subject{Code: "PHYS 101", Name: "Physics I", Credits: 9})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, 5, repos.SubjectRepository.Count())
}

func TestSubjectService_CreateSubject_DuplicateCode(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubjectService(repos.SubjectRepository)

	_, err := svc.CreateSubject(context.Background(), &models.Subject{Code: "IT 101", Name: "Another Intro", Credits: 3})
	assert.ErrorIs(t, err, apperrors.ErrSubjectCodeAlreadyExists)
}

func TestSubjectService_SearchSubjects(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubjectService(repos.SubjectRepository)
	ctx := context.Background()

	// Empty term returns everything sorted ascending by code.
	all, err := svc.SearchSubjects(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Code, all[i].Code)
	}

	// Case-insensitive match against the code.
	matched, err := svc.SearchSubjects(ctx, "eng")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "ENG 110", matched[0].Code)

	// Match against the name too.
	matched, err = svc.SearchSubjects(ctx, "discrete")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "MATH 150", matched[0].Code)
}

func TestSubjectService_UpdateSubject(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubjectService(repos.SubjectRepository)
	ctx := context.Background()

	target := repos.SubjectRepository.FindByCode("IT 101", "")
	require.NotNil(t, target)

	updated, err := svc.UpdateSubject(ctx, target.ID, &models.Subject{Code: "IT 102", Name: "IT Fundamentals", Credits: 4})
	require.NoError(t, err)
	assert.Equal(t, target.ID, updated.ID)
	assert.Nil(t, repos.SubjectRepository.FindByCode("IT 101", ""))

	// Unknown id surfaces not found and changes nothing.
	_, err = svc.UpdateSubject(ctx, "no-such-id", &models.Subject{Code: "X 1", Name: "X", Credits: 1})
	assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)

	// Taking another subject's code is a conflict.
	_, err = svc.UpdateSubject(ctx, target.ID, &models.Subject{Code: "CS 201", Name: "Clone", Credits: 3})
	assert.ErrorIs(t, err, apperrors.ErrSubjectCodeAlreadyExists)
}

func TestSubjectService_DeleteSubject_LeavesGradesUntouched(t *testing.T) {
	repos := newTestRepos(t)
	subjectSvc := NewSubjectService(repos.SubjectRepository)
	gradeSvc := NewGradeService(repos.GradeRepository)
	ctx := context.Background()

	_, err := gradeSvc.CreateGrade(ctx, &models.Grade{StudentName: "Ayse Demir", SubjectCode: "IT 101", Score: 88})
	require.NoError(t, err)

	target := repos.SubjectRepository.FindByCode("IT 101", "")
	require.NotNil(t, target)
	require.NoError(t, subjectSvc.DeleteSubject(ctx, target.ID))

	// The grade dangles by content; the by-value reference is untouched.
	grades, err := gradeSvc.SearchGrades(ctx, "", "IT 101")
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, "IT 101", grades[0].SubjectCode)
}
