package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzdem/gradekeeper/internal/app/models"
	"github.com/oguzdem/gradekeeper/internal/app/repositories"
	"github.com/oguzdem/gradekeeper/internal/pkg/apperrors"
)

func newAnalysisService(t *testing.T, repos *repositories.Repositories, handler http.HandlerFunc) *AnalysisService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := AnalysisConfig{Endpoint: srv.URL, APIKey: "test-key", Model: "test-model"}
	return NewAnalysisService(repos.SubjectRepository, repos.GradeRepository, cfg, srv.Client())
}

func chatCompletion(content string) []byte {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return b
}

func TestAnalysisService_AnalyzeSubject(t *testing.T) {
	repos := newTestRepos(t)
	gradeSvc := NewGradeService(repos.GradeRepository)
	ctx := context.Background()

	for _, g := range []*models.Grade{
		{StudentName: "Ayse Demir", SubjectCode: "IT 101", Score: 95},
		{StudentName: "Mehmet Yilmaz", SubjectCode: "IT 101", Score: 62},
		{StudentName: "Elif Kaya", SubjectCode: "CS 201", Score: 88},
	} {
		_, err := gradeSvc.CreateGrade(ctx, g)
		require.NoError(t, err)
	}

	var received chatRequest
	svc := newAnalysisService(t, repos, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write(chatCompletion("The class did well overall."))
	})

	target := repos.SubjectRepository.FindByCode("IT 101", "")
	require.NotNil(t, target)

	result, err := svc.AnalyzeSubject(ctx, target.ID)
	require.NoError(t, err)

	assert.Equal(t, target.ID, result.SubjectID)
	assert.Equal(t, "IT 101", result.SubjectCode)
	assert.Equal(t, "The class did well overall.", result.Summary)

	assert.Equal(t, "test-model", received.Model)
	require.Len(t, received.Messages, 1)
	assert.Equal(t, "user", received.Messages[0].Role)
	// The prompt carries the per-subject aggregate, not the global one.
	assert.Contains(t, received.Messages[0].Content, "IT 101")
	assert.Contains(t, received.Messages[0].Content, "Recorded grades: 2")
	assert.NotContains(t, received.Messages[0].Content, "CS 201")
}

func TestAnalysisService_AnalyzeSubject_UnknownSubject(t *testing.T) {
	repos := newTestRepos(t)
	svc := newAnalysisService(t, repos, func(w http.ResponseWriter, r *http.Request) {
		t.Error("collaborator must not be called for an unknown subject")
	})

	_, err := svc.AnalyzeSubject(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
}

func TestAnalysisService_AnalyzeSubject_FallbackPaths(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json at all"))
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices":[]}`))
			},
		},
		{
			name: "blank summary",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write(chatCompletion("   "))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repos := newTestRepos(t)
			svc := newAnalysisService(t, repos, tc.handler)

			target := repos.SubjectRepository.FindByCode("IT 101", "")
			require.NotNil(t, target)

			result, err := svc.AnalyzeSubject(context.Background(), target.ID)
			require.NoError(t, err, "collaborator failures never surface as errors")
			assert.Equal(t, AnalysisFallback, result.Summary)
		})
	}
}

func TestAnalysisService_AnalyzeSubject_Unconfigured(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAnalysisService(repos.SubjectRepository, repos.GradeRepository, AnalysisConfig{}, nil)

	target := repos.SubjectRepository.FindByCode("CS 201", "")
	require.NotNil(t, target)

	result, err := svc.AnalyzeSubject(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, AnalysisFallback, result.Summary)
}

func TestAnalysisService_AnalyzeSubject_UnreachableEndpoint(t *testing.T) {
	repos := newTestRepos(t)
	cfg := AnalysisConfig{Endpoint: "http://127.0.0.1:1/v1/chat/completions", APIKey: "test-key", Model: "test-model"}
	svc := NewAnalysisService(repos.SubjectRepository, repos.GradeRepository, cfg, &http.Client{})

	target := repos.SubjectRepository.FindByCode("CS 201", "")
	require.NotNil(t, target)

	result, err := svc.AnalyzeSubject(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, AnalysisFallback, result.Summary)
}
