package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/oguzdem/gradekeeper/internal/app/models/dto"
	"github.com/oguzdem/gradekeeper/internal/app/repositories"
	"github.com/oguzdem/gradekeeper/internal/pkg/apperrors"
	"github.com/oguzdem/gradekeeper/internal/pkg/logger"
	"github.com/oguzdem/gradekeeper/internal/pkg/stats"
)

// AnalysisFallback is the literal summary returned whenever the external
// call fails for any reason. The core never raises on collaborator failure.
const AnalysisFallback = "Analysis failed. Please check the API key and console for errors."

// AnalysisConfig configures the external analysis collaborator.
type AnalysisConfig struct {
	Endpoint string
	APIKey   string
	Model    string
}

// AnalysisService asks an external chat-completions style collaborator for
// a natural-language performance summary of one subject. The collaborator
// is best effort: nothing in the core depends on its availability or
// correctness.
type AnalysisService struct {
	subjectRepo *repositories.SubjectRepository
	gradeRepo   *repositories.GradeRepository
	cfg         AnalysisConfig
	client      *http.Client
}

// NewAnalysisService creates a new analysis service instance. client may be
// nil, in which case http.DefaultClient is used.
func NewAnalysisService(subjectRepo *repositories.SubjectRepository, gradeRepo *repositories.GradeRepository, cfg AnalysisConfig, client *http.Client) *AnalysisService {
	if client == nil {
		client = http.DefaultClient
	}
	return &AnalysisService{
		subjectRepo: subjectRepo,
		gradeRepo:   gradeRepo,
		cfg:         cfg,
		client:      client,
	}
}

// AnalyzeSubject gathers the subject's grade statistics and asks the
// collaborator for a summary. An unknown subject id is the only error this
// method returns; collaborator failures yield the fixed fallback summary.
func (s *AnalysisService) AnalyzeSubject(ctx context.Context, subjectID string) (*dto.AnalysisResponse, error) {
	subject, ok := s.subjectRepo.GetByID(subjectID)
	if !ok {
		return nil, apperrors.ErrSubjectNotFound
	}

	grades := s.gradeRepo.ListBySubjectCode(subject.Code)
	scores := make([]float64, 0, len(grades))
	letters := make([]string, 0, len(grades))
	for _, g := range grades {
		scores = append(scores, g.Score)
		letters = append(letters, stats.LetterGrade(g.Score))
	}
	aggregate := stats.Aggregate(scores)
	letterDist := stats.NewDistribution(letters)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize the class performance for subject %s (%s, %d credits) in two or three sentences.\n",
		subject.Code, subject.Name, subject.Credits)
	fmt.Fprintf(&sb, "Recorded grades: %d. Average score: %.1f. Lowest: %.1f. Highest: %.1f.\n",
		aggregate.Count, aggregate.Mean, aggregate.Min, aggregate.Max)
	for _, letter := range letterDist.Categories() {
		fmt.Fprintf(&sb, "%s: %d students. ", letter, letterDist.Count(letter))
	}

	return &dto.AnalysisResponse{
		SubjectID:   subject.ID,
		SubjectCode: subject.Code,
		Summary:     s.requestSummary(ctx, sb.String()),
	}, nil
}

// chatRequest and chatResponse mirror the collaborator's wire format.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// requestSummary performs the external call. Every failure path logs and
// returns the fixed fallback string.
func (s *AnalysisService) requestSummary(ctx context.Context, prompt string) string {
	if s.cfg.Endpoint == "" || s.cfg.APIKey == "" {
		logger.Warn().Msg("Analysis endpoint or API key not configured")
		return AnalysisFallback
	}

	body, err := json.Marshal(chatRequest{
		Model:    s.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to serialize analysis request")
		return AnalysisFallback
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build analysis request")
		return AnalysisFallback
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("Analysis request failed")
		return AnalysisFallback
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error().Int("status", resp.StatusCode).Msg("Analysis request returned non-success status")
		return AnalysisFallback
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Error().Err(err).Msg("Failed to parse analysis response")
		return AnalysisFallback
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		logger.Error().Msg("Analysis response carried no summary")
		return AnalysisFallback
	}

	return parsed.Choices[0].Message.Content
}
