package services

import (
	"context"

	"github.com/oguzdem/gradekeeper/internal/app/models/dto"
	"github.com/oguzdem/gradekeeper/internal/app/repositories"
	"github.com/oguzdem/gradekeeper/internal/pkg/stats"
)

// StatsService derives summary statistics from the live collections. It
// holds no state of its own; every call recomputes from scratch.
type StatsService struct {
	studentRepo *repositories.StudentRepository
	subjectRepo *repositories.SubjectRepository
	gradeRepo   *repositories.GradeRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService(studentRepo *repositories.StudentRepository, subjectRepo *repositories.SubjectRepository, gradeRepo *repositories.GradeRepository) *StatsService {
	return &StatsService{
		studentRepo: studentRepo,
		subjectRepo: subjectRepo,
		gradeRepo:   gradeRepo,
	}
}

// Overview computes the dashboard statistics: entity counts, the score
// aggregate, the letter/status/major distributions and the most popular
// major.
func (s *StatsService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	grades := s.gradeRepo.List()
	students := s.studentRepo.List()

	scores := make([]float64, 0, len(grades))
	letters := make([]string, 0, len(grades))
	for _, g := range grades {
		scores = append(scores, g.Score)
		letters = append(letters, stats.LetterGrade(g.Score))
	}

	statuses := make([]string, 0, len(students))
	majors := make([]string, 0, len(students))
	for _, st := range students {
		statuses = append(statuses, string(st.Status))
		majors = append(majors, st.Major)
	}

	aggregate := stats.Aggregate(scores)
	majorDist := stats.NewDistribution(majors)

	return &dto.OverviewResponse{
		StudentCount: len(students),
		SubjectCount: s.subjectRepo.Count(),
		GradeCount:   len(grades),
		Scores: dto.AggregateData{
			Count: aggregate.Count,
			Mean:  aggregate.Mean,
			Min:   aggregate.Min,
			Max:   aggregate.Max,
		},
		LetterDistribution: toCategoryCounts(stats.NewDistribution(letters)),
		StatusDistribution: toCategoryCounts(stats.NewDistribution(statuses)),
		MajorDistribution:  toCategoryCounts(majorDist),
		TopMajor:           majorDist.MostFrequent(),
	}, nil
}

// toCategoryCounts flattens a distribution into DTO entries, preserving
// first-occurrence order.
func toCategoryCounts(d *stats.Distribution) []dto.CategoryCount {
	out := make([]dto.CategoryCount, 0, d.Len())
	for _, category := range d.Categories() {
		out = append(out, dto.CategoryCount{Category: category, Count: d.Count(category)})
	}
	return out
}
