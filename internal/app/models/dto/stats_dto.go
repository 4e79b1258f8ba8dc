package dto

// AggregateData mirrors the derived aggregate of a numeric field. An empty
// collection yields the zero values, not an error.
type AggregateData struct {
	Count int     `json:"count" example:"12"`
	Mean  float64 `json:"mean" example:"81.3"`
	Min   float64 `json:"min" example:"55"`
	Max   float64 `json:"max" example:"98.5"`
}

// CategoryCount is one entry of a categorical distribution. Entries are
// emitted in first-occurrence order.
type CategoryCount struct {
	Category string `json:"category" example:"active"`
	Count    int    `json:"count" example:"7"`
}

// OverviewResponse aggregates the derived statistics over the live
// collections. Everything here is recomputed on request.
type OverviewResponse struct {
	StudentCount int `json:"studentCount" example:"3"`
	SubjectCount int `json:"subjectCount" example:"5"`
	GradeCount   int `json:"gradeCount" example:"12"`

	Scores             AggregateData   `json:"scores"`
	LetterDistribution []CategoryCount `json:"letterDistribution"`
	StatusDistribution []CategoryCount `json:"statusDistribution"`
	MajorDistribution  []CategoryCount `json:"majorDistribution"`
	TopMajor           string          `json:"topMajor" example:"Computer Science"`
}

// AnalysisResponse carries the external collaborator's natural-language
// summary for one subject.
type AnalysisResponse struct {
	SubjectID   string `json:"subjectId" example:"9ca4322d-ebd5-4ffa-a340-56fe811bbab1"`
	SubjectCode string `json:"subjectCode" example:"IT 101"`
	Summary     string `json:"summary" example:"Students are performing well overall..."`
}
