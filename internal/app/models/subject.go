package models

// Subject defines a subject record in the subjectRecords collection.
type Subject struct {
	ID      string `json:"id" example:"9ca4322d-ebd5-4ffa-a340-56fe811bbab1"` // System-generated identifier
	Code    string `json:"code" example:"IT 101"`                            // Business key
	Name    string `json:"name" example:"Introduction to Information Technology"`
	Credits int    `json:"credits" example:"3"` // 1-6 inclusive
}

func (s *Subject) RecordID() string      { return s.ID }
func (s *Subject) SetRecordID(id string) { s.ID = id }
