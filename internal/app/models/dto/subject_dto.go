package dto

import "github.com/oguzdem/gradekeeper/internal/app/models"

// SubjectRequest carries a subject draft for create and update operations.
type SubjectRequest struct {
	Code    string `json:"code" example:"PHYS 101"`
	Name    string `json:"name" example:"Physics I"`
	Credits int    `json:"credits" example:"4"`
}

// ToModel converts the request into a candidate record for validation.
func (r *SubjectRequest) ToModel() *models.Subject {
	return &models.Subject{
		Code:    r.Code,
		Name:    r.Name,
		Credits: r.Credits,
	}
}
