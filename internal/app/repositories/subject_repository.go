package repositories

import (
	"github.com/oguzdem/gradekeeper/internal/app/models"
	"github.com/oguzdem/gradekeeper/internal/pkg/storage"
)

// SubjectKey is the store key for the subject collection.
const SubjectKey = "subjectRecords"

// SubjectRepository owns the subjectRecords collection.
type SubjectRepository struct {
	*collection[*models.Subject]
}

// NewSubjectRepository loads the subject collection, seeding defaults when
// nothing usable is persisted.
func NewSubjectRepository(store storage.Store, defaults []*models.Subject) *SubjectRepository {
	return &SubjectRepository{
		collection: newCollection(store, SubjectKey, defaults),
	}
}

// AddUnique appends the subject unless another record already carries its
// code. The uniqueness check and the append share one write lock.
func (r *SubjectRepository) AddUnique(subject *models.Subject) (*models.Subject, bool) {
	return r.AddUnless(subject, func(existing *models.Subject) bool {
		return existing.Code == subject.Code
	})
}

// UpdateUnique replaces the record under id unless another record carries
// the replacement's code. Returns (updated, conflicted).
func (r *SubjectRepository) UpdateUnique(id string, subject *models.Subject) (bool, bool) {
	return r.UpdateUnless(id, subject, func(existing *models.Subject) bool {
		return existing.Code == subject.Code
	})
}

// FindByCode returns the first subject carrying the given business code,
// ignoring the record with excludeID. Nil when no subject matches.
func (r *SubjectRepository) FindByCode(code, excludeID string) *models.Subject {
	for _, s := range r.List() {
		if s.Code == code && s.ID != excludeID {
			return s
		}
	}
	return nil
}
