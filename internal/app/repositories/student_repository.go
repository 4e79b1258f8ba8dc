package repositories

import (
	"github.com/oguzdem/gradekeeper/internal/app/models"
	"github.com/oguzdem/gradekeeper/internal/pkg/storage"
)

// StudentKey is the store key for the student collection.
const StudentKey = "studentRecords"

// StudentRepository owns the studentRecords collection.
type StudentRepository struct {
	*collection[*models.Student]
}

// NewStudentRepository loads the student collection, seeding defaults when
// nothing usable is persisted.
func NewStudentRepository(store storage.Store, defaults []*models.Student) *StudentRepository {
	return &StudentRepository{
		collection: newCollection(store, StudentKey, defaults),
	}
}

// AddUnique appends the student unless another record already carries its
// studentId. The uniqueness check and the append share one write lock.
func (r *StudentRepository) AddUnique(student *models.Student) (*models.Student, bool) {
	return r.AddUnless(student, func(existing *models.Student) bool {
		return existing.StudentID == student.StudentID
	})
}

// UpdateUnique replaces the record under id unless another record carries
// the replacement's studentId. Returns (updated, conflicted).
func (r *StudentRepository) UpdateUnique(id string, student *models.Student) (bool, bool) {
	return r.UpdateUnless(id, student, func(existing *models.Student) bool {
		return existing.StudentID == student.StudentID
	})
}

// FindByStudentID returns the first student carrying the given business
// code, ignoring the record with excludeID (so updates can match against
// every other record). Nil when no student matches.
func (r *StudentRepository) FindByStudentID(studentID, excludeID string) *models.Student {
	for _, s := range r.List() {
		if s.StudentID == studentID && s.ID != excludeID {
			return s
		}
	}
	return nil
}
