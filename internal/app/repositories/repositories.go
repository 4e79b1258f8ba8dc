package repositories

import (
	"github.com/oguzdem/gradekeeper/internal/app/models"
	"github.com/oguzdem/gradekeeper/internal/pkg/storage"
)

// Repositories holds all the repository instances, one per entity kind.
type Repositories struct {
	StudentRepository *StudentRepository
	SubjectRepository *SubjectRepository
	GradeRepository   *GradeRepository
}

// NewRepositories initializes all repositories against the given store.
// defaultStudents and defaultSubjects are the documented fallback
// collections used when nothing usable is persisted under a key.
func NewRepositories(store storage.Store, defaultStudents []*models.Student, defaultSubjects []*models.Subject) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(store, defaultStudents),
		SubjectRepository: NewSubjectRepository(store, defaultSubjects),
		GradeRepository:   NewGradeRepository(store),
	}
}
