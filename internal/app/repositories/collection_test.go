package repositories

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzdem/gradekeeper/internal/app/models"
	"github.com/oguzdem/gradekeeper/internal/pkg/storage"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	data      map[string][]byte
	failSaves bool
	saves     int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Load(key string, v any) error {
	b, ok := m.data[key]
	if !ok {
		return storage.ErrKeyNotFound
	}
	return json.Unmarshal(b, v)
}

func (m *memStore) Save(key string, v any) error {
	if m.failSaves {
		return errors.New("storage quota exceeded")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = b
	m.saves++
	return nil
}

func subjectFixtures() []*models.Subject {
	return []*models.Subject{
		{ID: "id-1", Code: "IT 101", Name: "Intro to IT", Credits: 3},
		{ID: "id-2", Code: "CS 201", Name: "Data Structures", Credits: 4},
		{ID: "id-3", Code: "MATH 150", Name: "Discrete Mathematics", Credits: 3},
	}
}

func TestCollection_AddAssignsFreshUniqueID(t *testing.T) {
	repo := NewSubjectRepository(newMemStore(), subjectFixtures())

	stored := repo.Add(&models.Subject{Code: "PHYS 101", Name: "Physics I", Credits: 4})

	require.NotEmpty(t, stored.ID)
	assert.Equal(t, 4, repo.Count())

	seen := make(map[string]bool)
	for _, s := range repo.List() {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
	}

	// New records append; storage order keeps insertion order.
	list := repo.List()
	assert.Equal(t, "PHYS 101", list[len(list)-1].Code)
}

func TestCollection_UpdateUnknownIDIsNoOp(t *testing.T) {
	store := newMemStore()
	repo := NewSubjectRepository(store, subjectFixtures())
	before := repo.List()

	found := repo.Update("no-such-id", &models.Subject{Code: "X", Name: "Y", Credits: 1})

	assert.False(t, found)
	assert.Equal(t, before, repo.List())
	assert.Zero(t, store.saves, "a no-op must not persist")
}

func TestCollection_RemoveUnknownIDIsNoOp(t *testing.T) {
	repo := NewSubjectRepository(newMemStore(), subjectFixtures())

	found := repo.Remove("no-such-id")

	assert.False(t, found)
	assert.Equal(t, 3, repo.Count())
}

func TestCollection_UpdatePreservesPosition(t *testing.T) {
	repo := NewSubjectRepository(newMemStore(), subjectFixtures())

	found := repo.Update("id-2", &models.Subject{Code: "CS 201", Name: "Algorithms", Credits: 5})
	require.True(t, found)

	list := repo.List()
	require.Len(t, list, 3)
	assert.Equal(t, "id-2", list[1].ID)
	assert.Equal(t, "Algorithms", list[1].Name)
	assert.Equal(t, "id-1", list[0].ID)
	assert.Equal(t, "id-3", list[2].ID)
}

func TestCollection_RemoveKeepsOrder(t *testing.T) {
	repo := NewSubjectRepository(newMemStore(), subjectFixtures())

	require.True(t, repo.Remove("id-2"))

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "id-1", list[0].ID)
	assert.Equal(t, "id-3", list[1].ID)
}

func TestCollection_LoadsPersistedStateOverDefaults(t *testing.T) {
	store := newMemStore()
	persisted := []*models.Subject{{ID: "p-1", Code: "ENG 110", Name: "Academic Writing", Credits: 2}}
	require.NoError(t, store.Save(SubjectKey, persisted))
	store.saves = 0

	repo := NewSubjectRepository(store, subjectFixtures())

	require.Equal(t, 1, repo.Count())
	assert.Equal(t, "p-1", repo.List()[0].ID)
}

func TestCollection_CorruptStateFallsBackToDefaults(t *testing.T) {
	store := newMemStore()
	store.data[SubjectKey] = []byte("{definitely not json")

	repo := NewSubjectRepository(store, subjectFixtures())

	assert.Equal(t, 3, repo.Count())
}

func TestCollection_PersistFailureIsSwallowed(t *testing.T) {
	store := newMemStore()
	store.failSaves = true
	repo := NewSubjectRepository(store, subjectFixtures())

	stored := repo.Add(&models.Subject{Code: "PHYS 101", Name: "Physics I", Credits: 4})

	// The in-memory state stays authoritative even though the write failed.
	require.NotEmpty(t, stored.ID)
	assert.Equal(t, 4, repo.Count())
}

func TestCollection_MutationsPersistWholeCollection(t *testing.T) {
	store := newMemStore()
	repo := NewSubjectRepository(store, subjectFixtures())

	repo.Add(&models.Subject{Code: "PHYS 101", Name: "Physics I", Credits: 4})

	var persisted []*models.Subject
	require.NoError(t, store.Load(SubjectKey, &persisted))
	assert.Len(t, persisted, 4)
}

func TestCollection_ListReturnsCopy(t *testing.T) {
	repo := NewSubjectRepository(newMemStore(), subjectFixtures())

	list := repo.List()
	list[0] = &models.Subject{ID: "hacked"}

	assert.Equal(t, "id-1", repo.List()[0].ID)
}

func TestCollection_AddUniqueRejectsDuplicateBusinessKey(t *testing.T) {
	store := newMemStore()
	repo := NewSubjectRepository(store, subjectFixtures())
	store.saves = 0

	stored, ok := repo.AddUnique(&models.Subject{Code: "IT 101", Name: "Another Intro", Credits: 3})

	assert.False(t, ok)
	assert.Nil(t, stored)
	assert.Equal(t, 3, repo.Count())
	assert.Zero(t, store.saves, "a rejected add must not persist")

	stored, ok = repo.AddUnique(&models.Subject{Code: "PHYS 101", Name: "Physics I", Credits: 4})
	require.True(t, ok)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, 4, repo.Count())
}

func TestCollection_AddUniqueSerializesConcurrentDuplicates(t *testing.T) {
	repo := NewSubjectRepository(newMemStore(), nil)

	const workers = 32
	start := make(chan struct{})
	wins := make(chan bool, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, ok := repo.AddUnique(&models.Subject{Code: "PHYS 101", Name: "Physics I", Credits: 4})
			wins <- ok
		}()
	}
	close(start)
	wg.Wait()
	close(wins)

	var created int
	for ok := range wins {
		if ok {
			created++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, repo.Count())
}

func TestCollection_UpdateUniqueOutcomes(t *testing.T) {
	repo := NewSubjectRepository(newMemStore(), subjectFixtures())

	// Taking another record's business key is a conflict.
	updated, conflicted := repo.UpdateUnique("id-1", &models.Subject{Code: "CS 201", Name: "Clone", Credits: 3})
	assert.False(t, updated)
	assert.True(t, conflicted)

	// A record may keep its own key.
	updated, conflicted = repo.UpdateUnique("id-1", &models.Subject{Code: "IT 101", Name: "Renamed", Credits: 3})
	assert.True(t, updated)
	assert.False(t, conflicted)

	// Unknown id with a free key is plain not-found.
	updated, conflicted = repo.UpdateUnique("no-such-id", &models.Subject{Code: "PHYS 101", Name: "Physics I", Credits: 4})
	assert.False(t, updated)
	assert.False(t, conflicted)
}

func TestStudentRepository_FindByStudentID(t *testing.T) {
	repo := NewStudentRepository(newMemStore(), []*models.Student{
		{ID: "a", StudentID: "STU-1"},
		{ID: "b", StudentID: "STU-2"},
	})

	assert.Equal(t, "a", repo.FindByStudentID("STU-1", "").ID)
	assert.Nil(t, repo.FindByStudentID("STU-1", "a"), "excluded record must not match")
	assert.Nil(t, repo.FindByStudentID("STU-9", ""))
}

func TestSubjectRepository_FindByCode(t *testing.T) {
	repo := NewSubjectRepository(newMemStore(), subjectFixtures())

	assert.Equal(t, "id-1", repo.FindByCode("IT 101", "").ID)
	assert.Nil(t, repo.FindByCode("IT 101", "id-1"))
}

func TestGradeRepository_ListBySubjectCode(t *testing.T) {
	repo := NewGradeRepository(newMemStore())
	repo.Add(&models.Grade{StudentName: "A", SubjectCode: "IT 101", Score: 80})
	repo.Add(&models.Grade{StudentName: "B", SubjectCode: "CS 201", Score: 90})
	repo.Add(&models.Grade{StudentName: "C", SubjectCode: "IT 101", Score: 70})

	matched := repo.ListBySubjectCode("IT 101")
	require.Len(t, matched, 2)
	assert.Equal(t, "A", matched[0].StudentName)
	assert.Equal(t, "C", matched[1].StudentName)
}

func TestGradeRepository_StartsEmpty(t *testing.T) {
	repo := NewGradeRepository(newMemStore())
	assert.Zero(t, repo.Count())
}
