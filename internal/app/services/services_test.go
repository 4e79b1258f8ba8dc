package services

import (
	"encoding/json"
	"testing"

	"github.com/oguzdem/gradekeeper/internal/app/repositories"
	"github.com/oguzdem/gradekeeper/internal/pkg/storage"
	"github.com/oguzdem/gradekeeper/internal/seed"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	data map[string][]byte
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
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

// newTestRepos builds repositories seeded with the documented defaults over
// a fresh in-memory store.
func newTestRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	return repositories.NewRepositories(newMemStore(), seed.DefaultStudents(), seed.DefaultSubjects())
}

func TestMatchesTerm(t *testing.T) {
	if !matchesTerm("", "anything") {
		t.Fatal("empty term must match everything")
	}
	if !matchesTerm("eng", "ENG 110", "Academic Writing") {
		t.Fatal("match must be case-insensitive")
	}
	if matchesTerm("physics", "ENG 110", "Academic Writing") {
		t.Fatal("unrelated term must not match")
	}
}
