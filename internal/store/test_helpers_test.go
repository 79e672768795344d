package store

import (
	"path/filepath"
	"testing"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestAnswer(day, part int, answer string) Answer {
	return Answer{
		Day:         day,
		Part:        part,
		InputDigest: Digest([]string{"input", answer}),
		Answer:      answer,
	}
}
