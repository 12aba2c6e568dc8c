// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

// DocumentSeeder stores documents, as test/mock.Store does.
type DocumentSeeder interface {
	Seed(collection, key string, doc any) error
}

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadDocuments loads a testdata file holding a JSON object of documents keyed by ID.
func LoadDocuments(t *testing.T, filename string) map[string]json.RawMessage {
	t.Helper()

	var docs map[string]json.RawMessage
	if err := json.Unmarshal(LoadTestJSON(t, filename), &docs); err != nil {
		t.Fatalf("Failed to decode test file %s: %v", filename, err)
	}
	return docs
}

// SeedCollection loads filename and stores every document in collection.
// It returns the document IDs in sorted order.
func SeedCollection(t *testing.T, store DocumentSeeder, collection, filename string) []string {
	t.Helper()

	docs := LoadDocuments(t, filename)
	ids := make([]string, 0, len(docs))
	for id, doc := range docs {
		if err := store.Seed(collection, id, doc); err != nil {
			t.Fatalf("Failed to seed %s/%s: %v", collection, id, err)
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
