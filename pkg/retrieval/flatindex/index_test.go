package flatindex

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"wealth-advisor-be/internal/entity"
)

var testDocs = []entity.KnowledgeDocument{
	{Title: "Assurance vie", Content: "Fiscalité avantageuse après 8 ans.", URL: "https://x.fr/av"},
	{Title: "PER", Content: "Déduction des versements du revenu imposable.", URL: "https://x.fr/per"},
	{Title: "SCPI", Content: "Immobilier locatif sans gestion directe.", URL: "https://x.fr/scpi"},
}

var testVectors = [][]float32{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

func TestSearchOrdersByCosineSimilarity(t *testing.T) {
	idx, err := New(testDocs, testVectors)
	if err != nil {
		t.Fatal(err)
	}

	docs, err := idx.Search(context.Background(), []float32{0.1, 0.9, 0.2}, 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(docs) != 3 {
		t.Fatalf("want 3 docs, got %d", len(docs))
	}
	if docs[0].Title != "PER" {
		t.Errorf("closest doc = %q, want PER", docs[0].Title)
	}
}

func TestSearchCapsKAtIndexSize(t *testing.T) {
	idx, err := New(testDocs, testVectors)
	if err != nil {
		t.Fatal(err)
	}

	docs, err := idx.Search(context.Background(), []float32{1, 0, 0}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Errorf("want all 3 docs, got %d", len(docs))
	}
}

func TestSearchEmptyIndex(t *testing.T) {
	idx, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	docs, err := idx.Search(context.Background(), []float32{1}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if docs != nil {
		t.Errorf("empty index returned docs: %v", docs)
	}
}

func TestNewRejectsLengthMismatch(t *testing.T) {
	if _, err := New(testDocs, testVectors[:2]); err == nil {
		t.Error("mismatched lengths accepted")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "metadata.json")
	vecPath := filepath.Join(dir, "vectors.json")

	writeJSON(t, metaPath, testDocs)
	writeJSON(t, vecPath, testVectors)

	idx, err := Load(metaPath, vecPath)
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 3 {
		t.Errorf("loaded %d documents, want 3", idx.Len())
	}
}

func TestLoadRejectsMismatchedFiles(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "metadata.json")
	vecPath := filepath.Join(dir, "vectors.json")

	writeJSON(t, metaPath, testDocs)
	writeJSON(t, vecPath, testVectors[:1])

	if _, err := Load(metaPath, vecPath); err == nil {
		t.Error("parallel-length violation accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.json", "neither.json"); err == nil {
		t.Error("missing metadata file accepted")
	}
}

func writeJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}
}
