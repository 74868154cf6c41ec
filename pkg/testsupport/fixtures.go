// Package testsupport carries fixture and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldtree/pkg/fieldtree"
	"github.com/goliatone/go-fieldtree/pkg/formdoc"
)

// LoadDocument reads a fixture into a formdoc.Document. Testing helpers
// fail the test on error to keep contract tests concise.
func LoadDocument(t *testing.T, path string) formdoc.Document {
	t.Helper()

	doc, err := formdoc.Load(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// ParseForm loads and parses a fixture into a form in one step.
func ParseForm(t *testing.T, path string, options formdoc.Options) *fieldtree.Form {
	t.Helper()

	doc := LoadDocument(t, path)
	form, err := formdoc.NewParser(options).Parse(Context(), doc)
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return form
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
