package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLintOneReportsDiagnosticsAndCounts(t *testing.T) {
	source := "var BadName = 1\n"

	var buf bytes.Buffer
	errorCount, warningCount := lintOne(&buf, "test.gd", source, "rustc")

	if errorCount != 0 {
		t.Errorf("errorCount = %d, want 0", errorCount)
	}
	if warningCount == 0 {
		t.Errorf("warningCount = 0, want at least 1 (identifier-case and untyped-code should both fire)")
	}
	if !strings.Contains(buf.String(), "test.gd") {
		t.Errorf("output does not mention the source name:\n%s", buf.String())
	}
}

func TestLintOneCodespanFormat(t *testing.T) {
	source := "var x = 1\n"
	var buf bytes.Buffer
	_, warningCount := lintOne(&buf, "test.gd", source, "codespan")
	if warningCount == 0 {
		t.Errorf("expected untyped-code warning for an untyped var")
	}
	if !strings.Contains(buf.String(), "untyped-code") {
		t.Errorf("output does not mention the untyped-code code:\n%s", buf.String())
	}
}

func TestReadSourceFromFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sample.gd"
	if err := os.WriteFile(path, []byte("var x = 1\n"), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}
	got, err := readSource(path)
	if err != nil {
		t.Fatalf("readSource() error = %v", err)
	}
	if got != "var x = 1\n" {
		t.Errorf("readSource() = %q", got)
	}
}
