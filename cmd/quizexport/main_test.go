package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	apppkg "github.com/hyperifyio/quizexport/internal/app"
)

// Smoke test: run writes the report file for a saved page.
func TestRun_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "work.html")
	out := filepath.Join(dir, "quiz.txt")
	page := `<div class="questionLi"><h3 class="mark_name">1. 题</h3><ul class="mark_letter"><li>A. 是</li></ul><span class="rightAnswerContent">A</span></div>`
	if err := os.WriteFile(in, []byte(page), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	if err := run(context.Background(), apppkg.Config{InputPath: in, OutputPath: out}); err != nil {
		t.Fatalf("run error: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(b) != "1. 题\nA. 是\n答案：A\n" {
		t.Fatalf("unexpected report %q", b)
	}
}

// An empty page surfaces ErrNoQuestions and maps to exit code 2.
func TestRun_NoQuestions_ExitCode(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.html")
	if err := os.WriteFile(in, []byte("<html><body></body></html>"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	err := run(context.Background(), apppkg.Config{InputPath: in, OutputPath: filepath.Join(dir, "out.txt")})
	if !errors.Is(err, apppkg.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
	if code := exitCode(err); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
}

func TestExitCode(t *testing.T) {
	if exitCode(nil) != 0 {
		t.Fatalf("nil error must exit 0")
	}
	if exitCode(fmt.Errorf("wrapped: %w", apppkg.ErrNoQuestions)) != 2 {
		t.Fatalf("wrapped ErrNoQuestions must exit 2")
	}
	if exitCode(errors.New("read input: missing")) != 1 {
		t.Fatalf("other errors must exit 1")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" .env, ,.env.local ,")
	if !reflect.DeepEqual(got, []string{".env", ".env.local"}) {
		t.Fatalf("splitList=%v", got)
	}
}
