package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
)

func fixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWordsCommand(t *testing.T) {
	var out bytes.Buffer
	g := &Globals{ctx: context.Background(), out: &out}
	cmd := wordsCmd{File: fixture(t, "a.txt", "b a c a\n")}
	if err := cmd.Run(g); err != nil {
		t.Fatal(err)
	}
	if out.String() != "a b c \n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestUnionCommand(t *testing.T) {
	var out bytes.Buffer
	g := &Globals{ctx: context.Background(), out: &out}
	cmd := unionCmd{Files: []string{
		fixture(t, "a.txt", "one three\n"),
		fixture(t, "b.html", "<p>two <b>three</b></p>"),
	}}
	if err := cmd.Run(g); err != nil {
		t.Fatal(err)
	}
	if out.String() != "one three two \n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestContainsCommand(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	g := &Globals{ctx: context.Background(), out: &out}
	cmd := containsCmd{File: fixture(t, "a.txt", "red green\n"), Words: []string{"green", "blue"}}
	if err := cmd.Run(g); err != nil {
		t.Fatal(err)
	}
	if out.String() != "+ green\n- blue\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestSetupTracingSelectsAdapter(t *testing.T) {
	setupTracing(tracing.LevelDebug)
	if name := fmt.Sprintf("%T", tracing.Select("flatset")); strings.Contains(name, "noOp") {
		t.Fatalf("expected go-log tracer after setup, is %s", name)
	}
}
