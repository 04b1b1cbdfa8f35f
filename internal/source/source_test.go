package source

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings")
	content := "bindkey \"^L\" clear-screen\n  bindkey \"^Xu\" undo  \n\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{`bindkey "^L" clear-screen`, `bindkey "^Xu" undo`, ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadFileStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings")
	if err := os.WriteFile(path, []byte("bindkey \"^L\" clear-screen\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	old := os.Stdin
	os.Stdin = f
	defer func() { os.Stdin = old }()

	got, err := ReadFile("-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{`bindkey "^L" clear-screen`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLinesReadsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings")
	if err := os.WriteFile(path, []byte("bindkey \"^A\" beginning-of-line\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Lines(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != `bindkey "^A" beginning-of-line` {
		t.Errorf("unexpected lines: %q", got)
	}
}
