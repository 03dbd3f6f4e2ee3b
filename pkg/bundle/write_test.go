package bundle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestWriteBundle(t *testing.T) {
	logger := zap.NewNop()

	t.Run("writes the author comment first", func(t *testing.T) {
		root := t.TempDir()
		file := filepath.Join(root, "a.py")
		writeFile(t, file, "print(1)\n")
		output := filepath.Join(t.TempDir(), "out.txt")

		args := &Arguments{Output: output, Root: root, Author: "  Jane  "}
		if err := WriteBundle(args, []string{file}, logger, nil); err != nil {
			t.Fatalf("WriteBundle() error: %v", err)
		}

		got := readFile(t, output)
		if !strings.HasPrefix(got, "// Author: Jane\n") {
			t.Errorf("output does not start with trimmed author line:\n%s", got)
		}
	})

	t.Run("note lines carry root-relative paths", func(t *testing.T) {
		root := t.TempDir()
		file := filepath.Join(root, "sub", "a.py")
		writeFile(t, file, "print(1)\n")
		output := filepath.Join(t.TempDir(), "out.txt")

		args := &Arguments{Output: output, Root: root, Note: true}
		if err := WriteBundle(args, []string{file}, logger, nil); err != nil {
			t.Fatalf("WriteBundle() error: %v", err)
		}

		if got := readFile(t, output); !strings.Contains(got, "// File: sub/a.py\n") {
			t.Errorf("missing note line for sub/a.py:\n%s", got)
		}
	})

	t.Run("removes only zero-length lines", func(t *testing.T) {
		root := t.TempDir()
		file := filepath.Join(root, "a.py")
		writeFile(t, file, "print(1)\n\n   \nprint(2)\n")
		output := filepath.Join(t.TempDir(), "out.txt")

		args := &Arguments{Output: output, Root: root, RemoveEmptyLines: true}
		if err := WriteBundle(args, []string{file}, logger, nil); err != nil {
			t.Fatalf("WriteBundle() error: %v", err)
		}

		got := readFile(t, output)
		want := "print(1)\n   \nprint(2)\n"
		if got != want {
			t.Errorf("output = %q, want %q (whitespace-only lines must survive)", got, want)
		}
	})

	t.Run("truncates any existing output", func(t *testing.T) {
		root := t.TempDir()
		file := filepath.Join(root, "a.py")
		writeFile(t, file, "short\n")
		output := filepath.Join(t.TempDir(), "out.txt")
		writeFile(t, output, strings.Repeat("stale content\n", 100))

		args := &Arguments{Output: output, Root: root}
		if err := WriteBundle(args, []string{file}, logger, nil); err != nil {
			t.Fatalf("WriteBundle() error: %v", err)
		}

		if got := readFile(t, output); strings.Contains(got, "stale") {
			t.Errorf("previous bundle content survived:\n%s", got)
		}
	})

	t.Run("aborts the whole bundle on a read failure", func(t *testing.T) {
		root := t.TempDir()
		good := filepath.Join(root, "a.py")
		writeFile(t, good, "print(1)\n")
		missing := filepath.Join(root, "gone.py")
		output := filepath.Join(t.TempDir(), "out.txt")

		args := &Arguments{Output: output, Root: root}
		if err := WriteBundle(args, []string{good, missing}, logger, nil); err == nil {
			t.Error("WriteBundle() = nil, want read error")
		}
	})

	t.Run("maps a missing output directory to directory not found", func(t *testing.T) {
		root := t.TempDir()
		file := filepath.Join(root, "a.py")
		writeFile(t, file, "print(1)\n")
		output := filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")

		args := &Arguments{Output: output, Root: root}
		err := WriteBundle(args, []string{file}, logger, nil)
		if !errors.Is(err, ErrDirNotFound) {
			t.Errorf("WriteBundle() error = %v, want ErrDirNotFound", err)
		}
		if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
			t.Error("output file was created despite the failure")
		}
	})

	t.Run("reports progress once per file", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.py"), "1\n")
		writeFile(t, filepath.Join(root, "b.py"), "2\n")
		output := filepath.Join(t.TempDir(), "out.txt")

		var reported []string
		args := &Arguments{Output: output, Root: root}
		files := []string{filepath.Join(root, "a.py"), filepath.Join(root, "b.py")}
		err := WriteBundle(args, files, logger, func(relPath string) {
			reported = append(reported, relPath)
		})
		if err != nil {
			t.Fatalf("WriteBundle() error: %v", err)
		}
		if len(reported) != 2 || reported[0] != "a.py" || reported[1] != "b.py" {
			t.Errorf("progress reports = %v, want [a.py b.py]", reported)
		}
	})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
