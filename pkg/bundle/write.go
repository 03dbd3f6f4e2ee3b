// File: pkg/bundle/write.go
package bundle

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// WriteBundle streams the ordered file list into args.Output, truncating any
// existing bundle. A read failure on any input file aborts the whole
// operation. The progress callback, when non-nil, is invoked once per file
// after its content is written.
func WriteBundle(args *Arguments, files []string, logger *zap.Logger, progress func(relPath string)) error {
	outFile, err := os.Create(args.Output)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDirNotFound, filepath.Dir(args.Output))
		}
		return fmt.Errorf("failed to create output file %s: %w", args.Output, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", args.Output), zap.Error(closeErr))
		}
	}()

	writer := bufio.NewWriter(outFile)

	if author := strings.TrimSpace(args.Author); author != "" {
		if _, err := fmt.Fprintf(writer, "// Author: %s\n", author); err != nil {
			return fmt.Errorf("failed to write author line: %w", err)
		}
	}

	absRoot, err := filepath.Abs(args.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root path %s: %w", args.Root, err)
	}

	for _, file := range files {
		relPath, relErr := filepath.Rel(absRoot, file)
		if relErr != nil {
			relPath = file
		}
		relPath = filepath.ToSlash(relPath)

		if args.Note {
			if _, err := fmt.Fprintf(writer, "// File: %s\n", relPath); err != nil {
				return fmt.Errorf("failed to write note line for %s: %w", relPath, err)
			}
		}

		content, readErr := os.ReadFile(file)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", file, readErr)
		}

		text := string(content)
		if args.RemoveEmptyLines {
			text = dropEmptyLines(text)
		}

		if _, err := writer.WriteString(text + "\n"); err != nil {
			return fmt.Errorf("failed to write content of %s: %w", relPath, err)
		}

		logger.Debug("Bundled file", zap.String("file", relPath))
		if progress != nil {
			progress(relPath)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output file %s: %w", args.Output, err)
	}
	return nil
}

// dropEmptyLines removes lines of length exactly zero. Lines containing only
// whitespace are kept.
func dropEmptyLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
