// File: pkg/bundle/collect.go
package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// ErrDirNotFound reports that the scan root is missing, inaccessible, or not
// a directory. Callers distinguish it from generic I/O failures with
// errors.Is.
var ErrDirNotFound = errors.New("directory not found")

// excludedDirs are directory names whose contents never enter a bundle.
// Matching is case-sensitive and applies to whole path segments under the
// scan root.
var excludedDirs = map[string]bool{
	"bin":   true,
	"debug": true,
	"obj":   true,
}

// CollectFiles runs one recursive scan of root per pattern and returns the
// union of matching file paths, duplicates removed, in encounter order.
// Files under an excluded directory are never returned.
func CollectFiles(root string, patterns []string, logger *zap.Logger) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path %s: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, absRoot)
	}

	var files []string
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := scanPattern(absRoot, pattern, logger)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if _, dup := seen[match]; dup {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}

	logger.Debug("Completed file collection",
		zap.String("root", absRoot),
		zap.Int("patternCount", len(patterns)),
		zap.Int("fileCount", len(files)))
	return files, nil
}

// scanPattern walks root once and collects every file whose base name
// matches pattern.
func scanPattern(root, pattern string, logger *zap.Logger) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return fmt.Errorf("%w: %s", ErrDirNotFound, root)
			}
			logger.Warn("Error accessing path during scan", zap.String("path", path), zap.Error(walkErr))
			return nil
		}

		if d.IsDir() {
			if path != root && excludedDirs[d.Name()] {
				logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		matched, matchErr := doublestar.Match(pattern, d.Name())
		if matchErr != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, matchErr)
		}
		if matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Scanned pattern",
		zap.String("pattern", pattern),
		zap.Int("matchCount", len(matches)))
	return matches, nil
}
