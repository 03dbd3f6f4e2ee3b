// File: pkg/bundle/execute.go
package bundle

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// Execute runs a full bundle operation: validate the invocation, resolve the
// language selection to extension patterns, collect and order the matching
// files, and write the bundle.
func Execute(args *Arguments, logger *zap.Logger) error {
	startTime := time.Now()

	if args.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		args.Root = wd
	}

	if err := args.ValidateArguments(); err != nil {
		return err
	}

	patterns, err := ResolvePatterns(args.Languages)
	if err != nil {
		return err
	}
	logger.Debug("Resolved language selection",
		zap.Strings("languages", args.Languages),
		zap.Strings("patterns", patterns))

	files, err := CollectFiles(args.Root, patterns, logger)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("No files matched the requested languages",
			zap.String("root", args.Root),
			zap.Strings("languages", args.Languages))
	}

	ordered := OrderFiles(files, args.Sort)

	if err := WriteBundle(args, ordered, logger, progressPrinter()); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Bundled %d files into %s", len(ordered), args.Output)))
	logger.Info("Bundle complete",
		zap.String("output", args.Output),
		zap.Int("fileCount", len(ordered)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
