package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"srcbundle/pkg/logging"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "srcbundle",
	Short: "srcbundle concatenates source files into a single bundle",
	Long: `srcbundle walks a directory tree, selects source files by programming
language, and concatenates them into one output file, optionally annotated
with file paths and an author line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		debugLogger, err := logging.Setup(true, "srcbundle")
		if err != nil {
			return err
		}
		logger = debugLogger
		return nil
	},
}

var (
	logger  *zap.Logger
	verbose bool
)

// Execute wires the process logger into the command tree and runs it.
func Execute(baseLogger *zap.Logger) error {
	logger = baseLogger
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
