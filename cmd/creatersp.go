package cmd

import (
	"fmt"
	"os"

	"srcbundle/pkg/bundle"

	"github.com/spf13/cobra"
)

// createRspCmd interactively gathers the options of a bundle invocation and
// saves them as a reusable one-line response file in the working directory.
var createRspCmd = &cobra.Command{
	Use:   "create-rsp",
	Short: "Interactively save a reusable bundle invocation",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := bundle.CreateResponseFile(".", os.Stdin, logger)
		if err != nil {
			return err
		}
		fmt.Printf("Saved response file: %s\n", path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(createRspCmd)
}
