package cmd

import (
	"strings"

	"srcbundle/pkg/bundle"

	"github.com/spf13/cobra"
)

// bundleCmd runs the core operation: resolve the requested languages,
// collect matching files under the root, and write the bundle.
var bundleCmd = &cobra.Command{
	Use:     "bundle",
	Aliases: []string{"b"},
	Short:   "Combine matching source files into one output file",
	Long: `Bundle collects every file under the root directory whose extension
belongs to the requested languages and concatenates their contents into the
output file. Files inside bin, debug and obj directories are always skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		languages, err := cmd.Flags().GetString("language")
		if err != nil {
			return err
		}
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		root, err := cmd.Flags().GetString("root")
		if err != nil {
			return err
		}
		note, err := cmd.Flags().GetBool("note")
		if err != nil {
			return err
		}
		sortByName, err := cmd.Flags().GetBool("sort")
		if err != nil {
			return err
		}
		removeEmpty, err := cmd.Flags().GetBool("remove-empty-lines")
		if err != nil {
			return err
		}
		author, err := cmd.Flags().GetString("author")
		if err != nil {
			return err
		}

		bundleArgs := &bundle.Arguments{
			Languages:        splitLanguages(languages),
			Output:           output,
			Root:             root,
			Note:             note,
			Sort:             sortByName,
			RemoveEmptyLines: removeEmpty,
			Author:           author,
		}
		return bundle.Execute(bundleArgs, logger)
	},
}

// splitLanguages splits the comma-separated --language value, trimming
// spaces and dropping empty entries.
func splitLanguages(list string) []string {
	var tokens []string
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func init() {
	bundleCmd.Flags().StringP("language", "l", "", "Comma-separated language list, or \"all\" (required)")
	bundleCmd.Flags().StringP("output", "d", "", "Destination path for the bundle file (required)")
	bundleCmd.Flags().String("root", "", "Directory to scan (defaults to the working directory)")
	bundleCmd.Flags().BoolP("note", "n", false, "Write each file's relative path as a comment before its content")
	bundleCmd.Flags().BoolP("sort", "s", false, "Order files by name instead of by extension")
	bundleCmd.Flags().BoolP("remove-empty-lines", "r", false, "Drop empty lines from file contents")
	bundleCmd.Flags().StringP("author", "a", "", "Author name written as a leading comment")

	_ = bundleCmd.MarkFlagRequired("language")
	_ = bundleCmd.MarkFlagRequired("output")

	RootCmd.AddCommand(bundleCmd)
}
