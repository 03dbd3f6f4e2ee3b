// File: pkg/bundle/rsp.go
package bundle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ResponseFileName is the fixed name of the saved response file.
const ResponseFileName = "bundle.rsp"

// CreateResponseFile interactively gathers a bundle invocation from in and
// saves it as a one-line response file in dir. It returns the path of the
// written file.
func CreateResponseFile(dir string, in io.Reader, logger *zap.Logger) (string, error) {
	reader := bufio.NewReader(in)

	languages, err := promptLine(reader, "Languages (comma separated, or \"all\"): ")
	if err != nil {
		return "", err
	}
	output, err := promptLine(reader, "Output file path: ")
	if err != nil {
		return "", err
	}
	note, err := promptBool(reader, "Annotate each file with its path? (y/n): ")
	if err != nil {
		return "", err
	}
	sortByName, err := promptBool(reader, "Sort files by name? (y/n): ")
	if err != nil {
		return "", err
	}
	removeEmpty, err := promptBool(reader, "Remove empty lines? (y/n): ")
	if err != nil {
		return "", err
	}
	author, err := promptLine(reader, "Author (leave blank for none): ")
	if err != nil {
		return "", err
	}

	args := &Arguments{
		Languages:        splitLanguageList(languages),
		Output:           output,
		Note:             note,
		Sort:             sortByName,
		RemoveEmptyLines: removeEmpty,
		Author:           author,
	}
	if err := args.ValidateArguments(); err != nil {
		return "", err
	}

	command := BuildCommandLine(args)
	path := filepath.Join(dir, ResponseFileName)
	if err := os.WriteFile(path, []byte(command+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write response file %s: %w", path, err)
	}

	logger.Info("Saved response file",
		zap.String("path", path),
		zap.String("command", command))
	return path, nil
}

// BuildCommandLine renders args as a single shell-invocable bundle command.
// The author value is quoted so names containing spaces survive the shell.
func BuildCommandLine(args *Arguments) string {
	parts := []string{
		"srcbundle", "bundle",
		"--language", strings.Join(args.Languages, ","),
		"--output", args.Output,
	}
	if args.Note {
		parts = append(parts, "--note")
	}
	if args.Sort {
		parts = append(parts, "--sort")
	}
	if args.RemoveEmptyLines {
		parts = append(parts, "--remove-empty-lines")
	}
	if author := strings.TrimSpace(args.Author); author != "" {
		parts = append(parts, "--author", fmt.Sprintf("%q", author))
	}
	return strings.Join(parts, " ")
}

// promptLine prints a styled prompt and reads one trimmed line.
func promptLine(reader *bufio.Reader, message string) (string, error) {
	fmt.Print(promptStyle.Render(message))
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptBool reads a yes/no answer; anything other than "y" or "yes"
// (case-insensitive) counts as no.
func promptBool(reader *bufio.Reader, message string) (bool, error) {
	response, err := promptLine(reader, message)
	if err != nil {
		return false, err
	}
	response = strings.ToLower(response)
	return response == "y" || response == "yes", nil
}

// splitLanguageList splits a comma-separated language list, trimming spaces
// and dropping empty entries.
func splitLanguageList(list string) []string {
	var tokens []string
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
