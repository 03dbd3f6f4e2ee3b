// File: pkg/bundle/ui.go
package bundle

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

// progressPrinter renders one informational line per bundled file.
func progressPrinter() func(relPath string) {
	return func(relPath string) {
		fmt.Println(progressStyle.Render("  + " + relPath))
	}
}
