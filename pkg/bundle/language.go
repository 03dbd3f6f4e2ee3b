// File: pkg/bundle/language.go
package bundle

import (
	"fmt"
	"sort"
	"strings"
)

// LanguageAll is the wildcard token selecting every supported extension.
const LanguageAll = "all"

// languagePatterns maps each supported language token to the glob patterns
// used to match its source files. The table is fixed at startup and is never
// mutated.
//
// The "all" set is deliberately broader than the union of the named
// languages: it spans ecosystems no named token covers.
var languagePatterns = map[string][]string{
	"c++":        {"*.cpp", "*.h"},
	"c#":         {"*.cs", "*.html", "*.css"},
	"javascript": {"*.js"},
	"java":       {"*.java"},
	"python":     {"*.py"},
	"react":      {"*.jsx", "*.tsx"},
	"php":        {"*.php"},
	"c":          {"*.c", "*.h"},
	"assembly":   {"*.asm", "*.s"},
	LanguageAll: {
		"*.cpp", "*.h", "*.c", "*.cs", "*.html", "*.css",
		"*.js", "*.jsx", "*.ts", "*.tsx", "*.java", "*.py",
		"*.php", "*.asm", "*.s", "*.go", "*.rb", "*.rs",
		"*.swift", "*.kt", "*.vb", "*.sql", "*.sh", "*.json",
		"*.xml",
	},
}

// SupportedLanguages returns the language vocabulary in a stable order.
func SupportedLanguages() []string {
	languages := make([]string, 0, len(languagePatterns))
	for token := range languagePatterns {
		languages = append(languages, token)
	}
	sort.Strings(languages)
	return languages
}

// ValidateLanguages rejects the whole selection when it is empty or when any
// token falls outside the supported vocabulary. Tokens are matched
// case-insensitively.
func ValidateLanguages(tokens []string) error {
	if len(tokens) == 0 {
		return fmt.Errorf("no languages requested; valid languages are: %s",
			strings.Join(SupportedLanguages(), ", "))
	}
	for _, token := range tokens {
		if _, ok := languagePatterns[normalizeToken(token)]; !ok {
			return fmt.Errorf("unknown language %q; valid languages are: %s",
				token, strings.Join(SupportedLanguages(), ", "))
		}
	}
	return nil
}

// ResolvePatterns expands a validated language selection into the union of
// its glob patterns, duplicates removed, first-seen order preserved.
//
// A token that reaches this point without passing ValidateLanguages reports
// an internal inconsistency rather than being silently dropped.
func ResolvePatterns(tokens []string) ([]string, error) {
	var patterns []string
	seen := make(map[string]struct{})
	for _, token := range tokens {
		mapped, ok := languagePatterns[normalizeToken(token)]
		if !ok {
			return nil, fmt.Errorf("internal error: language %q reached resolution without validation", token)
		}
		for _, pattern := range mapped {
			if _, dup := seen[pattern]; dup {
				continue
			}
			seen[pattern] = struct{}{}
			patterns = append(patterns, pattern)
		}
	}
	return patterns, nil
}

func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
