// README: Prompt template loading with an embedded default.
package prompt

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed itinerary_template.txt
var defaultItineraryTemplate string

// LoadTemplate returns the itinerary prompt template. When path is empty the
// embedded default is used; otherwise the file is read and must exist.
func LoadTemplate(path string) (string, error) {
	if path == "" {
		return defaultItineraryTemplate, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt template %s: %w", path, err)
	}
	return string(content), nil
}
