package assist

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed prompts.json
var promptFiles embed.FS

var (
	promptCache map[string]string
	promptOnce  sync.Once
)

// prompt retrieves an embedded prompt template by key.
func prompt(key string) (string, error) {
	var loadErr error
	promptOnce.Do(func() {
		data, err := promptFiles.ReadFile("prompts.json")
		if err != nil {
			loadErr = fmt.Errorf("failed to read prompt file: %w", err)
			return
		}
		if err := json.Unmarshal(data, &promptCache); err != nil {
			loadErr = fmt.Errorf("failed to parse prompt file: %w", err)
		}
	})
	if loadErr != nil {
		return "", loadErr
	}

	text, ok := promptCache[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return text, nil
}

// formatPrompt replaces placeholders in the form {{.Key}} with values from data.
func formatPrompt(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
