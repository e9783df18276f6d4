package research

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Filename derives the artifact filename for a topic. Spaces become
// underscores so the name is shell-friendly.
func Filename(topic string) string {
	return "research_" + strings.ReplaceAll(topic, " ", "_") + ".json"
}

// Export serializes a response as indented JSON for download.
func Export(resp *Response) ([]byte, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export research response: %w", err)
	}
	return data, nil
}

// Save writes the exported response into dir using the derived filename
// and returns the full path.
func Save(dir string, resp *Response) (string, error) {
	data, err := Export(resp)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, Filename(resp.Topic))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save research response: %w", err)
	}
	return path, nil
}
