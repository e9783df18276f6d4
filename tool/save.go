package tool

import (
	"context"
	"fmt"
	"os"
	"time"
)

// DefaultSavePath is where the save tool appends output when no path
// is configured.
const DefaultSavePath = "research_output.txt"

type saveArgs struct {
	Data string `json:"data" desc:"The text to save" required:"true"`
}

// NewSaveText creates a tool that appends text to a local file with a
// timestamp header. Each save is a separate dated section so repeated
// runs accumulate rather than overwrite.
func NewSaveText(path string) Handler {
	if path == "" {
		path = DefaultSavePath
	}

	return NewFunc("save_text_to_file", "Save structured research data to a text file.",
		func(ctx context.Context, args saveArgs) (string, error) {
			if args.Data == "" {
				return "", fmt.Errorf("data is required")
			}

			timestamp := time.Now().Format("2006-01-02 15:04:05")
			section := fmt.Sprintf("--- Research Output ---\nTimestamp: %s\n\n%s\n\n", timestamp, args.Data)

			f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return "", fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			if _, err := f.WriteString(section); err != nil {
				return "", fmt.Errorf("write %s: %w", path, err)
			}

			return fmt.Sprintf("Data successfully saved to %s", path), nil
		})
}
