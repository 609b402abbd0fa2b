package ingestion

import "os"

// ExtractText reads a file's contents as UTF-8 plain text.
// Any read failure degrades to an empty string rather than an error: the
// document is still recorded with default metadata, it just carries no
// searchable text.
func ExtractText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
