// Package note is the host document surface: it places rendered text at
// the cursor position of a Markdown note. The cursor is a marker line in
// the file; the marker stays in place so later imports land in the same
// spot.
package note

import (
	"fmt"
	"os"
	"strings"
)

// Insert writes text into the note file directly after the first line
// matching the cursor marker. When the marker is absent the text is
// appended to the end of the file, and a missing file is created holding
// only the text. Insert is called exactly once per import, after rendering
// has fully succeeded.
func Insert(path, marker, text string) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading note %s: %w", path, err)
	}

	updated := insertAt(string(data), marker, text)

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing note %s: %w", path, err)
	}
	return nil
}

// insertAt returns the note content with text placed after the first
// marker line, or appended when no line matches the marker.
func insertAt(content, marker, text string) string {
	offset := 0
	for _, line := range strings.SplitAfter(content, "\n") {
		offset += len(line)
		if strings.TrimSpace(strings.TrimSuffix(line, "\n")) != marker || marker == "" {
			continue
		}
		head := content[:offset]
		// Marker on the final line without a trailing newline needs one
		// so the inserted text starts on its own line
		if !strings.HasSuffix(head, "\n") {
			head += "\n"
		}
		return head + text + content[offset:]
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + text
}
