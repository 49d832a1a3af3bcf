package textio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Write saves text to path followed by a single newline.
func Write(path, text string) error {
	if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReplaceExt returns path with its extension replaced by ext, e.g.
// "movie.srt" with "_text.txt" gives "movie_text.txt".
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
