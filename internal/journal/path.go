package journal

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/salmonumbrella/journal-cli/internal/datefmt"
)

// DefaultDirName is the journal root used when none is configured.
const DefaultDirName = "journal"

// DefaultExtension is the file extension for entry files.
const DefaultExtension = ".md"

// NormalizeExtension fixes up a configured extension: empty stays empty
// and a missing leading dot is added.
func NormalizeExtension(ext string) string {
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}

// FileName returns the entry file name for a date, e.g. "21st.md".
func FileName(t time.Time, ext string) string {
	return datefmt.DayWithSuffix(t.Day()) + NormalizeExtension(ext)
}

// EntryPath resolves the path for a date's entry:
// <root>/<year>/<month name>/<day with suffix><ext>.
func EntryPath(root string, t time.Time, ext string) string {
	return filepath.Join(root, strconv.Itoa(t.Year()), t.Month().String(), FileName(t, ext))
}
