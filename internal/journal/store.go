package journal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/salmonumbrella/journal-cli/internal/datefmt"
)

// Entry describes one journal entry found on disk.
type Entry struct {
	Date  time.Time `json:"date"`
	Title string    `json:"title,omitempty"`
	Path  string    `json:"path"`
}

// Store reads and writes entries under a journal root directory laid out
// as <root>/<year>/<month name>/<day with suffix><ext>.
type Store struct {
	root string
	ext  string
}

// NewStore returns a store rooted at dir using the default entry extension.
func NewStore(dir string) *Store {
	return &Store{root: dir, ext: DefaultExtension}
}

// NewStoreExt returns a store with a custom entry extension.
func NewStoreExt(dir, ext string) *Store {
	return &Store{root: dir, ext: NormalizeExtension(ext)}
}

// Root returns the journal root directory.
func (s *Store) Root() string {
	return s.root
}

// Path resolves the entry path for a date without touching the filesystem.
func (s *Store) Path(t time.Time) string {
	return EntryPath(s.root, t, s.ext)
}

// Create renders the entry template for t and writes it to the resolved
// path, creating year and month directories as needed. Creating over an
// existing entry fails with AlreadyExistsError.
func (s *Store) Create(t time.Time, title string) (string, error) {
	path := s.Path(t)

	if _, err := os.Stat(path); err == nil {
		return "", AlreadyExistsError{Path: path}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating entry directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(RenderTemplate(t, title)), 0o644); err != nil {
		return "", fmt.Errorf("writing entry: %w", err)
	}

	return path, nil
}

// Read returns the markdown body of the entry for t.
func (s *Store) Read(t time.Time) ([]byte, error) {
	path := s.Path(t)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("reading entry: %w", err)
	}
	return data, nil
}

// List returns the entries on disk sorted by date. A zero year or month
// means no filter on that part. Files and directories that do not match
// the journal layout are skipped.
func (s *Store) List(year, month int) ([]Entry, error) {
	yearDirs, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading journal directory: %w", err)
	}

	var entries []Entry
	for _, yd := range yearDirs {
		if !yd.IsDir() {
			continue
		}
		y, err := strconv.Atoi(yd.Name())
		if err != nil {
			continue
		}
		if year != 0 && y != year {
			continue
		}

		monthDirs, err := os.ReadDir(filepath.Join(s.root, yd.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading year directory: %w", err)
		}
		for _, md := range monthDirs {
			if !md.IsDir() {
				continue
			}
			m, ok := monthByName(md.Name())
			if !ok {
				continue
			}
			if month != 0 && m != month {
				continue
			}

			found, err := s.listMonth(y, m)
			if err != nil {
				return nil, err
			}
			entries = append(entries, found...)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}

func (s *Store) listMonth(year, month int) ([]Entry, error) {
	dir := filepath.Join(s.root, strconv.Itoa(year), time.Month(month).String())
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading month directory: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		day, ok := parseEntryFileName(f.Name(), s.ext)
		if !ok {
			continue
		}
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if date.Day() != day || date.Month() != time.Month(month) {
			// Day number outside the month, e.g. a stray "31st.md" in February.
			continue
		}
		path := filepath.Join(dir, f.Name())
		entries = append(entries, Entry{
			Date:  date,
			Title: readTitle(path),
			Path:  path,
		})
	}
	return entries, nil
}

func monthByName(name string) (int, bool) {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return int(m), true
		}
	}
	return 0, false
}

// parseEntryFileName extracts the day number from names like "21st.md".
// The ordinal suffix must match the day.
func parseEntryFileName(name, ext string) (int, bool) {
	if ext != "" {
		if !strings.HasSuffix(name, ext) {
			return 0, false
		}
		name = strings.TrimSuffix(name, ext)
	}

	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	day, err := strconv.Atoi(name[:i])
	if err != nil {
		return 0, false
	}
	if name[i:] != datefmt.OrdinalSuffix(day) {
		return 0, false
	}
	return day, true
}

// readTitle pulls the title out of an entry header line "# <date> : <title>".
func readTitle(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return ""
	}
	line := sc.Text()
	if !strings.HasPrefix(line, "# ") {
		return ""
	}
	if _, title, ok := strings.Cut(line, " : "); ok {
		return strings.TrimSpace(title)
	}
	return ""
}
