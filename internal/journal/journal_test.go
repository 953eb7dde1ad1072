package journal

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRenderTemplate(t *testing.T) {
	d := time.Date(2026, time.February, 21, 0, 0, 0, 0, time.UTC)
	got := RenderTemplate(d, "Conference day one")
	want := `# Saturday, February 21st, 2026 : Conference day one
### What I'm working on:
>
### Entry:

***
`
	if got != want {
		t.Fatalf("unexpected template:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderTemplateEmptyTitle(t *testing.T) {
	d := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	got := RenderTemplate(d, "")
	if !strings.HasPrefix(got, "# Thursday, January 2nd, 2025 : \n") {
		t.Fatalf("unexpected header line: %q", got)
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{".md", ".md"},
		{"md", ".md"},
		{"txt", ".txt"},
		{".markdown", ".markdown"},
	}
	for _, tt := range tests {
		if got := NormalizeExtension(tt.in); got != tt.want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	d := time.Date(2026, time.February, 21, 0, 0, 0, 0, time.UTC)
	if got := FileName(d, ".md"); got != "21st.md" {
		t.Fatalf("FileName = %q, want \"21st.md\"", got)
	}
	if got := FileName(d, ""); got != "21st" {
		t.Fatalf("FileName = %q, want \"21st\"", got)
	}
}

func TestEntryPath(t *testing.T) {
	d := time.Date(2026, time.February, 21, 0, 0, 0, 0, time.UTC)
	got := EntryPath("journal", d, ".md")
	want := filepath.Join("journal", "2026", "February", "21st.md")
	if got != want {
		t.Fatalf("EntryPath = %q, want %q", got, want)
	}

	d = time.Date(2025, time.December, 2, 0, 0, 0, 0, time.UTC)
	got = EntryPath("/home/me/notes", d, ".md")
	want = filepath.Join("/home/me/notes", "2025", "December", "2nd.md")
	if got != want {
		t.Fatalf("EntryPath = %q, want %q", got, want)
	}
}

func TestParseEntryFileName(t *testing.T) {
	tests := []struct {
		name string
		day  int
		ok   bool
	}{
		{"1st.md", 1, true},
		{"2nd.md", 2, true},
		{"3rd.md", 3, true},
		{"21st.md", 21, true},
		{"11th.md", 11, true},
		{"31st.md", 31, true},
		{"21nd.md", 0, false}, // wrong suffix
		{"21st.txt", 0, false},
		{"notes.md", 0, false},
		{"st.md", 0, false},
	}
	for _, tt := range tests {
		day, ok := parseEntryFileName(tt.name, ".md")
		if ok != tt.ok || day != tt.day {
			t.Errorf("parseEntryFileName(%q) = (%d, %v), want (%d, %v)", tt.name, day, ok, tt.day, tt.ok)
		}
	}
}
