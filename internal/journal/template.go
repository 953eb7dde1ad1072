// Package journal renders entry markdown and reads and writes entries
// under a year/month directory tree.
package journal

import (
	"fmt"
	"time"

	"github.com/salmonumbrella/journal-cli/internal/datefmt"
)

// entryTemplate is the markdown skeleton for a new entry. The slots are
// the formatted entry date and the title.
const entryTemplate = `# %s : %s
### What I'm working on:
>
### Entry:

***
`

// RenderTemplate produces the markdown body for a new entry dated t.
// The title may be empty.
func RenderTemplate(t time.Time, title string) string {
	return fmt.Sprintf(entryTemplate, datefmt.EntryDate(t), title)
}
