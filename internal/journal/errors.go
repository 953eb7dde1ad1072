package journal

import "fmt"

// NotFoundError reports a read of an entry that does not exist on disk.
type NotFoundError struct {
	Path string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no journal entry at %s", e.Path)
}

// AlreadyExistsError reports an attempt to create an entry over an
// existing one.
type AlreadyExistsError struct {
	Path string
}

func (e AlreadyExistsError) Error() string {
	return fmt.Sprintf("journal entry already exists at %s", e.Path)
}
