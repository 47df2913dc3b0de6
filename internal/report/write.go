package report

import (
	"fmt"
	"os"
)

// Write replaces the file at path with doc. A write failure is fatal to the
// run; there is no atomicity, so a crash mid-write can leave a truncated
// file behind.
func Write(path, doc string) error {
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
