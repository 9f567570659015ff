// Package clipboard writes text to the system clipboard.
//
// On macOS with cgo it talks to the pasteboard directly; everywhere
// else it goes through golang.design/x/clipboard, which needs a
// display server and may be unavailable on headless machines. Copy
// reports that as a clipboard error rather than failing at startup.
package clipboard

import (
	"github.com/jotkit/jot/internal/logger"
)

// Copy places text on the system clipboard.
func Copy(text string) error {
	if err := writeText(text); err != nil {
		return err
	}
	logger.Debug("Clipboard: wrote %d bytes of text", len(text))
	return nil
}
