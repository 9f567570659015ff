//go:build !darwin || (darwin && !cgo)

package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/jotkit/jot/internal/errors"
)

var (
	initOnce sync.Once
	initErr  error
)

// writeText writes text through golang.design/x/clipboard. The library
// is initialized lazily on first use; init failure (e.g. no display)
// is remembered and returned on every call.
func writeText(text string) error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return errors.ClipboardUnavailable(initErr)
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
