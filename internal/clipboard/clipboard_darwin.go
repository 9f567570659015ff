//go:build darwin && cgo

package clipboard

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa

#import <Cocoa/Cocoa.h>
#include <stdlib.h>

// writeTextToPasteboard writes text to the macOS pasteboard.
// Returns 1 on success, 0 on failure.
int writeTextToPasteboard(const char *text, unsigned long length) {
    @autoreleasepool {
        NSPasteboard *pasteboard = [NSPasteboard generalPasteboard];
        [pasteboard clearContents];

        NSString *string = [[NSString alloc] initWithBytes:text length:length encoding:NSUTF8StringEncoding];
        if (string == nil) {
            return 0;
        }

        BOOL success = [pasteboard setString:string forType:NSPasteboardTypeString];
        return success ? 1 : 0;
    }
}
*/
import "C"

import (
	"unsafe"

	"github.com/jotkit/jot/internal/errors"
)

// writeText writes text to the pasteboard using native macOS APIs, so
// it works without a separate clipboard daemon.
func writeText(text string) error {
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText))

	if C.writeTextToPasteboard(cText, C.ulong(len(text))) == 0 {
		return errors.ClipboardUnavailable(nil)
	}
	return nil
}
