package pageview

import (
	"errors"

	"github.com/atotto/clipboard"
)

// CopyToClipboard copies text to the system clipboard. It needs pbcopy on
// macOS, xclip, xsel or wl-copy on Linux, and nothing extra on Windows.
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard tool found (install xclip or xsel)")
	}
	return clipboard.WriteAll(text)
}
