package launcher

import (
	"context"
	"io"

	"github.com/pkg/browser"
)

func init() {
	// xdg-open and friends write to the terminal otherwise
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// BrowserLauncher hands URLs to the operating system's registered handler
type BrowserLauncher struct {
	open func(href string) error
}

// New creates a launcher backed by the system URL handler
func New() *BrowserLauncher {
	return &BrowserLauncher{open: browser.OpenURL}
}

// NewWithOpener creates a launcher that uses open instead of the system handler
func NewWithOpener(open func(href string) error) *BrowserLauncher {
	return &BrowserLauncher{open: open}
}

// Launch opens href and returns once the handler has exited. If ctx ends
// first, Launch returns ctx.Err() and the handler result is discarded.
func (l *BrowserLauncher) Launch(ctx context.Context, href string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- l.open(href)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
