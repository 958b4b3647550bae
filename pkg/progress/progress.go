// Package progress provides an optional terminal progress bar for long
// generation runs, with a no-op implementation when disabled so callers
// never branch on the setting.
package progress

import "github.com/schollz/progressbar/v3"

// Bar tracks progress of a generation run
type Bar interface {
	Add(n int) error
	Finish() error
}

// New returns a terminal progress bar for total items, or a no-op bar
// when disabled
func New(total int64, description string, enabled bool) Bar {
	if !enabled {
		return noopBar{}
	}
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionClearOnFinish(),
	)
}

type noopBar struct{}

func (noopBar) Add(int) error { return nil }
func (noopBar) Finish() error { return nil }
