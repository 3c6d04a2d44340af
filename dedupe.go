package phishcheck

import (
	"context"

	"github.com/projectdiscovery/phishcheck/internal/dedupe"
)

// MaxInMemoryDedupeSize (default : 100 MB)
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

// DedupeBackend stores the urls seen so far.
type DedupeBackend interface {
	// Seen reports whether elem was added before and adds it if not
	Seen(elem string) bool
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// Dedupe drops repeated urls from a stream while keeping first-seen order
type Dedupe struct {
	backend DedupeBackend
}

// NewDedupe returns a dedupe instance sized for roughly byteLen bytes of input
// Note: inputs above MaxInMemoryDedupeSize are tracked on disk
func NewDedupe(byteLen int) *Dedupe {
	d := &Dedupe{}
	if byteLen <= MaxInMemoryDedupeSize {
		d.backend = dedupe.NewMapBackend()
	} else {
		d.backend = dedupe.NewLevelDBBackend()
	}
	return d
}

// Filter forwards every value of in that was not seen before
// the returned channel is closed when in is drained or ctx is done
func (d *Dedupe) Filter(ctx context.Context, in <-chan string) <-chan string {
	out := make(chan string, 100)
	go func() {
		defer close(out)
		defer d.backend.Cleanup()
		for val := range in {
			if d.backend.Seen(val) {
				continue
			}
			select {
			case out <- val:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
