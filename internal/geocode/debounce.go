package geocode

import (
	"context"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultQuiet is the debounce window applied to address inputs.
const DefaultQuiet = time.Second

// Lookup debounces free-text input and applies only the latest result. Each
// input bumps a generation counter; a response whose generation is no longer
// current is discarded, so a slow earlier request can never overwrite a newer
// answer.
type Lookup struct {
	client *Client
	quiet  time.Duration
	apply  func(Result)

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewLookup creates a debounced lookup. apply is invoked with the resolved
// result of the latest input only.
func NewLookup(client *Client, quiet time.Duration, apply func(Result)) *Lookup {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Lookup{client: client, quiet: quiet, apply: apply}
}

// Input feeds a keystroke's worth of text. The request fires after the quiet
// period with no newer input.
func (l *Lookup) Input(text string) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.quiet, func() { l.fire(gen, text) })
	l.mu.Unlock()
}

// Stop cancels any pending request without applying a result.
func (l *Lookup) Stop() {
	l.mu.Lock()
	l.gen++
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.mu.Unlock()
}

func (l *Lookup) fire(gen uint64, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	result, err := l.client.Search(context.Background(), text)
	if err != nil {
		log.WithError(err).Debug("address lookup failed")
		return
	}
	if result == nil {
		return
	}

	l.mu.Lock()
	latest := gen == l.gen
	l.mu.Unlock()
	if latest {
		l.apply(*result)
	}
}
