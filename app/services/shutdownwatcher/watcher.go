// Package shutdownwatcher detects an externally imposed shutdown request.
// The hosting platform asks the process to stop by creating or touching a
// well-known marker file; the watcher observes the marker's directory and
// propagates the request as a one-shot cooperative cancellation Token.
package shutdownwatcher

import (
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watcher owns the directory watch and the Token it fires. The fsnotify
// handle is the only mutable shared field; Close detaches it with a single
// atomic swap so a close racing an in-flight event releases it exactly once.
type Watcher struct {
	marker string
	token  *Token
	fw     atomic.Pointer[fsnotify.Watcher]
}

// New builds a watcher for markerPath. An empty path means the hosting
// environment has no shutdown-notification support: the watcher is inert
// and its token never fires. Setup failures (missing or unreadable
// directory) degrade to the same inert state rather than failing host
// startup; shutdown detection is a best-effort capability.
func New(markerPath string) *Watcher {
	markerPath = strings.TrimSpace(markerPath)
	if markerPath == "" {
		return &Watcher{token: Never()}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		log.WithError(err).Warn("shutdown watcher unavailable, continuing without shutdown detection")
		return &Watcher{token: Never()}
	}

	if err := fw.Add(filepath.Dir(markerPath)); err != nil {
		fw.Close()
		log.WithError(err).WithField("path", markerPath).
			Warn("cannot watch shutdown file directory, continuing without shutdown detection")
		return &Watcher{token: Never()}
	}

	w := &Watcher{
		marker: filepath.Base(markerPath),
		token:  newToken(),
	}
	w.fw.Store(fw)

	go w.run(fw)

	return w
}

// run drains events until Close shuts the fsnotify handle and its channels.
func (w *Watcher) run(fw *fsnotify.Watcher) {
	const ops = fsnotify.Create | fsnotify.Write | fsnotify.Rename | fsnotify.Chmod

	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if ev.Op&ops == 0 {
				continue
			}
			// The directory-level watch reports every file in the
			// directory; only the marker file counts.
			if strings.EqualFold(filepath.Base(ev.Name), w.marker) {
				w.token.fire()
			}
		case _, ok := <-fw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Signal returns the watcher's cancellation token. Valid at any time,
// including after Close; after Close it reports whatever terminal state
// existed when the watch was torn down.
func (w *Watcher) Signal() *Token {
	return w.token
}

// Close stops the directory watch and releases it exactly once. Idempotent
// and safe to call concurrently with an in-flight event callback.
func (w *Watcher) Close() {
	if fw := w.fw.Swap(nil); fw != nil {
		fw.Close()
	}
}
