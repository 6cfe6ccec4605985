package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var errEmptySnapshot = errors.New("snapshot file is empty")

// Handler receives every successfully decoded snapshot.
type Handler func(*Snapshot)

// Watcher re-decodes a snapshot file whenever it changes on disk.
type Watcher struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

func NewWatcher(path string, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{path: path, logger: logger}
}

// Watch delivers the current snapshot, then one snapshot per valid file change,
// until ctx is done. Empty or unparsable rewrites are logged and skipped.
// Handler calls never overlap.
func (w *Watcher) Watch(ctx context.Context, handle Handler) error {
	initial, err := w.read()
	if err != nil {
		return err
	}

	// viper only reports the change; its own copy of the settings is stale
	// whenever the rewrite fails to parse, so the file is read again here.
	v := viper.New()
	v.SetConfigFile(w.path)
	v.OnConfigChange(func(e fsnotify.Event) {
		w.logger.Debug("snapshot changed", zap.String("path", e.Name), zap.String("op", e.Op.String()))

		snap, err := w.read()
		if err != nil {
			w.logger.Warn("skipping invalid snapshot", zap.String("path", w.path), zap.Error(err))
			return
		}
		w.deliver(snap, handle)
	})
	v.WatchConfig()

	w.deliver(initial, handle)

	<-ctx.Done()
	return nil
}

func (w *Watcher) read() (*Snapshot, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %q: %w", w.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptySnapshot
	}
	return Read(bytes.NewReader(data), FormatOf(w.path))
}

func (w *Watcher) deliver(snap *Snapshot, handle Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()

	handle(snap)
}
