package config

import (
	"context"
	"sync"
	"time"

	"code.vegaprotocol.io/stockstream/logging"

	"github.com/fsnotify/fsnotify"
)

const namedLogger = "cfgwatcher"

// Watcher is looking for updates in the configurations files.
type Watcher struct {
	log      *logging.Logger
	path     string
	override func(*Config) error

	mu                 sync.Mutex
	cfg                Config
	cfgUpdateListeners []func(Config)
}

// WatcherOption customises a Watcher.
type WatcherOption func(*Watcher)

// WithOverride is applied on top of every load, command line flags use it
// to keep precedence over the file.
func WithOverride(f func(*Config) error) WatcherOption {
	return func(w *Watcher) {
		w.override = f
	}
}

// NewWatcher loads the configuration under rootPath and reloads it each time
// the file changes until ctx is done.
func NewWatcher(ctx context.Context, log *logging.Logger, rootPath string, opts ...WatcherOption) (*Watcher, error) {
	watcherlog := log.Named(namedLogger)
	// set this logger to debug level as we want to be notified for any configuration changes at any time
	watcherlog.SetLevel(logging.DebugLevel)
	w := &Watcher{
		log:  watcherlog,
		path: Path(rootPath),
	}
	for _, o := range opts {
		o(w)
	}

	if err := w.load(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(w.path); err != nil {
		watcher.Close()
		return nil, err
	}

	w.log.Info("config watcher started successfully",
		logging.String("config", w.path))

	go w.watch(ctx, watcher)

	return w, nil
}

// Get return the last update of the configuration.
func (w *Watcher) Get() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg
}

// OnConfigUpdate register a function to be called when the configuration is getting updated.
func (w *Watcher) OnConfigUpdate(fns ...func(Config)) {
	w.mu.Lock()
	w.cfgUpdateListeners = append(w.cfgUpdateListeners, fns...)
	w.mu.Unlock()
}

func (w *Watcher) load() error {
	cfg := NewDefaultConfig()
	if err := decodeFile(w.path, &cfg); err != nil {
		return err
	}
	if w.override != nil {
		if err := w.override(&cfg); err != nil {
			return err
		}
	}

	w.mu.Lock()
	w.cfg = cfg
	w.mu.Unlock()
	return nil
}

func (w *Watcher) notify() {
	w.mu.Lock()
	cfg := w.cfg
	listeners := append([]func(Config){}, w.cfgUpdateListeners...)
	w.mu.Unlock()

	for _, f := range listeners {
		f(cfg)
	}
}

func (w *Watcher) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Create) {
				continue
			}
			if event.Has(fsnotify.Rename) {
				// vi writes a temporary file and renames it over the original,
				// the new file is not always there yet and has to be watched again
				time.Sleep(50 * time.Millisecond)
				if err := watcher.Add(w.path); err != nil {
					w.log.Error("unable to watch configuration again", logging.Error(err))
				}
			}
			w.log.Info("configuration updated", logging.String("event", event.Name))
			if err := w.load(); err != nil {
				w.log.Error("unable to load configuration", logging.Error(err))
				continue
			}
			w.notify()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("config watcher received error event", logging.Error(err))
		case <-ctx.Done():
			w.log.Debug("config watcher ctx done")
			return
		}
	}
}
