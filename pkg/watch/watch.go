// Package watch turns fsnotify events under the mods root into coalesced
// "refresh needed" signals that the caller polls without blocking.
//
// fsnotify is not recursive, so the bridge walks the root at startup and
// adds every directory, then adds directories created later as their Create
// events arrive. Events are forwarded by a single goroutine into a buffered
// channel with non-blocking sends: when the buffer is full the signal is
// dropped, since anything already queued forces a refresh anyway.
package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/logging"
)

const (
	defaultBuffer    = 64
	maxErrorsPerPoll = 16
)

// Options tunes a Bridge.
type Options struct {
	// Debounce is the quiet period after the last event before a signal is
	// queued. Zero forwards every event immediately.
	Debounce time.Duration

	// Buffer is the signal channel capacity. Zero or negative uses 64.
	Buffer int
}

// Result is what a single Poll observed.
type Result struct {
	Changed bool
	Errors  []error
}

// Bridge watches one root directory.
type Bridge struct {
	root     string
	fsw      *fsnotify.Watcher
	debounce time.Duration
	logger   zerolog.Logger

	signals chan struct{}
	errs    chan error

	closeOnce sync.Once
	done      chan struct{}
}

// Available reports whether root is an existing directory that can be
// watched.
func Available(root string) bool {
	info, err := os.Stat(root)
	return err == nil && info.IsDir()
}

// New starts watching root and everything below it.
func New(root string, opts Options) (*Bridge, error) {
	if !Available(root) {
		return nil, errors.Newf(errors.ErrNotFound, "mods root %s does not exist", root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrWatch, "failed to create file watcher")
	}

	buffer := opts.Buffer
	if buffer <= 0 {
		buffer = defaultBuffer
	}

	b := &Bridge{
		root:     root,
		fsw:      fsw,
		debounce: opts.Debounce,
		logger:   logging.GetLogger("watch"),
		signals:  make(chan struct{}, buffer),
		errs:     make(chan error, buffer),
		done:     make(chan struct{}),
	}

	if err := b.addTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	go b.forward()

	b.logger.Debug().Str("root", root).Dur("debounce", opts.Debounce).Msg("Watching mods root")
	return b, nil
}

// Root is the watched directory.
func (b *Bridge) Root() string {
	return b.root
}

// Poll drains everything queued since the previous call without blocking.
// Any number of queued signals collapses into a single Changed.
func (b *Bridge) Poll() Result {
	var res Result
	for {
		select {
		case <-b.signals:
			res.Changed = true
		case err := <-b.errs:
			if len(res.Errors) < maxErrorsPerPoll {
				res.Errors = append(res.Errors, err)
			}
		default:
			return res
		}
	}
}

// Close stops the watcher and waits for the forwarding goroutine.
func (b *Bridge) Close() error {
	var err error
	b.closeOnce.Do(func() {
		err = b.fsw.Close()
		<-b.done
		b.logger.Debug().Str("root", b.root).Msg("Stopped watching")
	})
	return err
}

func (b *Bridge) forward() {
	defer close(b.done)

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case evt, ok := <-b.fsw.Events:
			if !ok {
				return
			}
			if evt.Has(fsnotify.Create) {
				b.maybeAddDir(evt.Name)
			}
			if b.debounce <= 0 {
				b.notify()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(b.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(b.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			b.notify()

		case err, ok := <-b.fsw.Errors:
			if !ok {
				return
			}
			b.logger.Warn().Err(err).Msg("File watcher error")
			select {
			case b.errs <- err:
			default:
			}
		}
	}
}

// notify queues a refresh signal, dropping it when the buffer is full.
func (b *Bridge) notify() {
	select {
	case b.signals <- struct{}{}:
	default:
	}
}

func (b *Bridge) addTree(root string) error {
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			b.logger.Debug().Err(err).Str("path", path).Msg("Skipping inaccessible path")
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := b.fsw.Add(path); err != nil {
			return errors.Wrapf(err, errors.ErrWatch, "failed to watch %s", path)
		}
		return nil
	})
	return walkErr
}

// maybeAddDir extends the watch to a directory created after startup,
// including anything already inside it.
func (b *Bridge) maybeAddDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if err := b.addTree(path); err != nil {
		b.logger.Warn().Err(err).Str("path", path).Msg("Failed to watch new directory")
	}
}
