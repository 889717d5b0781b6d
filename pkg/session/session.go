// Package session holds the state of one interactive mxbmm run: the mods
// root as typed, the single pending install slot, the category used last,
// the change watcher and the latest inventory snapshot.
//
// Everything here runs on the caller's goroutine. The only concurrent actor
// is the watcher's forwarding goroutine, which the session drains once per
// cycle through Poll.
package session

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/shohamc1/mxbmm/pkg/category"
	"github.com/shohamc1/mxbmm/pkg/config"
	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/filesystem"
	"github.com/shohamc1/mxbmm/pkg/install"
	"github.com/shohamc1/mxbmm/pkg/inventory"
	"github.com/shohamc1/mxbmm/pkg/logging"
	"github.com/shohamc1/mxbmm/pkg/paths"
	"github.com/shohamc1/mxbmm/pkg/staging"
	"github.com/shohamc1/mxbmm/pkg/watch"
)

// Session is not safe for concurrent use.
type Session struct {
	fsys   filesystem.FS
	cfg    *config.Config
	engine *install.Engine
	logger zerolog.Logger

	rootText     string
	tempRoot     string
	lastCategory category.Category
	pending      *staging.PendingInstall
	inv          *inventory.Inventory

	watcher        *watch.Bridge
	failedWatchDir string
}

// New creates a session with the mods root resolved from cfg.
func New(fsys filesystem.FS, cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	root, _ := paths.ResolveModsRoot(cfg.Mods.Root, paths.DocumentsDir())

	s := &Session{
		fsys:         fsys,
		cfg:          cfg,
		engine:       install.NewEngine(fsys),
		logger:       logging.GetLogger("session"),
		rootText:     root,
		tempRoot:     paths.ExpandHome(strings.TrimSpace(cfg.Staging.Dir)),
		lastCategory: cfg.DefaultCategory(),
	}
	s.Refresh()
	return s
}

// SetRoot stores the mods root as typed. It is trimmed on every use.
func (s *Session) SetRoot(text string) {
	s.rootText = text
}

// Root is the trimmed, ~-expanded mods root.
func (s *Session) Root() string {
	return paths.ExpandHome(strings.TrimSpace(s.rootText))
}

// LastCategory is the category archives default to.
func (s *Session) LastCategory() category.Category {
	return s.lastCategory
}

// Stage turns path into the pending install. Only one install can be
// pending at a time.
func (s *Session) Stage(path string) (*staging.PendingInstall, error) {
	if s.pending != nil {
		return nil, errors.New(errors.ErrPendingExists,
			"finish or cancel the current pending install first")
	}

	p, err := staging.NewStager(s.fsys, s.tempRoot, s.lastCategory).Stage(path)
	if err != nil {
		return nil, err
	}
	s.pending = p
	return p, nil
}

// StageMany accepts a drop of several paths. Exactly one is supported.
func (s *Session) StageMany(inputs []string) (*staging.PendingInstall, error) {
	if len(inputs) != 1 {
		return nil, errors.Newf(errors.ErrInvalidInput, "drop one file at a time (got %d)", len(inputs))
	}
	return s.Stage(inputs[0])
}

// Pending returns the pending install, or nil.
func (s *Session) Pending() *staging.PendingInstall {
	return s.pending
}

// Edit applies fn to the pending install.
func (s *Session) Edit(fn func(p *staging.PendingInstall)) error {
	if s.pending == nil {
		return errors.New(errors.ErrNoPending, "nothing is pending")
	}
	fn(s.pending)
	return nil
}

// Commit installs the pending install under the current root. On failure
// the install stays pending so it can be edited and retried.
func (s *Session) Commit() (*install.Outcome, error) {
	if s.pending == nil {
		return nil, errors.New(errors.ErrNoPending, "nothing is pending")
	}
	root := s.Root()
	if root == "" {
		return nil, errors.New(errors.ErrInvalidInput, "mods root is empty")
	}

	outcome, err := s.engine.Commit(root, s.pending)
	if err != nil {
		return nil, err
	}

	s.lastCategory = s.pending.Category
	s.pending = nil
	s.Refresh()
	return outcome, nil
}

// Cancel drops the pending install and deletes its temporary files.
func (s *Session) Cancel() error {
	if s.pending == nil {
		return errors.New(errors.ErrNoPending, "nothing is pending")
	}
	p := s.pending
	s.pending = nil
	return p.Release()
}

// Refresh rescans the mods root.
func (s *Session) Refresh() {
	s.inv = inventory.ScanAll(s.fsys, s.Root())
}

// Inventory is the latest scan.
func (s *Session) Inventory() *inventory.Inventory {
	return s.inv
}

// Remove uninstalls the mod called name from category c. The lookup uses a
// fresh scan of the current root.
func (s *Session) Remove(c category.Category, name string) (inventory.ModEntry, error) {
	s.Refresh()
	entry, ok := inventory.Find(s.inv.Entries(c), name)
	if !ok {
		return inventory.ModEntry{}, errors.Newf(errors.ErrNotFound, "no mod named %q in %s", name, c.Label())
	}
	if err := inventory.Remove(s.fsys, entry); err != nil {
		return entry, err
	}
	s.Refresh()
	return entry, nil
}

// Close releases the pending install and stops the watcher.
func (s *Session) Close() error {
	var first error
	if s.pending != nil {
		if err := s.pending.Release(); err != nil {
			first = err
		}
		s.pending = nil
	}
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil && first == nil {
			first = err
		}
		s.watcher = nil
	}
	return first
}
