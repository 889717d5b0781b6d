package session

import (
	"github.com/shohamc1/mxbmm/pkg/watch"
)

// SyncWatcher makes the watcher follow the current root. A root that does
// not exist yet is simply not watched; a failure to watch an existing root
// is returned once per root.
func (s *Session) SyncWatcher() error {
	if !s.cfg.Watch.Enabled {
		return nil
	}
	root := s.Root()

	if s.watcher != nil {
		if s.watcher.Root() == root {
			return nil
		}
		if err := s.watcher.Close(); err != nil {
			s.logger.Warn().Err(err).Str("root", s.watcher.Root()).Msg("Failed to close watcher")
		}
		s.watcher = nil
	}

	if root == "" || !watch.Available(root) || root == s.failedWatchDir {
		return nil
	}

	b, err := watch.New(root, watch.Options{Debounce: s.cfg.Watch.Debounce})
	if err != nil {
		s.failedWatchDir = root
		return err
	}
	s.failedWatchDir = ""
	s.watcher = b
	return nil
}

// Watching reports whether a watcher is running.
func (s *Session) Watching() bool {
	return s.watcher != nil
}

// Poll drains the watcher once and rescans when anything changed. It never
// blocks.
func (s *Session) Poll() watch.Result {
	if s.watcher == nil {
		return watch.Result{}
	}
	res := s.watcher.Poll()
	for _, err := range res.Errors {
		s.logger.Warn().Err(err).Msg("Watcher reported an error")
	}
	if res.Changed {
		s.Refresh()
	}
	return res
}
