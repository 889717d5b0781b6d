package mxbmm

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shohamc1/mxbmm/pkg/logging"
	"github.com/shohamc1/mxbmm/pkg/output"
	"github.com/shohamc1/mxbmm/pkg/session"
	"github.com/shohamc1/mxbmm/pkg/style"
)

func newWatchCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := output.NewRenderer(cmd.OutOrStdout(), a.format(format))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := a.newSession(cmd)
			defer closeSession(s, cmd.ErrOrStderr())

			say(cmd, style.Info(fmt.Sprintf(MsgWatchStarted, style.Path(s.Root()))))
			return watchLoop(ctx, s, r, a.cfg.Watch.Interval, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	return cmd
}

// watchLoop renders the inventory, then renders it again after every cycle
// in which the watcher saw a change. It returns when ctx is done.
func watchLoop(ctx context.Context, s *session.Session, r *output.Renderer, interval time.Duration, errOut io.Writer) error {
	logger := logging.GetLogger("cmd.watch")

	sync := func() {
		if err := s.SyncWatcher(); err != nil {
			logger.Warn().Err(err).Str("root", s.Root()).Msg("Cannot watch mods root")
			_, _ = fmt.Fprintln(errOut, style.Error(err))
		}
	}

	sync()
	if !s.Watching() {
		_, _ = fmt.Fprintln(errOut, style.Warning(fmt.Sprintf(MsgWatchUnavailable, s.Root())))
	}
	if err := r.RenderInventory(output.NewReport(s.Inventory())); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			wasWatching := s.Watching()
			sync()
			res := s.Poll()
			if !res.Changed && wasWatching == s.Watching() {
				continue
			}
			if !res.Changed {
				// The root appeared or vanished.
				s.Refresh()
			}
			logger.Debug().Bool("watching", s.Watching()).Msg("Inventory changed")
			if err := r.RenderInventory(output.NewReport(s.Inventory())); err != nil {
				return err
			}
		}
	}
}
