package mxbmm

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/install"
	"github.com/shohamc1/mxbmm/pkg/logging"
	"github.com/shohamc1/mxbmm/pkg/session"
	"github.com/shohamc1/mxbmm/pkg/staging"
	"github.com/shohamc1/mxbmm/pkg/style"
)

type installOptions struct {
	category    string
	name        string
	notes       string
	modVersion  string
	interactive bool
}

func newInstallCmd(a *app) *cobra.Command {
	opts := &installOptions{}

	cmd := &cobra.Command{
		Use:     "install FILE",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, a, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", "", MsgFlagCategory)
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", MsgFlagName)
	cmd.Flags().StringVar(&opts.notes, "notes", "", MsgFlagNotes)
	cmd.Flags().StringVar(&opts.modVersion, "mod-version", "", MsgFlagModVersion)
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, MsgFlagInteractive)
	_ = cmd.RegisterFlagCompletionFunc("category", categoryCompletion)

	return cmd
}

func runInstall(cmd *cobra.Command, a *app, opts *installOptions, args []string) error {
	logger := logging.GetLogger("cmd.install")
	defer logging.LogOperationStart(logger, "install")()

	s := a.newSession(cmd)
	defer closeSession(s, cmd.ErrOrStderr())

	pending, err := s.StageMany(args)
	if err != nil {
		return err
	}
	if err := applyInstallFlags(cmd, s, opts); err != nil {
		return err
	}
	say(cmd, style.Info(fmt.Sprintf(MsgStaged, pending.Source.Kind(), pending.InstallName(), pending.Category.Label())))

	var outcome *install.Outcome
	if opts.interactive {
		outcome, err = reviewAndCommit(s, a.reviewer)
	} else {
		outcome, err = s.Commit()
	}
	if errors.IsErrorCode(err, errors.ErrCancelled) {
		say(cmd, style.Info(MsgCancelled))
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info().
		Str("destination", outcome.Destination).
		Int("files", outcome.FilesCopied).
		Msg("Install committed")
	if outcome.MetadataWarning != nil {
		say(cmd, style.Warning(outcome.Message()))
	} else {
		say(cmd, style.Success(outcome.Message()))
	}
	return nil
}

// applyInstallFlags overrides the staged defaults with the flags that were
// given.
func applyInstallFlags(cmd *cobra.Command, s *session.Session, opts *installOptions) error {
	flags := cmd.Flags()
	if flags.Changed("category") {
		c, err := parseCategory(opts.category)
		if err != nil {
			return err
		}
		_ = s.Edit(func(p *staging.PendingInstall) { p.Category = c })
	}
	return s.Edit(func(p *staging.PendingInstall) {
		if flags.Changed("name") {
			p.Name = opts.name
		}
		if flags.Changed("notes") {
			p.Notes = opts.notes
		}
		if flags.Changed("mod-version") {
			p.Version = opts.modVersion
		}
	})
}

// reviewAndCommit shows the review form until the commit succeeds, the
// user cancels, or the commit fails in a way editing cannot fix.
func reviewAndCommit(s *session.Session, r reviewer) (*install.Outcome, error) {
	problem := ""
	for {
		if err := r.EditPending(s.Pending(), problem); err != nil {
			return nil, err
		}
		outcome, err := s.Commit()
		if err == nil {
			return outcome, nil
		}
		if !errors.IsUserCorrectable(err) {
			return nil, err
		}
		problem = style.Error(err)
	}
}
