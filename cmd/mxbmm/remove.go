package mxbmm

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/inventory"
	"github.com/shohamc1/mxbmm/pkg/style"
)

func newRemoveCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove CATEGORY NAME",
		Aliases: []string{"rm", "uninstall"},
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return categoryCompletion(cmd, args, toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCategory(args[0])
			if err != nil {
				return err
			}

			s := a.newSession(cmd)
			defer closeSession(s, cmd.ErrOrStderr())

			entry, ok := inventory.Find(s.Inventory().Entries(c), args[1])
			if !ok {
				return errors.Newf(errors.ErrNotFound, "no mod named %q in %s", args[1], c.Label())
			}

			if !yes {
				confirmed, err := a.reviewer.Confirm(fmt.Sprintf(MsgConfirmRemove, entry.Name), style.Path(entry.Path))
				if errors.IsErrorCode(err, errors.ErrNotInteractive) {
					return errors.Wrap(err, errors.ErrInvalidInput, MsgErrNeedsYes)
				}
				if errors.IsErrorCode(err, errors.ErrCancelled) {
					confirmed, err = false, nil
				}
				if err != nil {
					return err
				}
				if !confirmed {
					say(cmd, style.Info(MsgRemoveAborted))
					return nil
				}
			}

			removed, err := s.Remove(c, entry.Name)
			if err != nil {
				return err
			}
			say(cmd, style.Success(fmt.Sprintf(MsgRemoved, removed.Path)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	return cmd
}
