package mxbmm

import (
	"github.com/spf13/cobra"

	"github.com/shohamc1/mxbmm/pkg/category"
	"github.com/shohamc1/mxbmm/pkg/output"
)

func newListCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:               "list [CATEGORY...]",
		Aliases:           []string{"ls"},
		Short:             MsgListShort,
		Long:              MsgListLong,
		GroupID:           "core",
		ValidArgsFunction: categoryCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := make([]category.Category, 0, len(args))
			for _, arg := range args {
				c, err := parseCategory(arg)
				if err != nil {
					return err
				}
				cats = append(cats, c)
			}

			r, err := output.NewRenderer(cmd.OutOrStdout(), a.format(format))
			if err != nil {
				return err
			}

			s := a.newSession(cmd)
			defer closeSession(s, cmd.ErrOrStderr())
			return r.RenderInventory(output.NewReport(s.Inventory(), cats...))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	return cmd
}
