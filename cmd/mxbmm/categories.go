package mxbmm

import (
	"github.com/spf13/cobra"

	"github.com/shohamc1/mxbmm/pkg/output"
)

func newCategoriesCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "categories",
		Short:   MsgCategoriesShort,
		Long:    MsgCategoriesLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := output.NewRenderer(cmd.OutOrStdout(), a.format(format))
			if err != nil {
				return err
			}
			return r.RenderCategories(output.Categories())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	return cmd
}
