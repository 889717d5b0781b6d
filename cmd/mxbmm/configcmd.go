package mxbmm

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shohamc1/mxbmm/pkg/config"
	"github.com/shohamc1/mxbmm/pkg/paths"
	"github.com/shohamc1/mxbmm/pkg/style"
)

func newConfigCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				target := a.configPath
				if target == "" {
					target = paths.DefaultConfigFile()
				}
				if err := config.WriteFile(a.cfg, target); err != nil {
					return err
				}
				say(cmd, style.Success(fmt.Sprintf(MsgConfigWritten, target)))
				return nil
			}

			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	return cmd
}
