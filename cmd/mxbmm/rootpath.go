package mxbmm

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shohamc1/mxbmm/pkg/paths"
	"github.com/shohamc1/mxbmm/pkg/style"
)

func newRootPathCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "root",
		Short:   MsgRootCmdShort,
		Long:    MsgRootCmdLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.New(a.cfg.Mods.Root)
			if p.UsedFallback() {
				warn(cmd, fmt.Sprintf(MsgFallbackWarning, p.ModsRoot()))
			}
			if !all {
				say(cmd, p.ModsRoot())
				return nil
			}

			tempRoot := paths.ExpandHome(strings.TrimSpace(a.cfg.Staging.Dir))
			if tempRoot == "" {
				tempRoot = p.TempRoot()
			}
			say(cmd, fmt.Sprintf(MsgPathsModsRoot, style.Path(p.ModsRoot())))
			say(cmd, fmt.Sprintf(MsgPathsConfigFile, style.Path(p.ConfigFile())))
			if a.cfg.Source != "" {
				say(cmd, fmt.Sprintf(MsgPathsConfigLoaded, style.Path(a.cfg.Source)))
			}
			say(cmd, fmt.Sprintf(MsgPathsLogFile, style.Path(p.LogFilePath())))
			say(cmd, fmt.Sprintf(MsgPathsTempDir, style.Path(tempRoot)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "paths", false, MsgFlagPaths)
	return cmd
}
