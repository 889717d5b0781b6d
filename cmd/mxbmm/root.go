package mxbmm

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shohamc1/mxbmm/internal/version"
	"github.com/shohamc1/mxbmm/pkg/category"
	"github.com/shohamc1/mxbmm/pkg/config"
	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/filesystem"
	"github.com/shohamc1/mxbmm/pkg/logging"
	"github.com/shohamc1/mxbmm/pkg/paths"
	"github.com/shohamc1/mxbmm/pkg/prompt"
	"github.com/shohamc1/mxbmm/pkg/session"
	"github.com/shohamc1/mxbmm/pkg/staging"
	"github.com/shohamc1/mxbmm/pkg/style"
)

// reviewer asks the user about a pending install or a destructive action.
type reviewer interface {
	EditPending(pending *staging.PendingInstall, problem string) error
	Confirm(title, description string) (bool, error)
}

// app is the state shared by all commands of one invocation.
type app struct {
	verbosity  int
	root       string
	configPath string
	noColor    bool

	fsys     filesystem.FS
	reviewer reviewer
	cfg      *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(prompt.New())
}

func newRootCmd(r reviewer) *cobra.Command {
	a := &app{fsys: filesystem.NewOS(), reviewer: r}

	// Initialize custom template functions
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:               "mxbmm",
		Short:             MsgRootShort,
		Long:              MsgRootLong,
		Version:           version.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity, a.noColor || !style.ColorEnabled(os.Stderr))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.root, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Commands:"},
		&cobra.Group{ID: "misc", Title: "Misc:"},
	)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newRemoveCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newCategoriesCmd(a))
	rootCmd.AddCommand(newRootPathCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newCompletionCmd())

	if err := installTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// load builds the effective configuration and configures styling.
func (a *app) load(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("root") {
		overrides["mods.root"] = a.root
	}
	if a.noColor {
		overrides["output.color"] = false
	}

	cfg, err := config.Load(config.LoadOptions{Path: a.configPath, Overrides: overrides})
	if err != nil {
		return err
	}
	a.cfg = cfg

	style.Configure(!cfg.Output.Color || !style.ColorEnabled(os.Stdout))
	return nil
}

// newSession opens a session on the configured mods root and warns when the
// root is a fallback or missing.
func (a *app) newSession(cmd *cobra.Command) *session.Session {
	p := paths.New(a.cfg.Mods.Root)
	if p.UsedFallback() {
		warn(cmd, fmt.Sprintf(MsgFallbackWarning, p.ModsRoot()))
	}
	s := session.New(a.fsys, a.cfg)
	if !filesystem.Exists(a.fsys, s.Root()) {
		warn(cmd, fmt.Sprintf(MsgRootMissing, s.Root()))
	}
	return s
}

// format returns the --format flag value, or the configured default.
func (a *app) format(flag string) string {
	if flag != "" {
		return flag
	}
	return a.cfg.Output.Format
}

func parseCategory(s string) (category.Category, error) {
	c, ok := category.Parse(s)
	if !ok {
		return 0, errors.Newf(errors.ErrInvalidInput, MsgErrUnknownCategory, s)
	}
	return c, nil
}

func categoryCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return category.Slugs(), cobra.ShellCompDirectiveNoFileComp
}

func say(cmd *cobra.Command, line string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
}

func warn(cmd *cobra.Command, msg string) {
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), style.Warning(msg))
}

// closeSession closes s, logging rather than failing on errors.
func closeSession(s *session.Session, w io.Writer) {
	if err := s.Close(); err != nil {
		_, _ = fmt.Fprintln(w, style.Warning(err.Error()))
	}
}
