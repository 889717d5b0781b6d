package mxbmm

import (
	"embed"
	"os"

	"github.com/spf13/cobra"

	"github.com/shohamc1/mxbmm/pkg/style"
	"github.com/shohamc1/mxbmm/pkg/topics"
)

//go:embed topics/*.md
var topicsFS embed.FS

// installTopics adds the help topics to rootCmd.
func installTopics(rootCmd *cobra.Command) error {
	m, err := topics.Load(topicsFS, "topics", topics.Options{
		Renderer: topics.NewGlamourRenderer(style.ColorEnabled(os.Stdout)),
	})
	if err != nil {
		return err
	}
	m.Install(rootCmd)
	rootCmd.SetHelpCommandGroupID("misc")
	return nil
}
