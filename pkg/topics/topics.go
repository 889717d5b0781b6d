// Package topics adds help topics to a cobra command tree: "help <topic>"
// renders a document from an fs.FS, and "help topics" lists them.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shohamc1/mxbmm/pkg/errors"
)

// ListKeyword is the help argument that lists the topics.
const ListKeyword = "topics"

// Topic is one help document.
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Format is the topic's file extension, used to pick a rendering.
func (t *Topic) Format() string {
	return path.Ext(t.Path)
}

// Options configures a Manager.
type Options struct {
	// Extensions are the file extensions read as topics. Defaults to .md
	// and .txt.
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// Manager holds the loaded topics.
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Load reads every topic file under dir in fsys. A missing dir yields an
// empty manager.
func Load(fsys fs.FS, dir string, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".md", ".txt"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	if _, err := fs.Stat(fsys, dir); err != nil {
		return m, nil
	}

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		m.topics[strings.ToLower(name)] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to load help topics from %s", dir)
	}
	return m, nil
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Get finds a topic by name, ignoring case and leading dashes.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.ToLower(strings.TrimLeft(name, "-"))
	t, ok := m.topics[name]
	return t, ok
}

// Names lists the topic keys alphabetically.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes the rendered topic to w.
func (m *Manager) Render(w io.Writer, t *Topic) error {
	_, err := io.WriteString(w, m.renderer.Render(t.Content, t.Format()))
	return err
}

// WriteList writes the topic index for the command called rootName.
func (m *Manager) WriteList(w io.Writer, rootName string) {
	names := m.Names()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "No help topics available.")
		return
	}
	_, _ = fmt.Fprintln(w, "Help topics:")
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %s\n", name)
	}
	_, _ = fmt.Fprintf(w, "\nUse '%s help <topic>' to read one.\n", rootName)
}

// Install replaces the help command of rootCmd with one that also knows the
// topics, and makes --help on the root accept a topic name.
func (m *Manager) Install(rootCmd *cobra.Command) {
	defaultHelp := rootCmd.HelpFunc()
	name := rootCmd.Name()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: "Help provides help for any command or topic.\n\n" +
			"To see the available topics:\n  " + name + " help " + ListKeyword,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{ListKeyword}
			for _, c := range rootCmd.Commands() {
				if c.IsAvailableCommand() {
					completions = append(completions, c.Name())
				}
			}
			return append(completions, m.Names()...), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				defaultHelp(rootCmd, args)
				return nil
			}
			if args[0] == ListKeyword {
				m.WriteList(out, name)
				return nil
			}
			if t, ok := m.Get(args[0]); ok {
				return m.Render(out, t)
			}

			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				return errors.Newf(errors.ErrNotFound, "unknown help topic %q", strings.Join(args, " "))
			}
			defaultHelp(target, args)
			return nil
		},
	}

	rootCmd.SetHelpCommand(helpCmd)
}
