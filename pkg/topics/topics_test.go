package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shohamc1/mxbmm/pkg/errors"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/metadata.md":      {Data: []byte("# Metadata\n\nThe sidecar file.")},
		"help/Layout.txt":       {Data: []byte("mods/tracks")},
		"help/nested/extra.md":  {Data: []byte("# Extra")},
		"help/ignored.json":     {Data: []byte("{}")},
		"elsewhere/outside.txt": {Data: []byte("not a topic")},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		want       []string
	}{
		{name: "default extensions", want: []string{"extra", "layout", "metadata"}},
		{name: "custom extensions", extensions: []string{".json"}, want: []string{"ignored"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(testFS(), "help", Options{Extensions: tt.extensions})
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Names())
		})
	}
}

func TestLoadMissingDir(t *testing.T) {
	m, err := Load(testFS(), "nope", Options{})
	require.NoError(t, err)
	assert.Empty(t, m.Names())

	var buf bytes.Buffer
	m.WriteList(&buf, "mxbmm")
	assert.Contains(t, buf.String(), "No help topics")
}

func TestGet(t *testing.T) {
	m, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)

	topic, ok := m.Get("--metadata")
	require.True(t, ok)
	assert.Equal(t, ".md", topic.Format())
	assert.Contains(t, topic.Content, "sidecar")

	_, ok = m.Get("outside")
	assert.False(t, ok)
}

func TestPlainRendererPassesThrough(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# x", r.Render("# x", ".md"))
}

func TestGlamourRendererLeavesTextAlone(t *testing.T) {
	r := NewGlamourRenderer(false)
	assert.Equal(t, "notty", r.Style)
	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))

	out := r.Render("# Title\n\nSome **bold** words.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
}

func newTestRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "mxbmm", SilenceErrors: true, SilenceUsage: true}
	root.AddCommand(&cobra.Command{Use: "install", Short: "Install a mod", Run: func(*cobra.Command, []string) {}})

	m, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)
	m.Install(root)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	return root, &buf
}

func TestHelpCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "topic list", args: []string{"help", ListKeyword}, want: "metadata"},
		{name: "topic", args: []string{"help", "metadata"}, want: "The sidecar file."},
		{name: "command", args: []string{"help", "install"}, want: "Install a mod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, buf := newTestRoot(t)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestHelpUnknownTopic(t *testing.T) {
	root, _ := newTestRoot(t)
	root.SetArgs([]string{"help", "bogus"})

	err := root.Execute()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "got %v", err)
}
