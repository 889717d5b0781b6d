package install

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shohamc1/mxbmm/pkg/category"
	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/filesystem"
	"github.com/shohamc1/mxbmm/pkg/modfile"
	"github.com/shohamc1/mxbmm/pkg/staging"
	"github.com/shohamc1/mxbmm/pkg/testutil"
)

const modsRoot = "/mods"

// faultyFS fails writes to paths matching failOn.
type faultyFS struct {
	filesystem.FS
	failOn func(name string) bool
}

var errInjected = stderrors.New("injected failure")

func (f *faultyFS) OpenFile(name string, flag int, perm fs.FileMode) (filesystem.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR) != 0 && f.failOn(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: errInjected}
	}
	return f.FS.OpenFile(name, flag, perm)
}

func (f *faultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.failOn(name) {
		return &fs.PathError{Op: "write", Path: name, Err: errInjected}
	}
	return f.FS.WriteFile(name, data, perm)
}

func stage(t *testing.T, fsys filesystem.FS, path string) *staging.PendingInstall {
	t.Helper()
	p, err := staging.NewStager(fsys, "/tmp", category.Tracks).Stage(path)
	require.NoError(t, err)
	return p
}

func stageArchive(t *testing.T, fsys filesystem.FS) *staging.PendingInstall {
	t.Helper()
	zipPath := testutil.WriteZip(t, fsys, "/downloads/pack.zip",
		testutil.ZipEntry{Name: "Pack/"},
		testutil.ZipEntry{Name: "Pack/a.txt", Content: "alpha"},
		testutil.ZipEntry{Name: "Pack/sub/b.txt", Content: "bravo"},
	)
	return stage(t, fsys, zipPath)
}

func TestCommitArchiveRoundTrip(t *testing.T) {
	fsys := filesystem.NewMemory()
	p := stageArchive(t, fsys)
	require.Equal(t, "Pack", p.Name)
	extractDir := p.Source.(*staging.ArchiveSource).ExtractDir

	p.Name = "MyMod"
	p.Version = "  1.2 "
	p.Notes = "line one\nline two"

	out, err := NewEngine(fsys).Commit(modsRoot, p)
	require.NoError(t, err)

	dest := filepath.Join(modsRoot, "tracks", "MyMod")
	assert.Equal(t, dest, out.Destination)
	assert.Equal(t, modfile.Archive, out.Kind)
	assert.Equal(t, category.Tracks, out.Category)
	assert.Equal(t, 2, out.FilesCopied)
	assert.NoError(t, out.MetadataWarning)
	assert.Equal(t, "Installed mod to "+dest, out.Message())

	assert.Equal(t, "alpha", testutil.ReadFile(t, fsys, filepath.Join(dest, "a.txt")))
	assert.Equal(t, "bravo", testutil.ReadFile(t, fsys, filepath.Join(dest, "sub", "b.txt")))
	testutil.AssertNotExists(t, fsys, filepath.Join(dest, "Pack"))

	meta := testutil.ReadFile(t, fsys, filepath.Join(dest, MetadataFileName))
	assert.Equal(t, "install_target=tracks\n"+
		"version=1.2\n"+
		"archive=/downloads/pack.zip\n"+
		`notes=line one\nline two`+"\n", meta)

	testutil.AssertNotExists(t, fsys, extractDir)
	assert.True(t, p.Released())
}

func TestCommitArchiveWithoutSingleRoot(t *testing.T) {
	fsys := filesystem.NewMemory()
	zipPath := testutil.WriteZip(t, fsys, "/downloads/loose.zip",
		testutil.ZipEntry{Name: "one.txt", Content: "1"},
		testutil.ZipEntry{Name: "two/two.txt", Content: "2"},
	)
	p := stage(t, fsys, zipPath)
	require.Equal(t, "loose", p.Name)
	p.Category = category.BikesMotocross

	out, err := NewEngine(fsys).Commit(modsRoot, p)
	require.NoError(t, err)

	dest := filepath.Join(modsRoot, "bikes", "motocross", "loose")
	assert.Equal(t, dest, out.Destination)
	assert.Equal(t, "1", testutil.ReadFile(t, fsys, filepath.Join(dest, "one.txt")))
	assert.Equal(t, "2", testutil.ReadFile(t, fsys, filepath.Join(dest, "two", "two.txt")))
}

func TestCommitEmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		t.Run(strings.ReplaceAll(name, "\t", "tab"), func(t *testing.T) {
			fsys := filesystem.NewMemory()
			p := stageArchive(t, fsys)
			extractDir := p.Source.(*staging.ArchiveSource).ExtractDir
			p.Name = name

			out, err := NewEngine(fsys).Commit(modsRoot, p)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyName))

			assert.Equal(t, name, p.Name)
			assert.False(t, p.Released())
			assert.True(t, filesystem.Exists(fsys, extractDir))
			testutil.AssertNotExists(t, fsys, modsRoot)
		})
	}
}

func TestCommitRejectsUnsafeNames(t *testing.T) {
	tests := []struct {
		name       string
		installAs  string
		category   category.Category
		singleFile bool
	}{
		{name: "parent escape", installAs: "../../outside", category: category.Tracks},
		{name: "dot dot", installAs: "..", category: category.Tracks},
		{name: "dot", installAs: ".", category: category.Tracks},
		{name: "nested path", installAs: "a/b", category: category.Tracks},
		{name: "backslash", installAs: `a\b`, category: category.Tracks},
		{name: "nested category folder", installAs: "paints", category: category.RiderModels},
		{name: "nested category folder any case", installAs: "Gloves", category: category.RiderModels},
		{name: "single file escape", installAs: "../cool", category: category.Tracks, singleFile: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := filesystem.NewMemory()
			var p *staging.PendingInstall
			if tt.singleFile {
				testutil.WriteFile(t, fsys, "/downloads/cool.pkz", "payload")
				p = stage(t, fsys, "/downloads/cool.pkz")
			} else {
				p = stageArchive(t, fsys)
			}
			p.Name = tt.installAs
			p.Category = tt.category

			out, err := NewEngine(fsys).Commit(modsRoot, p)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
			assert.True(t, errors.IsUserCorrectable(err))

			assert.False(t, p.Released())
			testutil.AssertNotExists(t, fsys, modsRoot)
			testutil.AssertNotExists(t, fsys, "/outside")
		})
	}
}

func TestCommitSingleFileMayShareNestedCategoryName(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteFile(t, fsys, "/downloads/cool.pkz", "payload")
	p := stage(t, fsys, "/downloads/cool.pkz")
	p.Name = "paints"
	p.Category = category.RiderModels

	out, err := NewEngine(fsys).Commit(modsRoot, p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(modsRoot, "rider", "riders", "paints.pkz"), out.Destination)
}

func TestCommitArchiveAlreadyExists(t *testing.T) {
	fsys := filesystem.NewMemory()
	existing := filepath.Join(modsRoot, "tracks", "Pack")
	testutil.WriteFile(t, fsys, filepath.Join(existing, "keep.txt"), "original")

	p := stageArchive(t, fsys)
	out, err := NewEngine(fsys).Commit(modsRoot, p)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.True(t, errors.IsUserCorrectable(err))

	entries, err := fsys.ReadDir(existing)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "original", testutil.ReadFile(t, fsys, filepath.Join(existing, "keep.txt")))
	assert.False(t, p.Released())

	// renaming resolves the collision
	p.Name = "Pack2"
	_, err = NewEngine(fsys).Commit(modsRoot, p)
	require.NoError(t, err)
}

func TestCommitArchiveCopyFailureRollsBack(t *testing.T) {
	mem := filesystem.NewMemory()
	p := stageArchive(t, mem)
	extractDir := p.Source.(*staging.ArchiveSource).ExtractDir

	fsys := &faultyFS{FS: mem, failOn: func(name string) bool {
		return strings.HasSuffix(name, "b.txt") && strings.HasPrefix(name, modsRoot)
	}}

	out, err := NewEngine(fsys).Commit(modsRoot, p)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCopyFailed))
	assert.ErrorIs(t, err, errInjected)

	testutil.AssertNotExists(t, mem, filepath.Join(modsRoot, "tracks", "Pack"))
	assert.True(t, filesystem.Exists(mem, extractDir))
	assert.False(t, p.Released())
}

func TestCommitMetadataFailureIsWarning(t *testing.T) {
	mem := filesystem.NewMemory()
	p := stageArchive(t, mem)

	fsys := &faultyFS{FS: mem, failOn: func(name string) bool {
		return filepath.Base(name) == MetadataFileName
	}}

	out, err := NewEngine(fsys).Commit(modsRoot, p)
	require.NoError(t, err)
	require.Error(t, out.MetadataWarning)

	dest := filepath.Join(modsRoot, "tracks", "Pack")
	assert.Equal(t, "alpha", testutil.ReadFile(t, mem, filepath.Join(dest, "a.txt")))
	assert.True(t, strings.HasPrefix(out.Message(), "Installed, but failed to write metadata file in "+dest))
	assert.True(t, p.Released())
}

func TestCommitSingleFileExtension(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		newName  string
		category category.Category
		want     string
	}{
		{"package keeps stem", "/downloads/cool.pkz", "cool", category.Tracks, "tracks/cool.pkz"},
		{"package with extension", "/downloads/cool.pkz", "cool.PKZ", category.Tracks, "tracks/cool.PKZ"},
		{"package trimmed", "/downloads/cool.pkz", "  cool  ", category.Tracks, "tracks/cool.pkz"},
		{"paint", "/downloads/red.pnt", "red", category.RiderPaints, "rider/riders/paints/red.pnt"},
		{"paint recategorized", "/downloads/red.pnt", "blue", category.HelmetPaints, "rider/helmets/paints/blue.pnt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := filesystem.NewMemory()
			testutil.WriteFile(t, fsys, tt.input, "payload")
			p := stage(t, fsys, tt.input)
			p.Name = tt.newName
			p.Category = tt.category

			out, err := NewEngine(fsys).Commit(modsRoot, p)
			require.NoError(t, err)

			want := filepath.Join(modsRoot, filepath.FromSlash(tt.want))
			assert.Equal(t, want, out.Destination)
			assert.Equal(t, 1, out.FilesCopied)
			assert.Equal(t, "Installed mod file to "+want, out.Message())
			assert.Equal(t, "payload", testutil.ReadFile(t, fsys, want))
			assert.Equal(t, "payload", testutil.ReadFile(t, fsys, tt.input))
			testutil.AssertNotExists(t, fsys, filepath.Join(filepath.Dir(want), MetadataFileName))
		})
	}
}

func TestCommitSingleFileAlreadyExists(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteFile(t, fsys, "/downloads/cool.pkz", "new")
	existing := testutil.WriteFile(t, fsys, filepath.Join(modsRoot, "tracks", "cool.pkz"), "old")

	p := stage(t, fsys, "/downloads/cool.pkz")
	_, err := NewEngine(fsys).Commit(modsRoot, p)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.Equal(t, "old", testutil.ReadFile(t, fsys, existing))
}

func TestCommitSingleFileCopyFailure(t *testing.T) {
	mem := filesystem.NewMemory()
	testutil.WriteFile(t, mem, "/downloads/cool.pkz", "payload")
	p := stage(t, mem, "/downloads/cool.pkz")

	fsys := &faultyFS{FS: mem, failOn: func(name string) bool {
		return strings.HasPrefix(name, modsRoot)
	}}

	_, err := NewEngine(fsys).Commit(modsRoot, p)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCopyFailed))
	testutil.AssertNotExists(t, mem, filepath.Join(modsRoot, "tracks", "cool.pkz"))
}

func TestCommitOnDisk(t *testing.T) {
	fsys := filesystem.NewOS()
	dir := t.TempDir()
	zipPath := testutil.WriteZip(t, fsys, filepath.Join(dir, "dl", "Track.zip"),
		testutil.ZipEntry{Name: "Track/track.edf", Content: "edf"},
	)
	p, err := staging.NewStager(fsys, filepath.Join(dir, "tmp"), category.Tracks).Stage(zipPath)
	require.NoError(t, err)

	root := filepath.Join(dir, "mods")
	out, err := NewEngine(fsys).Commit(root, p)
	require.NoError(t, err)
	assert.Equal(t, "edf", testutil.ReadFile(t, fsys, filepath.Join(root, "tracks", "Track", "track.edf")))
	assert.FileExists(t, filepath.Join(out.Destination, MetadataFileName))
}

func TestMetadataRender(t *testing.T) {
	m := Metadata{
		InstallTarget: category.RiderModels.RelativePath(),
		Version:       "\tv3 ",
		Archive:       "/a/b.zip",
		Notes:         "",
	}
	assert.Equal(t, "install_target=rider/riders\nversion=v3\narchive=/a/b.zip\nnotes=\n", string(m.Render()))
}

func TestOutcomeMessageKinds(t *testing.T) {
	warn := &Outcome{Destination: "/d", Kind: modfile.Archive, MetadataWarning: stderrors.New("disk full")}
	assert.Equal(t, "Installed, but failed to write metadata file in /d: disk full", warn.Message())

	paint := &Outcome{Destination: "/d/x.pnt", Kind: modfile.Paint}
	assert.Equal(t, "Installed mod file to /d/x.pnt", paint.Message())
}

