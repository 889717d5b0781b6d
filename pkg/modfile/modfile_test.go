package modfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"track.pkz", Package},
		{"/x/TRACK.PKZ", Package},
		{"rider.pnt", Paint},
		{"rider.Pnt", Paint},
		{"mod.zip", Archive},
		{"MOD.ZIP", Archive},
		{"mod.rar", Unsupported},
		{"pkz", Unsupported},
		{"noext", Unsupported},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestIsSingleFile(t *testing.T) {
	assert.True(t, IsSingleFile("a.pkz"))
	assert.True(t, IsSingleFile("a.PNT"))
	assert.False(t, IsSingleFile("a.zip"))
	assert.False(t, IsSingleFile("a.txt"))
}

func TestKindExtension(t *testing.T) {
	assert.Equal(t, ".pkz", Package.Extension())
	assert.Equal(t, ".pnt", Paint.Extension())
	assert.Equal(t, "", Archive.Extension())
	assert.Equal(t, "archive", Archive.String())
	assert.Equal(t, "unsupported", Unsupported.String())
}

func TestStem(t *testing.T) {
	assert.Equal(t, "cool", Stem("/dl/cool.pkz"))
	assert.Equal(t, "my.track", Stem("my.track.zip"))
	assert.Equal(t, "cool", Stem("cool"))
}

func TestWithExtension(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want string
	}{
		{"cool", ".pkz", "cool.pkz"},
		{"cool.pkz", ".pkz", "cool.pkz"},
		{"cool.PKZ", ".pkz", "cool.PKZ"},
		{"cool.pnt", ".pkz", "cool.pnt.pkz"},
		{"paint", ".pnt", "paint.pnt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithExtension(tt.name, tt.ext)
			assert.Equal(t, tt.want, got)
			// Applying it twice changes nothing.
			assert.Equal(t, got, WithExtension(got, tt.ext))
		})
	}
}
