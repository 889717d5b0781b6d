package style

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shohamc1/mxbmm/pkg/errors"
)

func TestStatusPlain(t *testing.T) {
	Configure(true)

	tests := []struct {
		kind Kind
		want string
	}{
		{KindSuccess, "✓ done"},
		{KindWarning, "! done"},
		{KindError, "✗ done"},
		{KindInfo, "• done"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.kind, "done"))
		})
	}
}

func TestErrorHidesCode(t *testing.T) {
	Configure(true)

	err := errors.New(errors.ErrAlreadyExists, "destination already exists")
	assert.Equal(t, "✗ destination already exists", Error(err))

	wrapped := errors.Wrap(stderrors.New("disk full"), errors.ErrIO, "failed to write")
	assert.Equal(t, "✗ failed to write: disk full", Error(wrapped))

	assert.Equal(t, "✗ plain", Error(stderrors.New("plain")))
}

func TestHelpersPlain(t *testing.T) {
	Configure(true)

	assert.Equal(t, "/mods", Path("/mods"))
	assert.Equal(t, "Tracks", Heading("Tracks"))
	assert.Equal(t, "    x", Indent("x", 2))
}

func TestColorEnabledHonoursNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(os.Stdout))
}
