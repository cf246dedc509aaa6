package errs

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrMessage(t *testing.T) {
	e := Errorf(BadArgument, "avg_size must be at least 1, got %d", 0)
	assert.Equal(t, "avg_size must be at least 1, got 0", e.Error())

	w := Wrap(IO, os.ErrPermission, "creating out.txt")
	assert.Equal(t, "creating out.txt: permission denied", w.Error())
	assert.True(t, errors.Is(w, os.ErrPermission))

	assert.Nil(t, Wrap(IO, nil, "unused"))
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("run: %w", Errorf(BadArgument, "missing path"))
	assert.Equal(t, BadArgument, CodeOf(wrapped))
	assert.Equal(t, IO, CodeOf(Wrap(IO, errors.New("disk full"), "")))
	assert.Equal(t, Code(0), CodeOf(errors.New("plain")))
	assert.Equal(t, Code(0), CodeOf(nil))
}

func TestExitStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{nil, 0},
		{Errorf(BadArgument, "x"), 2},
		{fmt.Errorf("ctx: %w", Errorf(BadArgument, "x")), 2},
		{Wrap(IO, errors.New("short write"), "writing"), 1},
		{errors.New("unclassified"), 1},
	}
	for i, test := range tests {
		assert.Equal(t, test.status, ExitStatus(test.err), i)
	}
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "bad argument", BadArgument.String())
	assert.Equal(t, "i/o", IO.String())
	assert.Equal(t, "code 9", Code(9).String())
}
