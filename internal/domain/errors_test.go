package domain

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindsSurviveWrapping(t *testing.T) {
	base := errors.New("boom")

	netErr := fmt.Errorf("load catalog: %w", &NetworkError{Op: "list", Err: base})
	assert.True(t, IsNetwork(netErr))
	assert.False(t, IsParse(netErr))
	assert.ErrorIs(t, netErr, base)

	parseErr := fmt.Errorf("load catalog: %w", &ParseError{Op: "list", Err: base})
	assert.True(t, IsParse(parseErr))
	assert.False(t, IsPersistence(parseErr))

	persistErr := &PersistenceError{Op: "write usage", Path: "/tmp/x", Err: os.ErrPermission}
	assert.True(t, IsPersistence(persistErr))
	assert.ErrorIs(t, persistErr, os.ErrPermission)
}

func TestErrorMessages(t *testing.T) {
	err := &PersistenceError{Op: "append", Path: ".gitignore", Err: errors.New("disk full")}
	require.Equal(t, "append .gitignore: disk full", err.Error())

	noPath := &PersistenceError{Op: "append", Err: errors.New("disk full")}
	require.Equal(t, "append: disk full", noPath.Error())

	netErr := &NetworkError{Op: "list", Err: errors.New("timeout")}
	require.Contains(t, netErr.Error(), "timeout")

	renderErr := &RenderError{Op: "frame", Err: errors.New("index out of range")}
	require.Equal(t, "render frame: index out of range", renderErr.Error())
}

func TestSaveModeString(t *testing.T) {
	assert.Equal(t, "new", SaveNew.String())
	assert.Equal(t, "overwrite", SaveOverwrite.String())
	assert.Equal(t, "append", SaveAppend.String())
}
