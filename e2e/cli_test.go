//go:build e2e && unix

package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	t.Parallel()
	srv := newCatalogServer(t)
	tf := NewTUITest(t, srv.URL)

	out, err := tf.RunCLI("list", "--filter", "py")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Found 2 templates matching 'py':")
	assert.Contains(t, out, "pycharm")
	assert.Contains(t, out, "python")
}

func TestGetCommandWritesFile(t *testing.T) {
	t.Parallel()
	srv := newCatalogServer(t)
	tf := NewTUITest(t, srv.URL)

	out, err := tf.RunCLI("get", "rust", "go", "--output", tf.OutputPath())
	require.NoError(t, err, out)
	assert.Contains(t, out, "✓ Saved to")
	assert.Contains(t, srv.Requests(), "go,rust")

	data, err := os.ReadFile(tf.OutputPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "rust-build/")

	out, err = tf.RunCLI("get", "node", "--output", tf.OutputPath())
	require.Error(t, err)
	assert.Contains(t, out, "already exists")
}

func TestTestCommandFailsWhenServiceIsDown(t *testing.T) {
	t.Parallel()
	srv := newFailingCatalog(t)
	tf := NewTUITest(t, srv.URL)

	out, err := tf.RunCLI("test")
	require.Error(t, err)
	assert.True(t, strings.Contains(out, "failed to connect to template service"), out)
}

func TestNonInteractiveRootRefuses(t *testing.T) {
	t.Parallel()
	srv := newCatalogServer(t)
	tf := NewTUITest(t, srv.URL)

	out, err := tf.RunCLI()
	require.Error(t, err)
	assert.Contains(t, out, "interactive terminal")
}
