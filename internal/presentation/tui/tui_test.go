package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "v1.2.3")

	out := buf.String()
	assert.Contains(t, out, "mhcflurry wrapper v1.2.3")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), len(bannerLines)+2)
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()
	out, err := render("**Tools available are:**")
	require.NoError(t, err)
	assert.Contains(t, out, "Tools available are:")
}

func TestIsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.False(t, IsTerminal(nil))
}
