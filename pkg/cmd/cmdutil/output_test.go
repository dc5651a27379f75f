package cmdutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileLocked(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "chart.svg")

	err := WriteFileLocked(filename, func(w io.Writer) error {
		_, err := io.WriteString(w, "<svg></svg>")
		return err
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "<svg></svg>", string(content))
}

func TestWriteFileLocked_Error(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "chart.svg")

	err := WriteFileLocked(filename, func(w io.Writer) error {
		return errors.New("render failed")
	})
	assert.EqualError(t, err, "render failed")
}
