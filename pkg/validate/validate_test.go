package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"ABCDE", true},
		{"MFVFLVLLPLVSSQCVNLTTRTQLPPAYTNSFTRGVYYPDKVFRSSVLHS", true},
		{"Z", true},
		{"abcde", false},
		{"AB12", false},
		{"", false},
		{"ABC DE", false},
		{" ABC", false},
		{"ABC\n", false},
		{"ABÇ", false},
		{"AB-C", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Sequence(tt.input))
		})
	}
}

func TestAllele(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"HLA-A*02:01", true},
		{"HLA-B*07:02", true},
		{"H2-KB", true},
		{"0", true},
		{"hla-a", false},
		{"A_01", false},
		{"", false},
		{"HLA-A*02:01 ", false},
		{"HLA/A", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Allele(tt.input))
		})
	}
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	const fallback = "./tempfile.csv"

	t.Run("Existing Parent Kept", func(t *testing.T) {
		want := filepath.Join(dir, "out.csv")
		got, substituted := OutputPath(want, fallback)
		assert.False(t, substituted)
		assert.Equal(t, want, got)
	})

	t.Run("Relative Path In Working Dir", func(t *testing.T) {
		got, substituted := OutputPath("./out.csv", fallback)
		assert.False(t, substituted)
		assert.Equal(t, "./out.csv", got)
	})

	t.Run("Bare File Name Kept", func(t *testing.T) {
		got, substituted := OutputPath("out.csv", fallback)
		assert.False(t, substituted)
		assert.Equal(t, "out.csv", got)
	})

	t.Run("Missing Parent Replaced", func(t *testing.T) {
		got, substituted := OutputPath(filepath.Join(dir, "nope", "out.csv"), fallback)
		assert.True(t, substituted)
		assert.Equal(t, fallback, got)
	})

	t.Run("Parent Is A File", func(t *testing.T) {
		file := filepath.Join(dir, "plain")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		got, substituted := OutputPath(filepath.Join(file, "out.csv"), fallback)
		assert.True(t, substituted)
		assert.Equal(t, fallback, got)
	})

	t.Run("Empty Path Replaced", func(t *testing.T) {
		got, substituted := OutputPath("", fallback)
		assert.True(t, substituted)
		assert.Equal(t, fallback, got)
	})
}
