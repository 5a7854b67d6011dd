package genetic

import (
	"bytes"
	"compress/gzip"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint_gen7.gz")
	chromosomes := []Chromosome{
		NewChromosome([]float32{0.123, -4.5, 999}),
		NewChromosome([]float32{1, 2, 3}),
		NewChromosome([]float32{-0.001, 0, 0.001}),
	}

	require.NoError(t, SaveCheckpoint(path, 7, chromosomes))

	generation, loaded, err := LoadCheckpoint(path)
	require.NoError(t, err)
	assert.Equal(t, 7, generation)
	require.Len(t, loaded, len(chromosomes))
	for i := range chromosomes {
		assert.True(t, chromosomes[i].Equal(loaded[i], 0.0005), "chromosome %d: %v", i, loaded[i].Genes())
	}
}

func TestCheckpointEmptyChromosomes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCheckpoint(&buf, 0, []Chromosome{NewChromosome(nil), NewChromosome([]float32{1})}))

	_, loaded, err := ReadCheckpoint(&buf)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 0, loaded[0].Len())
	assert.Equal(t, []float32{1}, loaded[1].Genes())
}

func gzipped(t *testing.T, text string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf
}

func TestReadCheckpointErrors(t *testing.T) {
	for name, text := range map[string]string{
		"empty":       "",
		"header":      "something else\n",
		"no size":     checkpointHeader + "\n",
		"bad size":    checkpointHeader + "\ngeneration x size 1\n",
		"negative":    checkpointHeader + "\ngeneration 1 size -1\n",
		"truncated":   checkpointHeader + "\ngeneration 1 size 3\nhgau\nhgau\n",
		"invalid dna": checkpointHeader + "\ngeneration 1 size 1\nhg1u\n",
		"huge size":   checkpointHeader + "\ngeneration 1 size 999999999999999\nhgau\n",
	} {
		_, _, err := ReadCheckpoint(gzipped(t, text))
		assert.Error(t, err, name)
	}

	_, _, err := ReadCheckpoint(gzipped(t, checkpointHeader+"\ngeneration 1 size 1\nhg-1u\n"))
	assert.ErrorIs(t, err, ErrInvalidDNA)

	_, _, err = ReadCheckpoint(bytes.NewBufferString("not gzip"))
	assert.Error(t, err)

	_, _, err = LoadCheckpoint(filepath.Join(t.TempDir(), "missing.gz"))
	assert.Error(t, err)
}

func TestSaveCheckpointBadPath(t *testing.T) {
	err := SaveCheckpoint(filepath.Join(t.TempDir(), "missing", "checkpoint.gz"), 1, nil)
	assert.Error(t, err)
}
