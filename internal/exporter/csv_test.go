package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")

	err := NewCSVWriter(nil).WriteCSV(path, WriteOptions{
		Headers: []string{"Genre", "Count"},
		Records: [][]string{
			{"Dramas", "12"},
			{"Action, Adventure", "7"},
		},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Genre,Count\nDramas,12\n\"Action, Adventure\",7\n", string(data))
}

func TestWriteSimpleCSV_AddsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := NewCSVWriter(nil).WriteSimpleCSV(path, []string{"Year", "Count"}, [][]string{{"2020", "3"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	assert.Equal(t, "Year,Count\n2020,3\n", string(data[3:]))
}

func TestWriteCSV_NoHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := NewCSVWriter(nil).WriteCSV(path, WriteOptions{
		Records: [][]string{{"a", "b"}},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
}
