package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/asciihex/codetable"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, 0)

	require.NoError(t, w.Write("table.csv", codetable.Default()))

	data, err := afero.ReadFile(fs, "table.csv")
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 129)

	assert.Equal(t, []string{"Dec", "Hex", "Char"}, records[0])
	assert.Equal(t, []string{"0", "0", "[0]"}, records[1])
	assert.Equal(t, []string{"44", "2C", ","}, records[45])
	assert.Equal(t, []string{"65", "41", "A"}, records[66])
	assert.Equal(t, []string{"127", "7F", "[127]"}, records[128])
}

func TestEncodeQuoting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, codetable.Default(), ','))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 129)
	assert.Equal(t, "Dec,Hex,Char", lines[0])
	assert.Equal(t, `34,22,""""`, lines[35])
	assert.Equal(t, `44,2C,","`, lines[45])
	assert.Equal(t, "65,41,A", lines[66])
}

func TestEncodeReproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Encode(&a, codetable.Build(), ';'))
	require.NoError(t, Encode(&b, codetable.Build(), ';'))
	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.True(t, strings.HasPrefix(a.String(), "Dec;Hex;Char\n"))
}

func TestEncodeTabDelimiter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, codetable.Default(), '\t'))
	assert.Contains(t, buf.String(), "\n65\t41\tA\n")
}

func TestEncodeBadDelimiter(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, codetable.Default(), '"')
	assert.True(t, errors.Is(err, ErrBadDelimiter))
	assert.Zero(t, buf.Len())
}

func TestWriteTruncates(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "t.csv", bytes.Repeat([]byte("x"), 10000), 0o644))

	require.NoError(t, NewWriter(fs, ',').Write("t.csv", codetable.Default()))

	data, err := afero.ReadFile(fs, "t.csv")
	require.NoError(t, err)
	assert.NotContains(t, string(data), "xxx")
}

func TestWriteReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := NewWriter(fs, ',').Write("t.csv", codetable.Default())
	require.Error(t, err)
	assert.Contains(t, FailureMessage(err), "Failed to export: export t.csv")
}

func TestWriteEmptyPath(t *testing.T) {
	assert.Error(t, NewWriter(afero.NewMemMapFs(), ',').Write("", codetable.Default()))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "Table exported successfully to a.csv", SuccessMessage("a.csv"))
	assert.Equal(t, "Failed to export: boom", FailureMessage(errors.New("boom")))
}
