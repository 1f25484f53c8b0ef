package main

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/lixenwraith/asciihex/codetable"
	"github.com/lixenwraith/asciihex/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFind(t *testing.T) {
	var out bytes.Buffer
	code := runFind(&out, codetable.Default(), " 11 ")

	assert.Equal(t, 0, code)
	assert.Equal(t,
		"[11] | Dec: 11 | Hex: B\n[17] | Dec: 17 | Hex: 11\n",
		out.String())
}

func TestRunFindNoMatch(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 1, runFind(&out, codetable.Default(), "nothing"))
	assert.Zero(t, out.Len())
}

func TestRunPrint(t *testing.T) {
	cfg := config.Default()
	cfg.Delimiter = '|'

	var out bytes.Buffer
	require.Equal(t, 0, runPrint(&out, cfg, codetable.Default()))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, 129)
	assert.Equal(t, "Dec|Hex|Char", lines[0])
	assert.Equal(t, "65|41|A", lines[66])
}

func TestRunExport(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.Equal(t, 0, runExport(fs, config.Default(), codetable.Default(), "t.csv"))

	data, err := afero.ReadFile(fs, "t.csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Dec,Hex,Char\n0,0,[0]\n"))

	ro := afero.NewReadOnlyFs(afero.NewMemMapFs())
	assert.Equal(t, 1, runExport(ro, config.Default(), codetable.Default(), "t.csv"))
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	fs := afero.NewMemMapFs()
	closer, err := setupLogging(fs, "asciihex.log")
	require.NoError(t, err)
	defer closer.Close()

	exists, _ := afero.Exists(fs, "asciihex.log")
	assert.True(t, exists)
}
