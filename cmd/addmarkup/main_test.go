package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMarkup(t *testing.T) {
	in := `[
		{"name":"Rolex X","price":"10000","img":"rolex.jpg"},
		{"name":"No price"},
		{"name":"Bad price","price":"call us"}
	]`

	out, err := addMarkup([]byte(in), 5000)
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &records))
	require.Len(t, records, 3)

	assert.Equal(t, "15000", records[0]["price"])
	assert.Equal(t, "rolex.jpg", records[0]["img"])
	assert.Equal(t, "5000", records[1]["price"])
	assert.Equal(t, "5000", records[2]["price"])
}

func TestAddMarkupRejectsNonArray(t *testing.T) {
	_, err := addMarkup([]byte(`{"name":"Rolex X"}`), 5000)
	assert.Error(t, err)

	_, err = addMarkup([]byte(`not json`), 5000)
	assert.Error(t, err)
}

func TestRunWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	infile := filepath.Join(dir, "watches.json")
	outfile := filepath.Join(dir, "watches.updated.json")

	require.NoError(t, os.WriteFile(infile, []byte(`[{"name":"Rolex X","price":"10000"}]`), 0644))
	require.NoError(t, run(infile, outfile, 5000))

	data, err := os.ReadFile(outfile)
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &records))
	assert.Equal(t, "15000", records[0]["price"])

	// the input file is never touched
	original, err := os.ReadFile(infile)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Rolex X","price":"10000"}]`, string(original))
}

func TestRunFailsOnMissingInput(t *testing.T) {
	dir := t.TempDir()
	outfile := filepath.Join(dir, "out.json")

	assert.Error(t, run(filepath.Join(dir, "missing.json"), outfile, 5000))

	// nothing is written on failure
	_, err := os.Stat(outfile)
	assert.True(t, os.IsNotExist(err))
}
