package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestReadWords(t *testing.T) {
	words, err := readWords(strings.NewReader("b\n  a \n\n\tc\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a", "c"}, words)
}

func TestLoadWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644))
	words, err := loadWords(path)
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta"}, words)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("\n\n"), 0o644))
	_, err = loadWords(empty)
	require.Error(t, err)

	_, err = loadWords(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	require.Equal(t, 10000, cfg.lookups)
	require.Equal(t, 100, cfg.degenerate)

	cfg, err = parseFlags([]string{"-words", "dict.txt", "-lookups", "5", "-degree", "4"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "dict.txt", cfg.words)
	require.Equal(t, 5, cfg.lookups)
	require.Equal(t, 4, cfg.degree)

	_, err = parseFlags([]string{"-degree", "1"}, io.Discard)
	require.Error(t, err)
	_, err = parseFlags([]string{"-lookups", "-1"}, io.Discard)
	require.Error(t, err)
	_, err = parseFlags([]string{"-nope"}, io.Discard)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()

	words := make([]string, 300)
	for i := range words {
		words[i] = strings.Repeat("w", i/26+1) + string(rune('a'+i%26))
	}
	cfg, err := parseFlags([]string{"-lookups", "200", "-degenerate", "20", "-degree", "3"}, io.Discard)
	require.NoError(t, err)
	res := run(cfg, words)
	require.Len(t, res, 9)
	names := make([]string, len(res))
	for i, r := range res {
		names[i] = r.Name
		require.Equal(t, r.Ops, r.Hits, "%s missed words", r.Name)
		require.NotEmpty(t, r.String())
	}
	require.Equal(t, []string{"list", "BST, file order", "BST, random order", "BST, rebalanced",
		"google/btree (degree 3)", "GoLLRB", "haxmap", "cornelk/hashmap", "xsync.MapOf"}, names)
	require.Equal(t, 20, res[1].Ops)
	require.Contains(t, res[3].Extra, "balanced true")
}
