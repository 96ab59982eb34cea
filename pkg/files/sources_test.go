// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trexplorer/labelprep/pkg/files"
)

func TestLocalFileSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.txt")
	require.NoError(t, os.WriteFile(path, []byte("MATH 101\n"), 0600))

	fs, err := files.NewFiles([]string{path})
	require.NoError(t, err)
	require.Len(t, fs, 1)

	data, err := fs[0].Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte("MATH 101\n"), data)
}

func TestNewFilesMissingPath(t *testing.T) {
	_, err := files.NewFiles([]string{filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Checking file")
}

func TestNewFilesRejectsDirectory(t *testing.T) {
	_, err := files.NewFiles([]string{t.TempDir()})
	require.Error(t, err)
	require.Contains(t, err.Error(), "to not be a directory")
}

func TestBytesSource(t *testing.T) {
	src := files.NewBytesSource("labels.txt", []byte("CHEM 200\n"))

	file, err := files.NewFileFromSource(src)
	require.NoError(t, err)
	require.Equal(t, "labels.txt", file.RelativePath())

	data, err := file.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte("CHEM 200\n"), data)
}
