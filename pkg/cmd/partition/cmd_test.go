// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

package partition_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	cmdpart "github.com/trexplorer/labelprep/pkg/cmd/partition"
	cmdui "github.com/trexplorer/labelprep/pkg/cmd/ui"
	"github.com/trexplorer/labelprep/pkg/files"
	"github.com/trexplorer/labelprep/pkg/partition"
)

func TestPartitionCmd(t *testing.T) {
	labelsData := []byte(`MATH 101 intro
CHEM 200 basics
MATH 101 intro
MATH 250 adv
`)

	filesToProcess := []*files.File{
		files.MustNewFileFromSource(files.NewBytesSource("labels.txt", labelsData)),
	}

	ui := cmdui.NewTTY(false)
	opts := cmdpart.NewOptions()

	out := opts.RunWithFiles(cmdpart.PartitionInput{Files: filesToProcess}, ui)
	require.NoError(t, out.Err)

	require.Equal(t, []string{"CHEM", "MATH"}, out.GroupNames)
	require.Len(t, out.Files, 2)

	require.Equal(t, "CHEM", out.Files[0].RelativePath())
	require.Equal(t, "CHEM 200 basics\n", string(out.Files[0].Bytes()))

	require.Equal(t, "MATH", out.Files[1].RelativePath())
	require.Equal(t, "MATH 101 intro\nMATH 250 adv\n", string(out.Files[1].Bytes()))
}

func TestPartitionCmdMergesMultipleInputs(t *testing.T) {
	filesToProcess := []*files.File{
		files.MustNewFileFromSource(files.NewBytesSource("a.txt", []byte("MATH 101\nBIO 110\n"))),
		files.MustNewFileFromSource(files.NewBytesSource("b.txt", []byte("MATH 101\nCHEM 200\n"))),
	}

	ui := cmdui.NewTTY(false)
	out := cmdpart.NewOptions().RunWithFiles(cmdpart.PartitionInput{Files: filesToProcess}, ui)
	require.NoError(t, out.Err)

	require.Equal(t, []string{"BIO", "CHEM", "MATH"}, out.GroupNames)
}

func TestPartitionCmdEmptyInput(t *testing.T) {
	filesToProcess := []*files.File{
		files.MustNewFileFromSource(files.NewBytesSource("labels.txt", nil)),
	}

	ui := cmdui.NewTTY(false)
	out := cmdpart.NewOptions().RunWithFiles(cmdpart.PartitionInput{Files: filesToProcess}, ui)
	require.NoError(t, out.Err)
	require.Empty(t, out.Files)
	require.Empty(t, out.GroupNames)
}

func TestPartitionCmdBlankPolicy(t *testing.T) {
	data := []byte("MATH 101\n\n   \n")

	ui := cmdui.NewTTY(false)

	out := cmdpart.NewOptions().RunWithFiles(cmdpart.PartitionInput{
		Files:       []*files.File{files.MustNewFileFromSource(files.NewBytesSource("labels.txt", data))},
		BlankPolicy: partition.BlankSkip,
	}, ui)
	require.NoError(t, out.Err)
	require.Equal(t, []string{"MATH"}, out.GroupNames)
	require.Equal(t, 2, out.SkippedBlank)

	out = cmdpart.NewOptions().RunWithFiles(cmdpart.PartitionInput{
		Files:       []*files.File{files.MustNewFileFromSource(files.NewBytesSource("labels.txt", data))},
		BlankPolicy: partition.BlankError,
	}, ui)
	require.Error(t, out.Err)
}

func TestPartitionCmdInvalidGroupKey(t *testing.T) {
	data := []byte("../escape attempt\n")

	ui := cmdui.NewTTY(false)
	out := cmdpart.NewOptions().RunWithFiles(cmdpart.PartitionInput{
		Files: []*files.File{files.MustNewFileFromSource(files.NewBytesSource("labels.txt", data))},
	}, ui)
	require.Error(t, out.Err)
	require.Contains(t, out.Err.Error(), "Invalid group key")
}

func TestPartitionCmdRun(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "labels.txt")
	outputDir := filepath.Join(dir, "groups")

	require.NoError(t, os.WriteFile(inputPath,
		[]byte("MATH 101 intro\nCHEM 200 basics\nMATH 101 intro\nMATH 250 adv\n"), 0600))

	opts := cmdpart.NewOptions()
	opts.Files = []string{inputPath}
	opts.OutputDir = outputDir
	opts.Yes = true

	require.NoError(t, opts.Run())

	mathData, err := os.ReadFile(filepath.Join(outputDir, "MATH"))
	require.NoError(t, err)
	require.Equal(t, "MATH 101 intro\nMATH 250 adv\n", string(mathData))

	chemData, err := os.ReadFile(filepath.Join(outputDir, "CHEM"))
	require.NoError(t, err)
	require.Equal(t, "CHEM 200 basics\n", string(chemData))
}

func TestPartitionCmdRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "labels.txt")
	outputDir := filepath.Join(dir, "groups")

	require.NoError(t, os.WriteFile(inputPath, []byte("MATH 101\nCHEM 200\n"), 0600))

	run := func() map[string]string {
		opts := cmdpart.NewOptions()
		opts.Files = []string{inputPath}
		opts.OutputDir = outputDir
		opts.Yes = true
		require.NoError(t, opts.Run())

		entries, err := os.ReadDir(outputDir)
		require.NoError(t, err)

		contents := map[string]string{}
		for _, entry := range entries {
			data, err := os.ReadFile(filepath.Join(outputDir, entry.Name()))
			require.NoError(t, err)
			contents[entry.Name()] = string(data)
		}
		return contents
	}

	first := run()
	second := run()
	require.Equal(t, first, second)
}

func TestPartitionCmdRunReplacesPriorGroups(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "labels.txt")
	outputDir := filepath.Join(dir, "groups")

	require.NoError(t, os.WriteFile(inputPath, []byte("MATH 101\nCHEM 200\n"), 0600))

	opts := cmdpart.NewOptions()
	opts.Files = []string{inputPath}
	opts.OutputDir = outputDir
	opts.Yes = true
	require.NoError(t, opts.Run())

	// Changed input that no longer mentions CHEM
	require.NoError(t, os.WriteFile(inputPath, []byte("MATH 101\nMATH 250\nBIO 110\n"), 0600))

	opts = cmdpart.NewOptions()
	opts.Files = []string{inputPath}
	opts.OutputDir = outputDir
	opts.Yes = true
	require.NoError(t, opts.Run())

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	require.ElementsMatch(t, []string{"BIO", "MATH"}, names)
}

func TestPartitionCmdRunEmptyInputFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "labels.txt")
	outputDir := filepath.Join(dir, "groups")

	require.NoError(t, os.WriteFile(inputPath, nil, 0600))

	opts := cmdpart.NewOptions()
	opts.Files = []string{inputPath}
	opts.OutputDir = outputDir
	opts.Yes = true
	require.NoError(t, opts.Run())

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestPartitionCmdRunWithConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "labels.txt")
	outputDir := filepath.Join(dir, "groups")
	configPath := filepath.Join(dir, "labelprep.toml")

	require.NoError(t, os.WriteFile(inputPath, []byte("MATH 101\n"), 0600))
	require.NoError(t, os.WriteFile(configPath,
		[]byte("input_path = \""+inputPath+"\"\noutput_dir = \""+outputDir+"\"\n"), 0600))

	opts := cmdpart.NewOptions()
	opts.ConfigPath = configPath
	opts.Yes = true
	require.NoError(t, opts.Run())

	_, err := os.Stat(filepath.Join(outputDir, "MATH"))
	require.NoError(t, err)
}

func TestPartitionCmdRunRejectsOldVersion(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "labelprep.toml")

	require.NoError(t, os.WriteFile(configPath,
		[]byte("minimum_required_version = \"99.0.0\"\n"), 0600))

	opts := cmdpart.NewOptions()
	opts.ConfigPath = configPath
	opts.Yes = true

	err := opts.Run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "minimum required version")
}

func TestPartitionCmdRunMissingInput(t *testing.T) {
	opts := cmdpart.NewOptions()
	opts.OutputDir = t.TempDir()
	opts.Yes = true

	err := opts.Run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expected at least one input file")

	opts = cmdpart.NewOptions()
	opts.Files = []string{filepath.Join(t.TempDir(), "nope.txt")}
	opts.OutputDir = t.TempDir()
	opts.Yes = true

	err = opts.Run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Checking file")
}
