// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

package partition

import (
	"fmt"
	"strings"
	"time"

	cliui "github.com/cppforlife/go-cli-ui/ui"
	"github.com/spf13/cobra"
	cmdui "github.com/trexplorer/labelprep/pkg/cmd/ui"
	"github.com/trexplorer/labelprep/pkg/config"
	"github.com/trexplorer/labelprep/pkg/files"
	"github.com/trexplorer/labelprep/pkg/partition"
	"github.com/trexplorer/labelprep/pkg/version"
)

type PartitionOptions struct {
	Files      []string
	OutputDir  string
	Yes        bool
	ConfigPath string
	Debug      bool
}

type PartitionInput struct {
	Files       []*files.File
	BlankPolicy partition.BlankPolicy
}

type PartitionOutput struct {
	Files        []files.OutputFile
	GroupNames   []string
	SkippedBlank int
	Err          error
}

func NewOptions() *PartitionOptions {
	return &PartitionOptions{}
}

func NewCmd(o *PartitionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "partition",
		Aliases: []string{"p"},
		Short:   "Partition a label list into per-group files for spell-checking",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringSliceVarP(&o.Files, "file", "f", nil, "Label list file (ie local path, -) (can be specified multiple times)")
	cmd.Flags().StringVarP(&o.OutputDir, "output-dir", "o", "", "Directory for group files (fully replaced on each run)")
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false, "Replace existing output directory contents without asking")
	cmd.Flags().StringVar(&o.ConfigPath, "config", "", "Config file providing flag defaults (TOML)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *PartitionOptions) Run() error {
	ui := cmdui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	cfg := config.Config{}

	if len(o.ConfigPath) > 0 {
		var err error
		cfg, err = config.Load(o.ConfigPath)
		if err != nil {
			return err
		}

		err = cfg.CheckVersion(version.Version)
		if err != nil {
			return err
		}
	}

	inputPaths := o.Files
	if len(inputPaths) == 0 && len(cfg.InputPath) > 0 {
		inputPaths = []string{cfg.InputPath}
	}
	if len(inputPaths) == 0 {
		return fmt.Errorf("Expected at least one input file (via --file or input_path in config)")
	}

	outputDirPath := o.OutputDir
	if len(outputDirPath) == 0 {
		outputDirPath = cfg.OutputDir
	}
	if len(outputDirPath) == 0 {
		return fmt.Errorf("Expected output directory (via --output-dir or output_dir in config)")
	}

	blankPolicy, err := cfg.BlankPolicy()
	if err != nil {
		return err
	}

	filesToProcess, err := files.NewFiles(inputPaths)
	if err != nil {
		return err
	}

	out := o.RunWithFiles(PartitionInput{Files: filesToProcess, BlankPolicy: blankPolicy}, ui)
	if out.Err != nil {
		return out.Err
	}

	outputDir := files.NewOutputDirectory(outputDirPath, out.Files, ui)

	if !o.Yes {
		err := o.confirmReplacement(outputDir, outputDirPath)
		if err != nil {
			return err
		}
	}

	err = outputDir.Write()
	if err != nil {
		return err
	}

	ui.Printf("\n%d group file(s) in '%s'\n", len(out.Files), outputDirPath)

	return nil
}

// RunWithFiles performs the partitioning itself without touching the
// filesystem. Callers decide what to do with the resulting output files.
func (o *PartitionOptions) RunWithFiles(in PartitionInput, ui cmdui.UI) PartitionOutput {
	var lines []string

	for _, file := range in.Files {
		data, err := file.Bytes()
		if err != nil {
			return PartitionOutput{Err: fmt.Errorf("Reading %s: %s", file.Description(), err)}
		}
		lines = append(lines, partition.SplitLines(data)...)
	}

	result, err := partition.Partition(lines, in.BlankPolicy)
	if err != nil {
		return PartitionOutput{Err: err}
	}

	if result.SkippedBlank > 0 {
		ui.Debugf("skipped %d blank line(s)\n", result.SkippedBlank)
	}

	var outFiles []files.OutputFile

	for _, group := range result.Groups {
		data := []byte(strings.Join(group.Labels, "\n") + "\n")
		outFiles = append(outFiles, files.NewOutputFile(group.Key, data))
	}

	return PartitionOutput{
		Files:        outFiles,
		GroupNames:   result.GroupNames(),
		SkippedBlank: result.SkippedBlank,
	}
}

// confirmReplacement asks before destroying a non-empty output directory.
// A missing or empty directory needs no confirmation.
func (o *PartitionOptions) confirmReplacement(outputDir *files.OutputDirectory, path string) error {
	empty, err := outputDir.IsEmptyOrMissing()
	if err != nil {
		return err
	}
	if empty {
		return nil
	}

	confUI := cliui.NewConfUI(cliui.NewNoopLogger())
	defer confUI.Flush()

	confUI.PrintLinef("Replacing all contents of output directory '%s'", path)

	return confUI.AskForConfirmation()
}
