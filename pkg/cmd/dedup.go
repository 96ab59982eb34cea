// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trexplorer/labelprep/pkg/cmd/ui"
	"github.com/trexplorer/labelprep/pkg/files"
	"github.com/trexplorer/labelprep/pkg/partition"
)

type DedupOptions struct {
	Files      []string
	OutputPath string
	Debug      bool
}

func NewDedupOptions() *DedupOptions {
	return &DedupOptions{}
}

func NewDedupCmd(o *DedupOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dedup",
		Aliases: []string{"dedupe"},
		Short:   "Print the sorted, deduplicated label list",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringSliceVarP(&o.Files, "file", "f", nil, "Label list file (ie local path, -) (can be specified multiple times)")
	cmd.Flags().StringVarP(&o.OutputPath, "output", "o", "", "File for the deduplicated list (defaults to stdout)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *DedupOptions) Run() error {
	ui := ui.NewTTY(o.Debug)

	if len(o.Files) == 0 {
		return fmt.Errorf("Expected at least one input file (via --file)")
	}

	labels, err := dedupedLabels(o.Files, ui)
	if err != nil {
		return err
	}

	var data string
	if len(labels) > 0 {
		data = strings.Join(labels, "\n") + "\n"
	}

	if len(o.OutputPath) > 0 {
		err := os.WriteFile(o.OutputPath, []byte(data), 0600)
		if err != nil {
			return fmt.Errorf("Writing deduplicated list to '%s': %s", o.OutputPath, err)
		}
		return nil
	}

	ui.Printf("%s", data) // no trailing newline beyond the list's own

	return nil
}

// dedupedLabels reads all label lines from paths, dedupes and sorts them, and
// drops blank lines. Shared by the dedup and diff commands.
func dedupedLabels(paths []string, ui ui.UI) ([]string, error) {
	filesToProcess, err := files.NewFiles(paths)
	if err != nil {
		return nil, err
	}

	var lines []string

	for _, file := range filesToProcess {
		data, err := file.Bytes()
		if err != nil {
			return nil, fmt.Errorf("Reading %s: %s", file.Description(), err)
		}
		lines = append(lines, partition.SplitLines(data)...)
	}

	var labels []string
	blank := 0

	for _, line := range partition.Dedupe(lines) {
		if partition.GroupKey(line) == "" {
			blank++
			continue
		}
		labels = append(labels, line)
	}

	if blank > 0 {
		ui.Debugf("skipped %d blank line(s)\n", blank)
	}

	return labels, nil
}
