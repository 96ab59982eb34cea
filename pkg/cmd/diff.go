// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/k14s/difflib"
	"github.com/spf13/cobra"
	"github.com/trexplorer/labelprep/pkg/cmd/ui"
)

type DiffOptions struct {
	Files        []string
	PreviousPath string
	Debug        bool
}

func NewDiffOptions() *DiffOptions {
	return &DiffOptions{}
}

func NewDiffCmd(o *DiffOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Diff the current deduplicated label list against a previous run's list",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringSliceVarP(&o.Files, "file", "f", nil, "Label list file (ie local path, -) (can be specified multiple times)")
	cmd.Flags().StringVar(&o.PreviousPath, "previous", "", "Label list from the previous run")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *DiffOptions) Run() error {
	ui := ui.NewTTY(o.Debug)

	if len(o.Files) == 0 {
		return fmt.Errorf("Expected at least one input file (via --file)")
	}
	if len(o.PreviousPath) == 0 {
		return fmt.Errorf("Expected previous label list (via --previous)")
	}

	current, err := dedupedLabels(o.Files, ui)
	if err != nil {
		return err
	}

	previous, err := dedupedLabels([]string{o.PreviousPath}, ui)
	if err != nil {
		return err
	}

	if equalLabels(previous, current) {
		ui.Printf("Label lists match (%d labels)\n", len(current))
		return nil
	}

	ui.Printf("%s\n", difflib.PPDiff(previous, current))

	return fmt.Errorf("Label lists differ")
}

func equalLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
