// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type InstructionsOptions struct {
	OutputDir string
}

func NewInstructionsOptions() *InstructionsOptions {
	return &InstructionsOptions{}
}

func NewInstructionsCmd(o *InstructionsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instructions",
		Short: "Print instructions for spell-checking the group files",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.OutputDir, "output-dir", "o", "groups", "Directory holding the group files")
	return cmd
}

func (o *InstructionsOptions) Run() error {
	fmt.Printf(`Group files in '%s' are ready for spell-checking.

Check each group file with the spell-checker of your choice, for example:

  for f in %s/*; do aspell --home-dir=. check "$f"; done

Accepted words accumulate in the personal dictionary (.aspell.en.pws) in the
directory aspell is run from, so later groups get quieter as you go.

Group files are fully regenerated on every 'labelprep partition' run; re-run
it after fixing labels at the source, then 'labelprep diff' against the
previous list to review what changed.
`, o.OutputDir, o.OutputDir)

	return nil
}
