// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
	cmdpart "github.com/trexplorer/labelprep/pkg/cmd/partition"
	"github.com/trexplorer/labelprep/pkg/version"
)

type LabelprepOptions struct{}

func NewDefaultLabelprepOptions() *LabelprepOptions {
	return &LabelprepOptions{}
}

func NewDefaultLabelprepCmd() *cobra.Command {
	return NewLabelprepCmd(NewDefaultLabelprepOptions())
}

func NewLabelprepCmd(o *LabelprepOptions) *cobra.Command {
	cmd := cmdpart.NewCmd(cmdpart.NewOptions())

	cmd.Use = "labelprep"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "labelprep prepares requirement-label lists for manual spell-checking"
	cmd.Long = `labelprep prepares requirement-label lists for manual spell-checking.

It deduplicates a label list, partitions it into per-group files keyed by
each label's first field, and diffs runs against each other for review.
The spell-checker itself is run by the operator (see 'labelprep instructions').`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdpart.NewCmd(cmdpart.NewOptions())) // also usable as explicit subcommand
	cmd.AddCommand(NewDedupCmd(NewDedupOptions()))
	cmd.AddCommand(NewDiffCmd(NewDiffOptions()))
	cmd.AddCommand(NewInstructionsCmd(NewInstructionsOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
