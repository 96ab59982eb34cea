// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the full set of labelprep's "commands" -- instances of
cobra.Command (not to be confused with ./cmd which contains the bootstrapping
for executing labelprep).

A cobra.Command is the starting point of execution.

For a list of commands run:

	$ labelprep help

The default command is "partition".
*/
package cmd
