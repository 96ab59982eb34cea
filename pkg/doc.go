// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
labelprep.

From top-down, labelprep code is layered in this way:

# Entry Point

labelprep is built into a single command-line tool:

	./cmd/labelprep

# Commands

There are a handful of commands; the most commonly used is "partition" (also
the behavior of the bare root command). Each command is an Options struct
hosting settings parsed through Cobra plus the top-level logic implementing
the command.

	pkg/cmd
	pkg/cmd/partition

# Files

All commands work over label list files. Reading from file-like Source's and
writing group files to an output directory (all-or-nothing replacement) is the
job of:

	pkg/files

# Partitioning

The core transformation -- dedupe, sort, group by first field -- is pure
computation:

	pkg/partition

# Utilities

The remainder are supporting features: the optional TOML config file, the
binary version, and output plumbing.

	pkg/config
	pkg/version
	pkg/cmd/ui
*/
package pkg
