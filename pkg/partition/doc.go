// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package partition implements the core label partitioning logic: deduplicating
a list of label lines and grouping them by their first whitespace-delimited
field (the "group key").

This package is pure computation; reading inputs and persisting group files
is the concern of pkg/files and the commands in pkg/cmd.
*/
package partition
