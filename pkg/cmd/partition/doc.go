// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package partition implements the "partition" command (not to be confused with
"pkg/partition", home of the partitioning logic itself).

Front-and-center is PartitionOptions. This is both the host of settings parsed
from the command-line through Cobra AND the top-level logic that implements
the command.
*/
package partition
