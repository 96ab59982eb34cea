// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for loading label lists from file or
file-like Source's and for writing group files to an output directory.

This keeps the rest of labelprep working with logically chunked data without
becoming entangled in the details of how it is read or written.
*/
package files
