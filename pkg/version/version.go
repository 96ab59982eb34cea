// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is overridden at build time via -ldflags.
var Version = "0.4.0"
