// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui provides a thin abstraction over user output (typically, a tty
device).
*/
package ui
