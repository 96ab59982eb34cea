// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"
	"github.com/trexplorer/labelprep/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultLabelprepCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "labelprep: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
