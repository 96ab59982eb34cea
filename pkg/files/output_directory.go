// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	suspiciousOutputDirectoryPaths = []string{"/", ".", "./", ""}
)

// OutputDirectory replaces the contents of a directory with a set of output
// files. Replacement is all-or-nothing: files are written into a temporary
// sibling directory first, which is then swapped into place, so a failed run
// leaves the previous contents untouched.
type OutputDirectory struct {
	path  string
	files []OutputFile
	ui    UI
}

func NewOutputDirectory(path string, files []OutputFile, ui UI) *OutputDirectory {
	return &OutputDirectory{path, files, ui}
}

func (d *OutputDirectory) Files() []OutputFile { return d.files }

// IsEmptyOrMissing reports whether writing would destroy existing contents.
func (d *OutputDirectory) IsEmptyOrMissing() (bool, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("Checking output directory '%s': %s", d.path, err)
	}
	return len(entries) == 0, nil
}

func (d *OutputDirectory) Write() error {
	filePaths := map[string]struct{}{}

	for _, file := range d.files {
		path := file.RelativePath()
		if _, found := filePaths[path]; found {
			return fmt.Errorf("Multiple files have same output destination paths: %s", path)
		}
		filePaths[path] = struct{}{}
	}

	for _, path := range suspiciousOutputDirectoryPaths {
		if d.path == path {
			return fmt.Errorf("Expected output directory path to not be one of '%s'",
				strings.Join(suspiciousOutputDirectoryPaths, "', '"))
		}
	}

	dstPath := filepath.Clean(d.path)
	parentPath := filepath.Dir(dstPath)

	err := os.MkdirAll(parentPath, 0700)
	if err != nil {
		return err
	}

	tmpPath, err := os.MkdirTemp(parentPath, "."+filepath.Base(dstPath)+"-")
	if err != nil {
		return fmt.Errorf("Creating staging directory for '%s': %s", dstPath, err)
	}

	// No-op once the rename below succeeds
	defer os.RemoveAll(tmpPath)

	for _, file := range d.files {
		d.ui.Printf("creating: %s\n", file.Path(dstPath))

		err := file.Create(tmpPath)
		if err != nil {
			return err
		}
	}

	err = os.RemoveAll(dstPath)
	if err != nil {
		return err
	}

	return os.Rename(tmpPath, dstPath)
}
