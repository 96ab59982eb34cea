package files

import (
	"fmt"
	"os"
)

// File is a single readable label list.
type File struct {
	src     Source
	relPath string
}

// NewFiles resolves paths into File's. A path of "-" means standard input.
// Directories are rejected; label lists are always individual files.
func NewFiles(paths []string) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		if path == "-" {
			fileSrcs = append(fileSrcs, NewStdinSource())
			continue
		}

		fileInfo, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("Checking file '%s': %s", path, err)
		}

		if fileInfo.IsDir() {
			return nil, fmt.Errorf("Expected file '%s' to not be a directory", path)
		}

		fileSrcs = append(fileSrcs, NewLocalSource(path))
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(fileSrc)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }
