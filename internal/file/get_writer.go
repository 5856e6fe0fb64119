package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// GetWriter opens outputFile for writing, creating any missing parent directories. When no file is given the
// default writer is returned and the close function does nothing.
func GetWriter(fs afero.Fs, defaultWriter io.Writer, outputFile string) (io.Writer, func() error, error) {
	nop := func() error { return nil }
	path := strings.TrimSpace(outputFile)

	switch len(path) {
	case 0:
		return defaultWriter, nop, nil

	default:
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := fs.MkdirAll(dir, 0755); err != nil {
				return nil, nop, fmt.Errorf("unable to create output directory %q: %w", dir, err)
			}
		}

		outputFile, err := fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return nil, nop, fmt.Errorf("unable to create output file: %w", err)
		}

		return outputFile, func() error {
			return outputFile.Close()
		}, nil
	}
}

// IsDir reports whether path exists and is a directory.
func IsDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
