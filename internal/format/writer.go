package format

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"

	"github.com/allisonsierra/bomsmith/bomsmith"
	"github.com/allisonsierra/bomsmith/bomsmith/bomerr"
	"github.com/allisonsierra/bomsmith/bomsmith/format"
	"github.com/allisonsierra/bomsmith/bomsmith/spec"
	"github.com/allisonsierra/bomsmith/internal/file"
	"github.com/allisonsierra/bomsmith/internal/log"
)

// Defaults apply to output options that leave out the version or the file.
type Defaults struct {
	Version spec.Version
	Format  format.Format
	// File is the destination of outputs without their own file. When several outputs share it, it names a directory.
	File string
}

// documentWriterDescription is an output and the path it should be written to (empty for stdout).
type documentWriterDescription struct {
	Output bomsmith.Output
	Path   string
}

// DocumentWriter opens the destination of every requested document.
type DocumentWriter struct {
	fs           afero.Fs
	stdout       io.Writer
	descriptions []documentWriterDescription
}

// MakeDocumentWriter parses output options of the form <format>[@<version>][=<file>]. With no options a single
// document of the default format and version is requested.
func MakeDocumentWriter(fs afero.Fs, stdout io.Writer, outputs []string, defaults Defaults) (*DocumentWriter, error) {
	descriptions, err := parseOutputFlags(fs, outputs, defaults)
	if err != nil {
		return nil, err
	}
	return &DocumentWriter{
		fs:           fs,
		stdout:       stdout,
		descriptions: descriptions,
	}, nil
}

// parseOutputFlags utility to parse command-line option strings and retain the existing behavior of default format and file
func parseOutputFlags(fs afero.Fs, outputs []string, defaults Defaults) (out []documentWriterDescription, errs error) {
	if len(outputs) == 0 {
		outputs = append(outputs, strings.ToLower(defaults.Format.String()))
	}

	var usingDefaultFile []int
	seen := make(map[bomsmith.Output]bool)
	for _, option := range outputs {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}

		// split to at most two parts for <output>=<file>
		name, path, hasPath := strings.Cut(option, "=")

		o, err := ParseOutput(name, defaults.Version)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("bad output option %q (available: %s): %w", option, strings.Join(AvailableOutputs(), ", "), err))
			continue
		}
		if seen[o] {
			errs = multierror.Append(errs, fmt.Errorf("output %s requested more than once", o))
			continue
		}
		seen[o] = true

		if !hasPath {
			path = defaults.File
			if path != "" {
				usingDefaultFile = append(usingDefaultFile, len(out))
			}
		}
		out = append(out, newWriterDescription(o, path))
	}

	// several documents cannot share one file, so the default file names a directory instead
	if len(usingDefaultFile) > 1 || (len(usingDefaultFile) == 1 && file.IsDir(fs, expand(defaults.File))) {
		for _, i := range usingDefaultFile {
			out[i].Path = filepath.Join(out[i].Path, defaultFileName(out[i].Output))
		}
	}

	if len(out) == 0 && errs == nil {
		return nil, bomerr.ErrNoOutputs
	}

	return out, errs
}

func newWriterDescription(o bomsmith.Output, p string) documentWriterDescription {
	return documentWriterDescription{
		Output: o,
		Path:   expand(p),
	}
}

func expand(p string) string {
	expandedPath, err := homedir.Expand(p)
	if err != nil {
		log.Warnf("could not expand given writer output path=%q: %v", p, err)
		// ignore errors
		return p
	}
	return expandedPath
}

// Outputs lists the requested documents in the order they were requested.
func (w *DocumentWriter) Outputs() []bomsmith.Output {
	outputs := make([]bomsmith.Output, 0, len(w.descriptions))
	for _, d := range w.descriptions {
		outputs = append(outputs, d.Output)
	}
	return outputs
}

// Open is a bomsmith.WriterFactory for the requested documents.
func (w *DocumentWriter) Open(o bomsmith.Output) (io.Writer, string, func() error, error) {
	for _, d := range w.descriptions {
		if d.Output != o {
			continue
		}
		writer, closer, err := file.GetWriter(w.fs, w.stdout, d.Path)
		if err != nil {
			return nil, "", nil, err
		}
		location := d.Path
		if location == "" {
			location = "stdout"
		}
		return writer, location, closer, nil
	}
	return nil, "", nil, fmt.Errorf("output %s was not requested", o)
}
