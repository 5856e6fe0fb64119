package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/allisonsierra/bomsmith/bomsmith"
	"github.com/allisonsierra/bomsmith/bomsmith/format"
	"github.com/allisonsierra/bomsmith/bomsmith/spec"
	"github.com/allisonsierra/bomsmith/internal"
	"github.com/allisonsierra/bomsmith/internal/file"
	"github.com/allisonsierra/bomsmith/internal/log"
)

var convertOpts = struct {
	To       string
	Format   string
	File     string
	Validate bool
}{}

var convertCmd = &cobra.Command{
	Use:   "convert [FILE]",
	Short: "Re-encode a CycloneDX document as another schema version or serialization",
	Long: `Fields the target schema version cannot express are dropped, for example converting
a 1.3 document to 1.2 removes compositions, properties and component evidence.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		var path string
		if len(args) > 0 {
			path = args[0]
		}
		return runConvert(afero.NewOsFs(), path)
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertOpts.To, "to", bomsmith.LatestVersion().String(), fmt.Sprintf("target schema version, options=%v", bomsmith.SupportedVersions()))
	convertCmd.Flags().StringVar(&convertOpts.Format, "format", strings.ToLower(format.JSON.String()), fmt.Sprintf("target serialization, options=%v", format.AvailableFormats))
	convertCmd.Flags().StringVarP(&convertOpts.File, "file", "f", "", "file to write the converted document to (default stdout)")
	convertCmd.Flags().BoolVar(&convertOpts.Validate, "validate", true, "refuse to convert a document that fails validation")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(fs afero.Fs, path string) error {
	to, err := spec.ParseVersion(convertOpts.To)
	if err != nil {
		return err
	}
	toFormat, err := format.Parse(convertOpts.Format)
	if err != nil {
		return err
	}

	in, err := internal.OpenInput(path)
	if err != nil {
		return err
	}
	defer log.CloseAndLogError(in, path)

	var opts []bomsmith.ConvertOption
	if !convertOpts.Validate {
		opts = append(opts, bomsmith.WithoutValidation())
	}

	// the target is only touched once the document has been converted
	var buf bytes.Buffer
	if err := bomsmith.Convert(in, &buf, to, toFormat, opts...); err != nil {
		return err
	}

	out, closer, err := file.GetWriter(fs, os.Stdout, convertOpts.File)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer(); err != nil {
			log.Warnf("unable to close %s: %v", convertOpts.File, err)
		}
	}()

	_, err = buf.WriteTo(out)
	return err
}
