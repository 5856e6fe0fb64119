package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/allisonsierra/bomsmith/bomsmith"
	"github.com/allisonsierra/bomsmith/bomsmith/bomerr"
	"github.com/allisonsierra/bomsmith/bomsmith/builder"
	"github.com/allisonsierra/bomsmith/bomsmith/format"
	"github.com/allisonsierra/bomsmith/bomsmith/spec"
	"github.com/allisonsierra/bomsmith/internal"
	"github.com/allisonsierra/bomsmith/internal/bus"
	outputFormat "github.com/allisonsierra/bomsmith/internal/format"
	"github.com/allisonsierra/bomsmith/internal/log"
	"github.com/allisonsierra/bomsmith/internal/ui"
	"github.com/allisonsierra/bomsmith/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [MANIFEST]", internal.ApplicationName),
	Short: "Generate CycloneDX SBOMs from a resolved package manifest",
	Long: strings.ReplaceAll(`Generate CycloneDX 1.2 and 1.3 documents (JSON or XML) describing a project and its resolved dependencies:
    {{appName}} manifest.yaml                               one JSON 1.3 document to stdout
    {{appName}} manifest.yaml -o xml@1.2                    one XML 1.2 document to stdout
    {{appName}} manifest.yaml -o json@1.3 -o xml@1.3 --file out   one file per document in the "out" directory
    cat manifest.yaml | {{appName}}                         read the manifest from stdin
`, "{{appName}}", internal.ApplicationName),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

var generateCmd = &cobra.Command{
	Use:           "generate [MANIFEST]",
	Short:         "Generate CycloneDX SBOMs from a resolved package manifest (the default command)",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	setPersistentFlags(rootCmd.PersistentFlags())
	setGenerateFlags(generateCmd.Flags())

	// the root command is an alias of generate, sharing the same (bound) flags
	rootCmd.Flags().AddFlagSet(generateCmd.Flags())

	if err := bindConfigOptions(rootCmd.PersistentFlags(), "quiet"); err != nil {
		panic(err)
	}
	if err := bindConfigOptions(generateCmd.Flags(), "output", "spec-version", "format", "file", "deterministic-serial", "validate"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(generateCmd)
}

func setPersistentFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&persistentOpts.ConfigPath, "config", "c", "", "application config file")
	flags.CountVarP(&persistentOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug, -vvv = trace)")
	flags.BoolP("quiet", "q", false, "suppress all logging output")
}

func setGenerateFlags(flags *pflag.FlagSet) {
	flags.StringSliceP(
		"output", "o", nil,
		fmt.Sprintf("documents to emit as <format>[@<version>][=<file>], options=%v", outputFormat.AvailableOutputs()),
	)
	flags.String(
		"spec-version", spec.V1_3.String(),
		fmt.Sprintf("schema version of outputs that do not name one, options=%v", bomsmith.SupportedVersions()),
	)
	flags.String(
		"format", strings.ToLower(format.JSON.String()),
		fmt.Sprintf("serialization used when no output is given, options=%v", format.AvailableFormats),
	)
	flags.StringP(
		"file", "f", "",
		"file to write the document to (a directory when several documents are requested)",
	)
	flags.Bool(
		"deterministic-serial", false,
		"derive the serial number from the manifest instead of generating a random one",
	)
	flags.Bool(
		"validate", true,
		"validate the BOM before emitting any document",
	)
}

func bindConfigOptions(flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("unable to bind flag '%s': %w", name, err)
		}
	}
	return nil
}

func runGenerate(_ *cobra.Command, args []string) error {
	defer startProfiling()()

	var manifestPath string
	if len(args) > 0 {
		manifestPath = args[0]
	}

	return eventLoop(
		generateExec(manifestPath),
		setupSignals(),
		eventSubscription,
		func() {},
		ui.NewLoggerUI(os.Stderr, appConfig.Quiet),
	)
}

func generateExec(manifestPath string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)
		defer bus.Exit()

		if err := generate(afero.NewOsFs(), manifestPath); err != nil {
			errs <- err
		}
	}()
	return errs
}

func generate(fs afero.Fs, manifestPath string) error {
	writer, err := outputFormat.MakeDocumentWriter(fs, os.Stdout, appConfig.Output, outputFormat.Defaults{
		Version: appConfig.SpecVersionOpt,
		Format:  appConfig.FormatOpt,
		File:    appConfig.File,
	})
	if err != nil {
		return err
	}

	in, err := internal.OpenInput(manifestPath)
	if err != nil {
		return err
	}
	defer log.CloseAndLogError(in, manifestPath)

	manifest, err := builder.ReadManifest(in)
	if err != nil {
		return err
	}

	bom, err := builder.Build(manifest, builder.Config{
		DeterministicSerial: appConfig.DeterministicSerial,
		ToolVersion:         version.FromBuild().ToolVersion(),
	})
	if err != nil {
		return err
	}

	if appConfig.Validate {
		if err := reportFindings(manifest.Name, bom.Validate()); err != nil {
			return err
		}
	}

	return bomsmith.EncodeOutputs(bom, writer.Outputs(), writer.Open)
}

// reportFindings publishes every validation finding and turns their presence into an expected error.
func reportFindings(source string, err error) error {
	if err == nil {
		return nil
	}
	for _, finding := range findings(err) {
		bus.ValidationFinding(source, finding)
	}
	return bomerr.ErrValidationFailed
}
